package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/cardano/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Cardano v%s\n", version.Platform)
		fmt.Fprintf(w, "  cmplxx:     %s\n", version.Cmplxx)
		fmt.Fprintf(w, "  API:        cardano.%s\n", version.API)
		fmt.Fprintf(w, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(w, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
