package main

import (
	"os"

	"github.com/msto63/cardano/cmd/cardano/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
