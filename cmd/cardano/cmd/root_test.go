package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/internal/cardano/catalog"
)

// resetFlags restores the package level flag variables between runs
func resetFlags() {
	cfgFile, verbose, outputFormat = "", false, ""
	appConfig = nil
	evalNoHistory = false
	opsGroup = ""
	historyLimit, historyOffset = 0, 0
	historyOperation, historyAddr = "", ""
	historyErrorsOnly, historyStats = false, false
	historySince, historyPrune = 0, 0
}

// writeConfig creates a config file whose history lives in a temp dir
func writeConfig(t *testing.T, history bool) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`[general]
data_dir = %q
log_level = "error"

[history]
disabled = %v
path = %q
`, dir, !history, filepath.Join(dir, "history.db"))

	path := filepath.Join(dir, "cardano.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	cfg := writeConfig(t, false)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"eval", "add", "1", "2", "3", "4"}, "4+6i"},
		{"negative first operand", []string{"eval", "sqrtReal", "-4"}, "0+2i"},
		{"scalar result", []string{"eval", "abs", "3", "4"}, "5"},
		{"constant operand", []string{"eval", "multReal", "1", "0", "2"}, "2+0i"},
		{"case insensitive", []string{"eval", "MULT", "1", "2", "3", "4"}, "-5+10i"},
		{"bool result", []string{"eval", "areEqual", "1", "1", "1", "1"}, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, cfg, tt.args...)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEval_JSON(t *testing.T) {
	out, err := execute(t, writeConfig(t, false), "--format", "json", "eval", "div", "1", "0", "0", "1")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got["operation"] != "div" || got["kind"] != "complex" {
		t.Errorf("output = %v", got)
	}
	if got["rendered"] != "0-1i" {
		t.Errorf("rendered = %v, want 0-1i", got["rendered"])
	}
	result, ok := got["result"].(map[string]interface{})
	if !ok || result["imaginary"] != -1.0 {
		t.Errorf("result = %v", got["result"])
	}
}

func TestEval_Errors(t *testing.T) {
	cfg := writeConfig(t, false)

	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"division by zero", []string{"eval", "div", "1", "0", "0", "0"}, mdwerror.CodeDivisionByZero},
		{"unknown operation", []string{"eval", "frobnicate", "1"}, mdwerror.CodeNotFound},
		{"missing operand", []string{"eval", "add", "1", "2"}, mdwerror.CodeInvalidInput},
		{"not a number", []string{"eval", "exp", "one", "0"}, mdwerror.CodeInvalidInput},
		{"unknown format", []string{"--format", "xml", "eval", "exp", "0", "0"}, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, cfg, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := mdwerror.GetCode(err); code != tt.code {
				t.Errorf("code = %v, want %v (%v)", code, tt.code, err)
			}
		})
	}
}

func TestEval_MissingConfig(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.toml"), "eval", "exp", "0", "0")
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("err = %v, want MISSING_CONFIG", err)
	}
}

func TestVerbose_TracesEvaluation(t *testing.T) {
	cfg := writeConfig(t, false)
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--config", cfg, "--verbose", "eval", "exp", "0", "0"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("eval error = %v", err)
	}

	logs := errOut.String()
	if !strings.Contains(logs, "[TRC]") || !strings.Contains(logs, "operation=exp") {
		t.Errorf("--verbose should trace the evaluation, got %q", logs)
	}
	if !strings.Contains(out.String(), "exp(") {
		t.Errorf("verbose result = %q", out.String())
	}
}

func TestPrintError_Verbose(t *testing.T) {
	resetFlags()
	verbose = true
	defer resetFlags()

	cause := mdwerror.New("division by zero").WithCode(mdwerror.CodeDivisionByZero)
	var buf bytes.Buffer
	printError(&buf, mdwerror.Wrap(cause, "evaluate div"))

	out := buf.String()
	for _, want := range []string{"Fehler: ", "Code: DIVISION_BY_ZERO", "Ursache: division by zero"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	printError(&buf, cause)
	if strings.Contains(buf.String(), "Ursache") {
		t.Errorf("an error without cause should not print one: %q", buf.String())
	}
}

func TestHistory(t *testing.T) {
	cfg := writeConfig(t, true)

	for _, args := range [][]string{
		{"eval", "add", "1", "2", "3", "4"},
		{"eval", "sqrt", "-4", "0"},
		{"eval", "--no-history", "exp", "0", "0"},
	} {
		if _, err := execute(t, cfg, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	if _, err := execute(t, cfg, "eval", "inverse", "0", "0"); err == nil {
		t.Fatal("inverse(0) should fail")
	}

	t.Run("json entries", func(t *testing.T) {
		out, err := execute(t, cfg, "--format", "json", "history")
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		var entries []map[string]interface{}
		if err := json.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if len(entries) != 3 {
			t.Fatalf("entries = %d, want 3", len(entries))
		}
		if entries[0]["operation"] != "inverse" || entries[0]["error_code"] != "DIVISION_BY_ZERO" {
			t.Errorf("newest entry = %v", entries[0])
		}
		if entries[2]["rendered"] != "4+6i" {
			t.Errorf("oldest entry = %v", entries[2])
		}
	})

	t.Run("filters", func(t *testing.T) {
		out, err := execute(t, cfg, "history", "--errors")
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		if !strings.Contains(out, "DIVISION_BY_ZERO") || strings.Contains(out, "4+6i") {
			t.Errorf("errors only output:\n%s", out)
		}

		out, err = execute(t, cfg, "history", "--op", "sqrt")
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		if !strings.Contains(out, "= 0+2i") || strings.Count(out, "\n") != 1 {
			t.Errorf("sqrt output:\n%s", out)
		}
	})

	t.Run("stats", func(t *testing.T) {
		out, err := execute(t, cfg, "--format", "json", "history", "--stats")
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		var stats map[string]interface{}
		if err := json.Unmarshal([]byte(out), &stats); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if stats["total"] != 3.0 || stats["failed"] != 1.0 {
			t.Errorf("stats = %v", stats)
		}
	})

	t.Run("prune", func(t *testing.T) {
		out, err := execute(t, cfg, "history", "--prune", "1h")
		if err != nil {
			t.Fatalf("prune: %v", err)
		}
		if strings.TrimSpace(out) != "0 Einträge gelöscht" {
			t.Errorf("output = %q", out)
		}
	})
}

func TestHistory_Disabled(t *testing.T) {
	_, err := execute(t, writeConfig(t, false), "history")
	if !mdwerror.HasCode(err, mdwerror.CodeServiceUnavailable) {
		t.Errorf("err = %v, want SERVICE_UNAVAILABLE", err)
	}
}

func TestOps(t *testing.T) {
	cfg := writeConfig(t, false)

	out, err := execute(t, cfg, "ops", "--group", "inverse hyperbolic")
	if err != nil {
		t.Fatalf("ops: %v", err)
	}
	if !strings.Contains(out, "atanh re im") || strings.Contains(out, "asinReal") {
		t.Errorf("inverse hyperbolic output:\n%s", out)
	}

	out, err = execute(t, cfg, "--format", "json", "ops")
	if err != nil {
		t.Fatalf("ops: %v", err)
	}
	var ops []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &ops); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(ops) != catalog.Default().Len() {
		t.Errorf("ops = %d, want %d", len(ops), catalog.Default().Len())
	}
}

func TestDemo(t *testing.T) {
	out, err := execute(t, writeConfig(t, false), "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	for _, want := range []string{"a = 0.3+0.5i", "sqrt(-2.3)", "0+1.517i", "a / 0", "✗"} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output misses %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, writeConfig(t, false), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "Cardano v") || !strings.Contains(out, "OS/Arch:") {
		t.Errorf("version output:\n%s", out)
	}
}
