package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"bigint/internal/trace"
	"bigint/internal/version"
)

// execCLI runs the CLI in an empty working directory so no bigint.toml is
// discovered by accident.
func execCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"--color", "off"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEvalCommand(t *testing.T) {
	out, _, err := execCLI(t, "eval", "--", "2 * 3 + 4", "36#ZZ", "-(7 - 10)", "1 < 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "10\n1295\n3\ntrue\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestEvalCommandBase(t *testing.T) {
	out, _, err := execCLI(t, "eval", "--base", "16", "--", "255", "-256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "FF\n-100\n" {
		t.Fatalf("expected FF and -100, got %q", out)
	}
}

func TestEvalCommandDivByZero(t *testing.T) {
	_, stderr, err := execCLI(t, "eval", "1 / 0")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("expected division by zero, got %v", err)
	}
	if !strings.Contains(stderr, "Error:") {
		t.Fatalf("expected cobra to report the error, got %q", stderr)
	}
}

func TestEvalCommandUsesConfigBase(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "bigint.toml", "[output]\nbase = 2\n")
	out, _, err := execCLI(t, "--config", cfg, "eval", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "101\n" {
		t.Fatalf("expected 101, got %q", out)
	}

	out, _, err = execCLI(t, "--config", cfg, "eval", "--base", "10", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Fatalf("expected the flag to override the config, got %q", out)
	}
}

func TestConvertCommand(t *testing.T) {
	out, _, err := execCLI(t, "--quiet", "convert", "--from", "16", "--to", "2", "--", "ff", "-A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "11111111\n-1010\n" {
		t.Fatalf("expected binary output, got %q", out)
	}

	out, _, err = execCLI(t, "convert", "--from", "10", "--to", "36", "1295")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1295 (base 10) = ZZ (base 36)\n" {
		t.Fatalf("unexpected verbose output %q", out)
	}
}

func TestConvertCommandRejectsBadInput(t *testing.T) {
	if _, _, err := execCLI(t, "convert", "--from", "2", "102"); err == nil {
		t.Fatalf("expected an error for digit 2 in base 2")
	}
	if _, _, err := execCLI(t, "convert", "--from", "37", "1"); err == nil {
		t.Fatalf("expected an error for base 37")
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "# sums\n1 + 1\n\n10 * 10\n")
	out, _, err := execCLI(t, "batch", "--ui", "off", good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := good + ":2: 1 + 1 = 2\n" + good + ":4: 10 * 10 = 100\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestBatchCommandFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "3\n")
	bad := writeFile(t, dir, "bad.txt", "4 % 0\n")
	out, _, err := execCLI(t, "--quiet", "batch", "--ui", "off", "--jobs", "2", good, bad)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "1 of 2 files failed") {
		t.Fatalf("unexpected error %v", err)
	}
	if strings.Contains(out, good) {
		t.Fatalf("quiet mode should hide successful lines, got %q", out)
	}
	if !strings.Contains(out, bad+":1: error:") {
		t.Fatalf("expected the failing line to be reported, got %q", out)
	}
}

func TestSelftestCommand(t *testing.T) {
	out, _, err := execCLI(t, "selftest")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 failed") {
		t.Fatalf("expected a clean summary, got %q", out)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	out, _, err := execCLI(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if payload.Tool != "bigint" || payload.Version != version.Version {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestVersionCommandBadFormat(t *testing.T) {
	if _, _, err := execCLI(t, "version", "--format", "xml"); err == nil {
		t.Fatalf("expected an error for xml format")
	}
}

func TestTimingsAndTrace(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "trace.ndjson")
	_, stderr, err := execCLI(t, "--timings", "--trace", tracePath, "eval", "6 * 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "eval") {
		t.Fatalf("expected a timings table, got %q", stderr)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), `"eval"`) {
		t.Fatalf("expected the command span in the trace, got %q", data)
	}
}

func TestInvalidColorMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Chdir(t.TempDir())
	err := run(context.Background(), []string{"--color", "rainbow", "version"}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("expected an error for --color rainbow")
	}
}

func TestBatchCommandDiskCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	input := writeFile(t, t.TempDir(), "pow.txt", "2 * 2 * 2 * 2\n")

	for i, args := range [][]string{
		{"batch", "--ui", "off", "--clear-cache", input},
		{"batch", "--ui", "off", "--disk-cache", input},
	} {
		out, _, err := execCLI(t, args...)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !strings.Contains(out, ":1: 2 * 2 * 2 * 2 = 16") {
			t.Fatalf("run %d: expected 16, got %q", i, out)
		}
	}
}

func TestBatchCommandRepeatedPath(t *testing.T) {
	input := writeFile(t, t.TempDir(), "one.txt", "5 * 5\n")
	out, _, err := execCLI(t, "batch", "--ui", "off", input, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := input + ":1: 5 * 5 = 25\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestUniquePaths(t *testing.T) {
	got := uniquePaths([]string{"a", "b", "a", "c", "b"})
	if strings.Join(got, ",") != "a,b,c" {
		t.Fatalf("expected a,b,c, got %v", got)
	}
}

type closeFailTracer struct{}

func (closeFailTracer) Emit(*trace.Event)  {}
func (closeFailTracer) Level() trace.Level { return trace.LevelOff }
func (closeFailTracer) Close() error       { return errors.New("trace sink closed early") }

func TestExecuteReportsFinishError(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	a := &app{stderr: &stderr}
	root := newRootCmd(a)
	root.AddCommand(&cobra.Command{
		Use: "noop",
		RunE: func(*cobra.Command, []string) error {
			a.tracer = closeFailTracer{}
			return nil
		},
	})
	err := execute(context.Background(), a, root, []string{"--color", "off", "noop"}, &stdout)
	if err == nil || !strings.Contains(err.Error(), "trace sink closed early") {
		t.Fatalf("expected the close error, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Error: trace sink closed early") {
		t.Fatalf("expected the close error on stderr, got %q", stderr.String())
	}
}
