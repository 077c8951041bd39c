package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandVersionFlag(t *testing.T) {
	output, err := executeCommand(NewRootCmd("test"), "--version")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "cyan version test") {
		t.Fatalf("expected version output, got %q", output)
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(NewRootCmd("1.2.3"), "version")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "cyan version 1.2.3") {
		t.Fatalf("expected version output, got %q", output)
	}
}

func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(NewRootCmd("test"), "--help")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "board workspace") {
		t.Fatalf("expected help output, got %q", output)
	}
	for _, sub := range []string{"init", "ls", "board", "status", "dm", "peers", "mcp"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help missing %q:\n%s", sub, output)
		}
	}
}

func TestLsRequiresInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	output, err := executeCommand(NewRootCmd("test"), "ls", "--dir", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for uninitialized dir, got output %q", output)
	}
	if !strings.Contains(output, "cyan init") {
		t.Fatalf("expected init hint, got %q", output)
	}
}

func TestLsRejectsUnknownSortKey(t *testing.T) {
	output, err := executeCommand(NewRootCmd("test"), "ls", "--sort", "bogus")
	if err == nil {
		t.Fatal("expected error for unknown sort key")
	}
	if !strings.Contains(output, "unknown sort key") {
		t.Fatalf("expected sort key error, got %q", output)
	}
}
