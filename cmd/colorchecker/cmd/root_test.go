package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "colorchecker" {
		t.Fatalf("rootCmd.Use = %q, want colorchecker", rootCmd.Use)
	}
	if rootCmd.Short == "" || rootCmd.Long == "" {
		t.Fatal("rootCmd is missing Short or Long description")
	}
}

func TestRootCommandHelpListsDetectSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--help returned an error: %v", err)
	}
	if !strings.Contains(buf.String(), "detect") {
		t.Fatalf("help output does not mention the detect subcommand:\n%s", buf.String())
	}
}
