package cli

import (
	"io"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "quire" {
		t.Errorf("root.Use = %q, want %q", root.Use, "quire")
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	want := []string{"typeset", "layout", "render", "preview", "serve", "cache", "completion"}
	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestNewSetsLogger(t *testing.T) {
	c := New(io.Discard, LogDebug)
	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
}
