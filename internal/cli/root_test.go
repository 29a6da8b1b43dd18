package cli

import (
	"io"
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"remove":     false,
		"list":       false,
		"graph":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_RemoveFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var remove = root
	for _, cmd := range root.Commands() {
		if cmd.Name() == "remove" {
			remove = cmd
		}
	}
	if remove == root {
		t.Fatal("remove command not found")
	}

	for _, flag := range []string{"dry-run", "yes", "strict", "refuse-required", "quiet", "python"} {
		if remove.Flags().Lookup(flag) == nil {
			t.Errorf("remove is missing flag --%s", flag)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("GetLevel() = %v, want debug", c.Logger.GetLevel())
	}
}
