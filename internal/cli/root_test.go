package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"pack", "verse", "import", "review", "browse", "remind", "stats", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir == "" {
		t.Error("cacheDir returned empty path")
	}
}
