package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/cache"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	for _, name := range []string{"build", "serve", "export", "themes", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestRootCommandExecute(t *testing.T) {
	var out bytes.Buffer
	root := newTestCLI(t).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"themes", "--plain"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), "purple-passion") {
		t.Errorf("themes output = %q", out.String())
	}
}

func TestRootCommandThemeFlag(t *testing.T) {
	c := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"--theme", "neon", "themes", "--plain"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := c.settings(); err == nil {
		t.Error("settings() accepted an unknown --theme")
	}
}

func TestCacheCommands(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	dir := filepath.Join(cacheHome, appName)

	store, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"artifact:a", "export:b"} {
		if err := store.Set(ctx, key, []byte("x"), 0); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	root := newTestCLI(t).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != dir {
		t.Errorf("cache path = %q, want %q", got, dir)
	}

	root = newTestCLI(t).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if _, hit, _ := store.Get(ctx, "artifact:a"); hit {
		t.Error("entry survived cache clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir removed: %v", err)
	}
}
