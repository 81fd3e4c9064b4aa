package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-barry/webspark/core"
	"github.com/urfave/cli/v2"
)

func withOutputDir(dir string) func(*core.Config) {
	return func(c *core.Config) { c.OutputDir = dir }
}

func TestCleanCommand_CleansOutputDir(t *testing.T) {
	tmpDir := t.TempDir()

	dummyFile := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(dummyFile, []byte("rendered!"), 0644); err != nil {
		t.Fatal(err)
	}

	overrideLoadConfig(withOutputDir(tmpDir), func() {
		app := &cli.App{
			Commands: []*cli.Command{CleanCommand},
		}
		err := app.Run([]string{"cmd", "clean"})
		if err != nil {
			t.Fatalf("clean command failed: %v", err)
		}

		if _, err := os.Stat(dummyFile); !os.IsNotExist(err) {
			t.Errorf("expected file to be deleted, but still exists: %s", dummyFile)
		}
	})
}

func TestCleanCommand_CleansSingleService(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "demo")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}
	_ = os.WriteFile(filepath.Join(subDir, "index.html"), []byte("page"), 0644)

	other := filepath.Join(tmpDir, "other")
	_ = os.MkdirAll(other, 0755)

	overrideLoadConfig(withOutputDir(tmpDir), func() {
		app := &cli.App{
			Commands: []*cli.Command{CleanCommand},
		}
		err := app.Run([]string{"cmd", "clean", "/demo"})
		if err != nil {
			t.Fatalf("clean command failed: %v", err)
		}

		if _, err := os.Stat(subDir); !os.IsNotExist(err) {
			t.Errorf("expected service directory to be deleted, but it exists")
		}
		if _, err := os.Stat(other); err != nil {
			t.Errorf("expected sibling directory to survive, got: %v", err)
		}
	})
}

func TestCleanCommand_NoOpOnNonexistentDir(t *testing.T) {
	tmpDir := t.TempDir()
	overrideLoadConfig(withOutputDir(filepath.Join(tmpDir, "does-not-exist")), func() {
		app := &cli.App{
			Commands: []*cli.Command{CleanCommand},
		}
		err := app.Run([]string{"cmd", "clean"})
		if err != nil {
			t.Fatalf("expected no error for nonexistent dir, got: %v", err)
		}
	})
}

func TestCleanCommand_ErrIfNotDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "notadir")
	_ = os.WriteFile(file, []byte("I'm a file"), 0644)

	overrideLoadConfig(withOutputDir(file), func() {
		app := &cli.App{
			Commands: []*cli.Command{CleanCommand},
		}
		err := app.Run([]string{"cmd", "clean"})
		if err == nil || err.Error() != fmt.Sprintf("not a directory: %s", file) {
			t.Errorf("expected 'not a directory' error, got: %v", err)
		}
	})
}

func TestCleanCommand_ErrIfStatFails(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{CleanCommand},
	}

	overrideLoadConfig(withOutputDir("/hopefully/invalid/\x00"), func() {
		err := app.Run([]string{"cmd", "clean"})
		if err == nil {
			t.Fatal("expected error due to stat failure, got nil")
		}
	})
}

func TestCleanCommand_ErrIfRemoveFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	protectedDir := filepath.Join(tmpDir, "locked")

	if err := os.Mkdir(protectedDir, 0755); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(protectedDir, "index.html")
	if err := os.WriteFile(file, []byte("rendered"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.Chmod(protectedDir, 0400); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(protectedDir, 0755)

	overrideLoadConfig(withOutputDir(protectedDir), func() {
		app := &cli.App{
			Commands: []*cli.Command{CleanCommand},
		}
		err := app.Run([]string{"cmd", "clean"})
		if err == nil || !strings.Contains(err.Error(), "failed to clean output") {
			t.Errorf("expected clean error, got: %v", err)
		}
	})
}
