// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupHome creates a temporary home directory with an .ssh subdirectory
// populated from files (name -> content). A nil map creates an empty
// .ssh directory. Files are written with 0600 permissions.
func SetupHome(t *testing.T, files map[string]string) string {
	t.Helper()

	home := t.TempDir()
	sshDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(sshDir, 0o700); err != nil {
		t.Fatalf("failed to create ssh directory: %v", err)
	}

	for name, content := range files {
		WriteSSHFile(t, home, name, content)
	}

	return home
}

// SetupBareHome creates a temporary home directory without an .ssh
// subdirectory.
func SetupBareHome(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteSSHFile writes content to home/.ssh/name, creating the directory
// if needed. Returns the file path.
func WriteSSHFile(t *testing.T, home, name, content string) string {
	t.Helper()

	path := filepath.Join(home, ".ssh", name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}
