package ssh

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// privateKeyMarker must appear in a candidate file for it to be accepted.
// It matches PEM and OpenSSH armor ("BEGIN OPENSSH PRIVATE KEY",
// "BEGIN RSA PRIVATE KEY", ...) and rejects public keys and empty files.
const privateKeyMarker = "PRIVATE KEY"

// DiscoveredKey is a private key found at one of the candidate paths.
type DiscoveredKey struct {
	// PrivateKey is the full file contents.
	PrivateKey string

	// KeyType is the type implied by the candidate the key was found at.
	KeyType KeyType

	// Path is the absolute path of the key file.
	Path string
}

// KeyListingEntry reports whether a candidate key file exists.
type KeyListingEntry struct {
	Path    string
	KeyType KeyType
	Exists  bool
}

// FindSystemKey finds the highest priority private key in ~/.ssh.
func FindSystemKey() (*DiscoveredKey, error) {
	return FindSystemKeyWithConfig(Config{})
}

// FindSystemKeyWithConfig probes the candidate files in priority order and
// returns the first one that can be read and looks like a private key.
//
// Files that exist but are unreadable or fail the content check are logged
// and skipped. A *KeyNotFoundError is returned when nothing qualifies.
// Errors checking whether a candidate exists are returned as-is.
func FindSystemKeyWithConfig(cfg Config) (*DiscoveredKey, error) {
	sshDir, err := cfg.sshDir()
	if err != nil {
		return nil, err
	}
	logger := cfg.logger()

	checked := make([]string, 0, len(candidates))
	for _, c := range candidates {
		path := filepath.Join(sshDir, c.Name)
		checked = append(checked, path)

		exists, err := fileExists(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		data, err := os.ReadFile(path) //nolint:gosec // fixed candidate path
		if err != nil {
			logger.Warn("found key but could not read it",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		privateKey := string(data)
		if !strings.Contains(privateKey, privateKeyMarker) {
			logger.Warn("found key file that does not contain a private key",
				slog.String("path", path),
				slog.String("reason", "missing "+privateKeyMarker+" marker"))
			continue
		}

		return &DiscoveredKey{
			PrivateKey: privateKey,
			KeyType:    c.KeyType,
			Path:       path,
		}, nil
	}

	return nil, &KeyNotFoundError{SSHDir: sshDir, Checked: checked}
}

// HasSystemKeys reports whether FindSystemKey would succeed.
func HasSystemKeys() bool {
	return HasSystemKeysWithConfig(Config{})
}

// HasSystemKeysWithConfig reports whether FindSystemKeyWithConfig would
// succeed. Any error is treated as false.
func HasSystemKeysWithConfig(cfg Config) bool {
	_, err := FindSystemKeyWithConfig(cfg)
	return err == nil
}

// ListAvailableKeys lists the candidate key files in ~/.ssh.
func ListAvailableKeys() ([]KeyListingEntry, error) {
	return ListAvailableKeysWithConfig(Config{})
}

// ListAvailableKeysWithConfig returns one entry per candidate, in priority
// order, reporting existence only. File contents are not read.
func ListAvailableKeysWithConfig(cfg Config) ([]KeyListingEntry, error) {
	sshDir, err := cfg.sshDir()
	if err != nil {
		return nil, err
	}

	entries := make([]KeyListingEntry, 0, len(candidates))
	for _, c := range candidates {
		path := filepath.Join(sshDir, c.Name)
		exists, err := fileExists(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, KeyListingEntry{
			Path:    path,
			KeyType: c.KeyType,
			Exists:  exists,
		})
	}

	return entries, nil
}

// fileExists treats a missing path, or a path whose parent is not a
// directory, as absent. Other stat failures are returned.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, fmt.Errorf("check key file %s: %w", path, err)
	}
}
