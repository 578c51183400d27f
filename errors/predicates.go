package errors

import (
	"errors"
	"io/fs"
	"strings"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
)

// IsKeyNotFound checks if an error means no usable key was discovered.
func IsKeyNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrNoKeys) || errors.Is(err, keyssh.ErrNoSSHKeys)
}

// IsPermissionError checks if an error is permission-related.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrPermissionDenied) || errors.Is(err, fs.ErrPermission) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "access is denied")
}

// IsPassphraseError checks if an error is caused by an encrypted key.
func IsPassphraseError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrPassphraseRequired) || errors.Is(err, keyssh.ErrPassphraseRequired)
}

// IsAgentError checks if an error is ssh-agent related.
func IsAgentError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrAgentUnavailable) || errors.Is(err, keyssh.ErrNoSSHAgent) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "ssh-agent")
}
