package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrNoKeys indicates no usable SSH private key was found.
	ErrNoKeys = errors.New("no SSH keys found")

	// ErrPermissionDenied indicates a key file or directory is not accessible.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPassphraseRequired indicates the key must be unlocked first.
	ErrPassphraseRequired = errors.New("passphrase required")

	// ErrAgentUnavailable indicates no SSH agent could be reached.
	ErrAgentUnavailable = errors.New("ssh-agent unavailable")
)
