package ssh

import (
	"errors"
	"fmt"
	"strings"
)

// SSH key errors.
var (
	// ErrNoSSHAgent is returned when the SSH agent is not available.
	ErrNoSSHAgent = errors.New("ssh-agent not available")

	// ErrNoSSHKeys is returned when no usable private key is found.
	// *KeyNotFoundError matches it with errors.Is.
	ErrNoSSHKeys = errors.New("no SSH keys found")

	// ErrKeyNotFound is returned when a specific key is not found in the agent.
	ErrKeyNotFound = errors.New("SSH key not found in agent")

	// ErrInvalidKeyFormat is returned when a public key file has invalid format.
	ErrInvalidKeyFormat = errors.New("invalid SSH public key format")

	// ErrPassphraseRequired is returned when a discovered private key is
	// encrypted and cannot be parsed without a passphrase.
	ErrPassphraseRequired = errors.New("SSH private key is passphrase protected")
)

// KeyNotFoundError is returned by FindSystemKey when no candidate file
// exists, or none that exists is readable and looks like a private key.
type KeyNotFoundError struct {
	// SSHDir is the directory that was probed.
	SSHDir string

	// Checked lists the candidate paths in the order they were probed.
	Checked []string
}

func (e *KeyNotFoundError) Error() string {
	var sb strings.Builder
	sb.WriteString("No SSH keys found in standard locations. ")
	sb.WriteString("Please create an SSH key:\n")
	sb.WriteString("  " + GenerateCommand(KeyTypeED25519) + "\n")
	sb.WriteString("Or:\n")
	sb.WriteString("  " + GenerateCommand(KeyTypeRSA))
	return sb.String()
}

// Is reports whether target is ErrNoSSHKeys.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrNoSSHKeys
}

// GenerateCommand returns an example ssh-keygen invocation that creates a
// key of the given type at its conventional location.
func GenerateCommand(kt KeyType) string {
	switch kt {
	case KeyTypeRSA:
		return `ssh-keygen -t rsa -b 4096 -C "your_email@example.com"`
	default:
		return `ssh-keygen -t ed25519 -C "your_email@example.com"`
	}
}

// KeyError records a failure to parse a discovered private key.
type KeyError struct {
	Path string
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("parse private key %s: %v", e.Path, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
