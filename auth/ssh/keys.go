package ssh

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// KeyType is the algorithm family of a discoverable private key.
type KeyType string

// Supported key types, highest priority first.
const (
	KeyTypeED25519 KeyType = "ed25519"
	KeyTypeRSA     KeyType = "rsa"
)

func (k KeyType) String() string {
	return string(k)
}

// ParseKeyType converts a name such as "ed25519" or "RSA" to a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ed25519":
		return KeyTypeED25519, nil
	case "rsa":
		return KeyTypeRSA, nil
	default:
		return "", fmt.Errorf("unknown key type %q", s)
	}
}

// Candidate describes a conventional private key file name inside the
// SSH directory.
type Candidate struct {
	Name    string
	KeyType KeyType
}

var candidates = []Candidate{
	{Name: "id_ed25519", KeyType: KeyTypeED25519},
	{Name: "id_rsa", KeyType: KeyTypeRSA},
}

// Candidates returns the probed key files in priority order.
func Candidates() []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	return out
}

// Config holds configuration for SSH key operations.
type Config struct {
	// HomeDir is the home directory whose .ssh subdirectory is probed.
	// Defaults to os.UserHomeDir() if empty.
	HomeDir string

	// SSHDir overrides the SSH directory entirely.
	// Takes precedence over HomeDir when set.
	SSHDir string

	// Logger receives warnings about candidate files that exist but
	// cannot be used. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

func (c Config) sshDir() (string, error) {
	if c.SSHDir != "" {
		return c.SSHDir, nil
	}
	home := c.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
	}
	return filepath.Join(home, ".ssh"), nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// KeyInfo holds information about an SSH public key.
type KeyInfo struct {
	// Path is the path to the public key file.
	Path string

	// PublicKey is the full public key in authorized_keys format.
	PublicKey string

	// KeyType is the key algorithm (e.g., "ssh-ed25519", "ssh-rsa").
	KeyType string

	// Fingerprint is the SHA256 fingerprint of the key.
	Fingerprint string

	// Comment is the optional key comment.
	Comment string
}

// ReadPublicKey reads and parses an SSH public key file.
func ReadPublicKey(path string) (*KeyInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path expected
	if err != nil {
		return nil, err
	}

	return ParsePublicKey(path, string(data))
}

// ParsePublicKey parses an SSH public key string.
func ParsePublicKey(path, keyData string) (*KeyInfo, error) {
	keyData = strings.TrimSpace(keyData)
	parts := strings.SplitN(keyData, " ", 3)
	if len(parts) < 2 {
		return nil, ErrInvalidKeyFormat
	}

	keyType := parts[0]
	keyBytes, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid key data: %w", err)
	}

	comment := ""
	if len(parts) == 3 {
		comment = parts[2]
	}

	return &KeyInfo{
		Path:        path,
		PublicKey:   keyData,
		KeyType:     keyType,
		Fingerprint: ComputeFingerprint(keyBytes),
		Comment:     comment,
	}, nil
}
