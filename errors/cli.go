package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// NoKeysMessage returns the message and suggestion when no key was found.
	// The sshDir parameter is the directory that was searched.
	NoKeysMessage(sshDir string) (message, suggestion string)

	// PermissionDeniedMessage returns the message and suggestion for
	// inaccessible key files or directories.
	PermissionDeniedMessage(path string) (message, suggestion string)

	// PassphraseRequiredMessage returns the message and suggestion for
	// encrypted keys.
	PassphraseRequiredMessage(keyPath string) (message, suggestion string)

	// AgentUnavailableMessage returns the message and suggestion when
	// ssh-agent cannot be reached.
	AgentUnavailableMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) NoKeysMessage(sshDir string) (string, string) {
	return fmt.Sprintf("No SSH keys found in %s", sshDir),
		"Please create an SSH key:\n  " + keyssh.GenerateCommand(keyssh.KeyTypeED25519) +
			"\nOr:\n  " + keyssh.GenerateCommand(keyssh.KeyTypeRSA)
}

func (m DefaultMessenger) PermissionDeniedMessage(path string) (string, string) {
	if path == "" {
		return "Cannot access the SSH directory.",
			"Check that your user owns ~/.ssh and it has mode 0700."
	}
	return fmt.Sprintf("Cannot access %s", path),
		"Check that your user owns ~/.ssh and it has mode 0700."
}

func (m DefaultMessenger) PassphraseRequiredMessage(keyPath string) (string, string) {
	return fmt.Sprintf("The key at %s is protected by a passphrase.", keyPath),
		"Load it into ssh-agent first:\n  ssh-add " + keyPath
}

func (m DefaultMessenger) AgentUnavailableMessage() (string, string) {
	return "Cannot connect to ssh-agent.",
		"Start an agent and export SSH_AUTH_SOCK:\n  eval \"$(ssh-agent -s)\""
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapKeyError wraps key discovery and usage errors with helpful guidance.
// Errors it does not recognize are returned unchanged.
func WrapKeyError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	messenger := getMessenger(opts)

	var notFound *keyssh.KeyNotFoundError
	if errors.As(err, &notFound) {
		msg, suggestion := messenger.NoKeysMessage(notFound.SSHDir)
		return &CLIError{
			Err:        errors.Join(ErrNoKeys, err),
			Message:    msg,
			Details:    checkedDetails(notFound.Checked),
			Suggestion: suggestion,
		}
	}

	if IsPassphraseError(err) {
		msg, suggestion := messenger.PassphraseRequiredMessage(pathOf(err))
		return &CLIError{
			Err:        errors.Join(ErrPassphraseRequired, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if IsAgentError(err) {
		msg, suggestion := messenger.AgentUnavailableMessage()
		return &CLIError{
			Err:        errors.Join(ErrAgentUnavailable, err),
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	}

	if IsPermissionError(err) {
		msg, suggestion := messenger.PermissionDeniedMessage(pathOf(err))
		return &CLIError{
			Err:        errors.Join(ErrPermissionDenied, err),
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	}

	return err
}

func checkedDetails(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return "Checked:\n  " + strings.Join(paths, "\n  ")
}

// pathOf returns the file path recorded in err, if any.
func pathOf(err error) string {
	var keyErr *keyssh.KeyError
	if errors.As(err, &keyErr) {
		return keyErr.Path
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return ""
}
