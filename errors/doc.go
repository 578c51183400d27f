// Package errors provides CLI error patterns with user-friendly messaging
// for SSH key discovery.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrNoKeys: No usable private key in ~/.ssh
//   - ErrPermissionDenied: Key file or directory is not accessible
//   - ErrPassphraseRequired: Key is encrypted
//   - ErrAgentUnavailable: ssh-agent cannot be reached
//
// Example usage:
//
//	key, err := ssh.FindSystemKey()
//	if err != nil {
//	    // Prints "No SSH keys found in ..." plus ssh-keygen suggestions
//	    return errors.WrapKeyError(err)
//	}
//
//	// Wrap with custom messages
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (m MyMessenger) NoKeysMessage(dir string) (string, string) {
//	    return "No deploy key.", "Run 'myapp keys init' to create one."
//	}
//
//	wrapped := errors.WrapKeyError(err, errors.WithMessenger(MyMessenger{}))
//
//	// Check error types
//	if errors.IsKeyNotFound(err) {
//	    // Offer to generate a key
//	}
package errors
