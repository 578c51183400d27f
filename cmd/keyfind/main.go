// Command keyfind locates the current user's SSH private key.
//
// It probes ~/.ssh/id_ed25519 and then ~/.ssh/id_rsa and reports the first
// file that looks like a private key.
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev" // set by the linker

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// exitError ends the command with a status code and no message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
