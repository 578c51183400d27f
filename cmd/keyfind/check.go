package main

import (
	"github.com/spf13/cobra"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Exit 0 if a usable SSH key exists, 1 otherwise",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !keyssh.HasSystemKeysWithConfig(opts.keyConfig()) {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}
