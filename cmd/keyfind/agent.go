package main

import (
	"fmt"

	"github.com/spf13/cobra"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
	kferrors "github.com/randalmurphal/keyfind/errors"
)

func newAddToAgentCmd(opts *rootOptions) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "add-to-agent",
		Short: "Load the discovered key into ssh-agent",
		Long: `Finds the highest priority key and adds it to the agent at SSH_AUTH_SOCK.
Passphrase protected keys must be added with ssh-add instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := keyssh.FindSystemKeyWithConfig(opts.keyConfig())
			if err != nil {
				return kferrors.WrapKeyError(err)
			}

			ag, err := keyssh.GetAgent()
			if err != nil {
				return kferrors.WrapKeyError(err)
			}
			defer ag.Close()

			if ok, err := keyssh.HasKeyInAgent(ag, key); err == nil && ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already loaded\n", key.Path)
				return nil
			}

			if err := keyssh.AddToAgent(ag, key, comment); err != nil {
				return kferrors.WrapKeyError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", key.Path, key.KeyType)
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "comment stored with the key (default is the key path)")

	return cmd
}
