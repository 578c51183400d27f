package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
	kferrors "github.com/randalmurphal/keyfind/errors"
)

// findResult is the JSON form of a discovered key.
type findResult struct {
	KeyType     string `json:"key_type"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint,omitempty"`
	PrivateKey  string `json:"private_key,omitempty"`
}

func newFindCmd(opts *rootOptions) *cobra.Command {
	var (
		showPrivate bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the highest priority SSH private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := keyssh.FindSystemKeyWithConfig(opts.keyConfig())
			if err != nil {
				return kferrors.WrapKeyError(err)
			}

			res := findResult{KeyType: key.KeyType.String(), Path: key.Path}
			if fp, err := key.Fingerprint(); err == nil {
				res.Fingerprint = fp
			} else {
				opts.logger.Debug("could not compute fingerprint",
					slog.String("path", key.Path),
					slog.String("error", err.Error()))
			}
			if showPrivate {
				res.PrivateKey = key.PrivateKey
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Fprintf(out, "type:        %s\n", res.KeyType)
			fmt.Fprintf(out, "path:        %s\n", res.Path)
			if res.Fingerprint != "" {
				fmt.Fprintf(out, "fingerprint: %s\n", res.Fingerprint)
			}
			if showPrivate {
				fmt.Fprintf(out, "\n%s", res.PrivateKey)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPrivate, "show-private", false, "also print the private key material")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
