package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
	kferrors "github.com/randalmurphal/keyfind/errors"
)

type listEntry struct {
	KeyType string `json:"key_type"`
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show which standard key files exist",
		Long: `Lists the standard key locations in priority order and whether a file
exists at each. File contents are not checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := keyssh.ListAvailableKeysWithConfig(opts.keyConfig())
			if err != nil {
				return kferrors.WrapKeyError(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				rows := make([]listEntry, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, listEntry{KeyType: e.KeyType.String(), Path: e.Path, Exists: e.Exists})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tPATH\tEXISTS")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%v\n", e.KeyType, e.Path, e.Exists)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
