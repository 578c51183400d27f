package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/keyfind/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change keyfind settings",
		// Replaces the root hook so a broken config file can still be
		// inspected and repaired.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Save a setting to the global (or local) config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateValue(args[0], args[1]); err != nil {
				return err
			}

			sc := config.DefaultSaveConfig()
			if local {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				return sc.SaveLocal(wd, args[0], args[1])
			}
			return sc.SaveGlobal(args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "write ./.keyfind.yaml instead of the global config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print resolved settings and where each came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := config.DefaultResolverConfig()
			rc.ErrWriter = cmd.ErrOrStderr()
			resolved := config.NewResolver(rc).Resolve()

			keys := resolved.Keys()
			sort.Strings(keys)
			for _, k := range keys {
				v, src := resolved.GetWithSource(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s (%s)\n", k, v, src)
			}
			return nil
		},
	}
}
