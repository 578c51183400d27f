package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
	"github.com/randalmurphal/keyfind/config"
)

// rootOptions holds the global flags and the state derived from them in
// PersistentPreRunE.
type rootOptions struct {
	homeDir   string
	sshDir    string
	logLevel  string
	logFormat string

	settings config.Settings
	logger   *slog.Logger
}

func (o *rootOptions) keyConfig() keyssh.Config {
	return o.settings.KeyConfig(o.logger)
}

// newRootCmd builds a fresh command tree so tests do not share flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "keyfind",
		Short: "Locate the SSH private key used for authentication",
		Long: `keyfind looks for an SSH private key in the standard locations
(~/.ssh/id_ed25519, then ~/.ssh/id_rsa) and reports the first one that
can be read and looks like a private key.

Settings are read from ~/.config/keyfind/config.yaml, ./.keyfind.yaml,
KEYFIND_* environment variables and flags, in increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rc := config.DefaultResolverConfig()
			rc.ErrWriter = cmd.ErrOrStderr()

			resolved := config.NewResolver(rc).ResolveWithFlags(map[string]string{
				config.KeyHomeDir:   opts.homeDir,
				config.KeySSHDir:    opts.sshDir,
				config.KeyLogLevel:  opts.logLevel,
				config.KeyLogFormat: opts.logFormat,
			})

			settings, err := config.Load(resolved)
			if err != nil {
				return err
			}
			opts.settings = settings
			opts.logger = settings.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Version = version

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.homeDir, "home", "", "home directory to search (default is the current user's home)")
	flags.StringVar(&opts.sshDir, "ssh-dir", "", "SSH directory to search, overrides --home")
	flags.StringVar(&opts.logLevel, "log-level", "", `log level ("debug", "info", "warn", "error")`)
	flags.StringVar(&opts.logFormat, "log-format", "", `log format ("text", "json")`)

	cmd.AddCommand(newFindCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newAddToAgentCmd(opts))
	cmd.AddCommand(newConfigCmd())

	return cmd
}
