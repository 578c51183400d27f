// Package config provides hierarchical configuration resolution for keyfind.
//
// This package supports layered configuration with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (KEYFIND_ prefix)
//  3. Local config (.keyfind.yaml in the working directory)
//  4. Global config (~/.config/keyfind/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.DefaultResolverConfig())
//	resolved := resolver.ResolveWithFlags(map[string]string{
//	    config.KeyHomeDir: homeFlag,
//	})
//
//	settings, err := config.Load(resolved)
//	if err != nil {
//	    return err
//	}
//	logger := settings.NewLogger(os.Stderr)
//	key, err := ssh.FindSystemKeyWithConfig(settings.KeyConfig(logger))
//
// # Keys
//
//   - home_dir: home directory whose .ssh is searched (default: user home)
//   - ssh_dir: SSH directory, overrides home_dir
//   - log_level: debug, info, warn or error (default: warn)
//   - log_format: text or json (default: text)
//
// # Config Sources
//
// Each resolved value tracks where it came from:
//   - "default": Built-in default value
//   - "global": ~/.config/keyfind/config.yaml
//   - "local": .keyfind.yaml in the working directory
//   - "env": Environment variable
//   - "flag": Command-line flag
package config
