package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	keyssh "github.com/randalmurphal/keyfind/auth/ssh"
)

// Configuration keys.
const (
	KeyHomeDir   = "home_dir"
	KeySSHDir    = "ssh_dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// ValidKeys lists every key keyfind understands.
var ValidKeys = []string{KeyHomeDir, KeySSHDir, KeyLogLevel, KeyLogFormat}

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultResolverConfig returns the resolver settings used by the keyfind CLI.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       "KEYFIND_",
		GlobalConfigDir: "keyfind",
		LocalConfigName: ".keyfind.yaml",
		Defaults: map[string]string{
			KeyLogLevel:  "warn",
			KeyLogFormat: LogFormatText,
		},
		ValidKeys: ValidKeys,
	}
}

// DefaultSaveConfig returns the save settings matching DefaultResolverConfig.
func DefaultSaveConfig() SaveConfig {
	rc := DefaultResolverConfig()
	return SaveConfig{
		GlobalConfigDir: rc.GlobalConfigDir,
		LocalConfigName: rc.LocalConfigName,
		ValidKeys:       rc.ValidKeys,
	}
}

// Settings is the typed form of a resolved keyfind configuration.
type Settings struct {
	HomeDir   string
	SSHDir    string
	LogLevel  slog.Level
	LogFormat string
}

// Load validates resolved values and converts them to Settings.
//
// When both home_dir and ssh_dir are set, ssh_dir is dropped if home_dir
// came from a higher priority source.
func Load(resolved *Resolved) (Settings, error) {
	s := Settings{
		HomeDir:   resolved.Get(KeyHomeDir),
		SSHDir:    resolved.Get(KeySSHDir),
		LogFormat: LogFormatText,
	}

	if s.HomeDir != "" && s.SSHDir != "" &&
		resolved.Source(KeyHomeDir).Outranks(resolved.Source(KeySSHDir)) {
		s.SSHDir = ""
	}

	if raw := resolved.Get(KeyLogLevel); raw != "" {
		level, err := parseLogLevel(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q (%s): %w",
				KeyLogLevel, raw, resolved.Source(KeyLogLevel), err)
		}
		s.LogLevel = level
	}

	if raw := resolved.Get(KeyLogFormat); raw != "" {
		format, err := parseLogFormat(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q (%s): %w",
				KeyLogFormat, raw, resolved.Source(KeyLogFormat), err)
		}
		s.LogFormat = format
	}

	return s, nil
}

// ValidateValue checks value against the rules Load applies to key.
// Keys without value rules accept anything.
func ValidateValue(key, value string) error {
	var err error
	switch key {
	case KeyLogLevel:
		_, err = parseLogLevel(value)
	case KeyLogFormat:
		_, err = parseLogFormat(value)
	}
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(raw))
	return level, err
}

func parseLogFormat(raw string) (string, error) {
	switch f := strings.ToLower(raw); f {
	case LogFormatText, LogFormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("want %s or %s", LogFormatText, LogFormatJSON)
	}
}

// NewLogger builds a logger writing to w in the configured format and level.
func (s Settings) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// KeyConfig returns the discovery configuration for these settings.
func (s Settings) KeyConfig(logger *slog.Logger) keyssh.Config {
	return keyssh.Config{
		HomeDir: s.HomeDir,
		SSHDir:  s.SSHDir,
		Logger:  logger,
	}
}
