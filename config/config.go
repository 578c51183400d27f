package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolverConfig describes where settings are looked up.
type ResolverConfig struct {
	// EnvPrefix is prepended to the upper-cased key to form the environment
	// variable name, so "ssh_dir" with "KEYFIND_" reads KEYFIND_SSH_DIR.
	EnvPrefix string

	// GlobalConfigDir is the directory under ~/.config holding the global file.
	GlobalConfigDir string

	// GlobalConfigFile defaults to "config.yaml".
	GlobalConfigFile string

	// LocalConfigName is the per-directory file, e.g. ".keyfind.yaml".
	LocalConfigName string

	// LocalDir is searched for LocalConfigName. Defaults to ".".
	LocalDir string

	// Defaults seeds the lowest priority layer.
	Defaults map[string]string

	// ValidKeys restricts the keys accepted from files. Empty accepts all.
	ValidKeys []string

	// ErrWriter receives warnings. Defaults to os.Stderr.
	ErrWriter io.Writer
}

// Resolver merges defaults, config files and environment variables.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string

	// Warnings collects non-fatal problems found while resolving.
	Warnings []string
}

// NewResolver creates a resolver reading ~/.config/<GlobalConfigDir> and
// <LocalDir>/<LocalConfigName>.
func NewResolver(cfg ResolverConfig) *Resolver {
	var globalPath, localPath string

	if cfg.GlobalConfigDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			file := cfg.GlobalConfigFile
			if file == "" {
				file = "config.yaml"
			}
			globalPath = filepath.Join(home, ".config", cfg.GlobalConfigDir, file)
		}
	}
	if cfg.LocalConfigName != "" {
		dir := cfg.LocalDir
		if dir == "" {
			dir = "."
		}
		localPath = filepath.Join(dir, cfg.LocalConfigName)
	}

	return newResolverWithPaths(cfg, globalPath, localPath)
}

func newResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
	return &Resolver{config: cfg, globalPath: globalPath, localPath: localPath}
}

func (r *Resolver) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	fmt.Fprintf(r.config.ErrWriter, "Warning: %s\n", msg)
}

// Resolved is the merged configuration with the source of every value.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

func (c *Resolved) set(key, value string, source Source) {
	c.values[key] = value
	c.sources[key] = source
}

// Get returns the value for key, or "" if unset.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns where the value for key came from.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns the value for key and where it came from.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// Keys returns every key that has a value, in no particular order.
func (c *Resolved) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	return keys
}

// Resolve merges every layer. Later layers win:
// defaults, global file, local file, environment.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	for key, value := range r.config.Defaults {
		cfg.set(key, value, SourceDefault)
	}
	r.applyFile(cfg, r.globalPath, SourceGlobal)
	r.applyFile(cfg, r.localPath, SourceLocal)
	r.applyEnv(cfg)

	return cfg
}

// ResolveWithFlags resolves and then applies flags on top.
// Empty flag values mean "not given" and are skipped.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Resolved {
	cfg := r.Resolve()
	for key, value := range flags {
		if value != "" {
			cfg.set(key, value, SourceFlag)
		}
	}
	return cfg
}

func (r *Resolver) applyFile(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path
	if err != nil {
		return // missing file is fine
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warnf("could not parse %s: %v", path, err)
		return
	}

	for key, value := range parsed {
		if len(r.config.ValidKeys) > 0 && !slices.Contains(r.config.ValidKeys, key) {
			r.warnf("ignoring unknown key %q in %s", key, path)
			continue
		}
		if s := toString(value); s != "" {
			cfg.set(key, s, source)
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	if r.config.EnvPrefix == "" {
		return
	}

	keys := make(map[string]struct{})
	for k := range r.config.Defaults {
		keys[k] = struct{}{}
	}
	for _, k := range r.config.ValidKeys {
		keys[k] = struct{}{}
	}
	for k := range cfg.values {
		keys[k] = struct{}{}
	}

	for key := range keys {
		envKey := r.config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			cfg.set(key, value, SourceEnv)
		}
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool, int, int64, float64:
		return fmt.Sprint(val)
	default:
		return ""
	}
}
