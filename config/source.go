package config

// Source indicates where a configuration value came from.
type Source string

// Configuration source constants.
const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault Source = "default"

	// SourceGlobal indicates the value came from global config
	// (e.g., ~/.config/keyfind/config.yaml).
	SourceGlobal Source = "global"

	// SourceLocal indicates the value came from local config
	// (e.g., .keyfind.yaml in the working directory).
	SourceLocal Source = "local"

	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"

	// SourceFlag indicates the value was set via command-line flag.
	SourceFlag Source = "flag"
)

var sourceRank = map[Source]int{
	SourceDefault: 1,
	SourceGlobal:  2,
	SourceLocal:   3,
	SourceEnv:     4,
	SourceFlag:    5,
}

// Outranks reports whether a value from s overrides a value from other.
// An unknown or empty source ranks below every known one.
func (s Source) Outranks(other Source) bool {
	return sourceRank[s] > sourceRank[other]
}
