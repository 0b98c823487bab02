package config

import "strings"

// EnvLogLevel names the environment variable holding the default log level.
const EnvLogLevel = "FLATFILE_LOG_LEVEL"

// Config holds settings shared by every tool that do not come from flags.
type Config struct {
	LogLevel string
}

// FromEnv loads Config through getenv (os.Getenv in production).
func FromEnv(getenv func(string) string) Config {
	return Config{LogLevel: strings.TrimSpace(getenv(EnvLogLevel))}
}

// Level resolves the effective log level; flags override the environment.
func (c Config) Level(verbose, quiet bool) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	case c.LogLevel != "":
		return strings.ToLower(c.LogLevel)
	default:
		return "info"
	}
}
