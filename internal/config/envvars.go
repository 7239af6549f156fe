// ABOUTME: Environment handling for settings: ${VAR} expansion and CURSORY_* overrides
// ABOUTME: Unset variables expand to empty; overrides win over the settings file

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Environment variables that override settings.
const (
	EnvEscapeTimeout = "CURSORY_ESCAPE_TIMEOUT_MS"
	EnvGlyphs        = "CURSORY_GLYPHS"
	EnvLogLevel      = "CURSORY_LOG_LEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Glyphs = expandEnv(s.Glyphs)
	s.LogLevel = expandEnv(s.LogLevel)

	for k, v := range s.Keys {
		s.Keys[k] = expandEnv(v)
	}
}

// ApplyEnv applies CURSORY_* overrides that are set and non-empty.
func ApplyEnv(s *Settings) error {
	if v := os.Getenv(EnvEscapeTimeout); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEscapeTimeout, err)
		}
		s.EscapeTimeoutMS = ms
	}
	if v := os.Getenv(EnvGlyphs); v != "" {
		s.Glyphs = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	return nil
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
