// ABOUTME: Settings loading: defaults, then the YAML settings file, then environment overrides
// ABOUTME: YAML via gopkg.in/yaml.v3; a missing file is not an error

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/cursory/internal/log"
)

// Glyph set names accepted in settings.
const (
	GlyphsUnicode = "unicode"
	GlyphsVT100   = "vt100"
)

// Settings holds the effective configuration.
type Settings struct {
	EscapeTimeoutMS int               `yaml:"escape_timeout_ms"`
	CursorTimeoutMS int               `yaml:"cursor_timeout_ms"`
	Glyphs          string            `yaml:"glyphs"`
	LogLevel        string            `yaml:"log_level"`
	NormalizeText   bool              `yaml:"normalize_text"`
	Keys            map[string]string `yaml:"keys,omitempty"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		EscapeTimeoutMS: 50,
		CursorTimeoutMS: 200,
		Glyphs:          GlyphsUnicode,
		LogLevel:        "warn",
	}
}

// Load builds settings from path, or from DefaultPath() when path is empty,
// then applies environment overrides and validates the result. A missing
// file at the default location yields the defaults; an explicit path must
// exist.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	s, err := loadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		log.Debug("no settings file at %s, using defaults", path)
		s = Default()
	case err != nil:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ResolveEnvVars(s)
	if err := ApplyEnv(s); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// loadFile reads settings from a YAML file on top of the defaults.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML settings over the defaults. Unknown fields are errors.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return s, nil
}

// Validate rejects values the terminal layer cannot use.
func (s *Settings) Validate() error {
	var errs []error
	if s.EscapeTimeoutMS <= 0 {
		errs = append(errs, fmt.Errorf("escape_timeout_ms must be positive, got %d", s.EscapeTimeoutMS))
	}
	if s.CursorTimeoutMS <= 0 {
		errs = append(errs, fmt.Errorf("cursor_timeout_ms must be positive, got %d", s.CursorTimeoutMS))
	}
	if s.Glyphs != GlyphsUnicode && s.Glyphs != GlyphsVT100 {
		errs = append(errs, fmt.Errorf("glyphs must be %q or %q, got %q", GlyphsUnicode, GlyphsVT100, s.Glyphs))
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	for seq, name := range s.Keys {
		if seq == "" || (seq[0] != '[' && seq[0] != 'O') {
			errs = append(errs, fmt.Errorf("keys: sequence %q must start with '[' or 'O'", seq))
		}
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("keys: sequence %q has an empty name", seq))
		}
	}
	return errors.Join(errs...)
}

// EscapeTimeout returns the escape timeout as a duration.
func (s *Settings) EscapeTimeout() time.Duration {
	return time.Duration(s.EscapeTimeoutMS) * time.Millisecond
}

// CursorTimeout returns the cursor reply timeout as a duration.
func (s *Settings) CursorTimeout() time.Duration {
	return time.Duration(s.CursorTimeoutMS) * time.Millisecond
}
