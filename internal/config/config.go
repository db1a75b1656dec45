package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/chewol/internal/highlight"
	"github.com/dshills/chewol/internal/logging"
)

// Default values.
const (
	DefaultLogLevel       = "info"
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
)

// Duration is a time.Duration written as a string such as "5s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds all settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFile receives log output. Empty discards logs.
	LogFile string `toml:"log_file"`
	// ProfileDir holds *.toml and *.yaml language profiles.
	ProfileDir string `toml:"profile_dir"`
	// WatchProfiles reloads profiles when ProfileDir changes.
	WatchProfiles bool `toml:"watch_profiles"`
	// QuitTimes is how many extra quit presses a dirty buffer needs.
	QuitTimes int `toml:"quit_times"`
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout Duration `toml:"message_timeout"`
	// Theme maps token class names to #rrggbb colors.
	Theme map[string]string `toml:"theme"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		ProfileDir:     DefaultProfileDir(),
		QuitTimes:      DefaultQuitTimes,
		MessageTimeout: Duration{DefaultMessageTimeout},
		Theme:          map[string]string{},
	}
}

// Dir returns chewol's configuration directory, or "" if the platform has
// none.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "chewol")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "config.toml")
	}
	return ""
}

// DefaultProfileDir returns the default language profile directory.
func DefaultProfileDir() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "filetypes")
	}
	return ""
}

// Load reads the TOML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. source names the data in
// errors.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	if c.Theme == nil {
		c.Theme = map[string]string{}
	}
	return nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{Key: "log_level", Message: "must be debug, info, warn or error", Value: c.LogLevel})
	}
	if c.QuitTimes < 0 {
		errs = append(errs, &ValidationError{Key: "quit_times", Message: "must not be negative", Value: c.QuitTimes})
	}
	if c.MessageTimeout.Duration <= 0 {
		errs = append(errs, &ValidationError{Key: "message_timeout", Message: "must be positive", Value: c.MessageTimeout.Duration})
	}
	for name, color := range c.Theme {
		if _, ok := highlight.ParseTokenClass(name); !ok {
			errs = append(errs, &ValidationError{Key: "theme." + name, Message: "unknown token class", Value: name})
			continue
		}
		if !IsHexColor(color) {
			errs = append(errs, &ValidationError{Key: "theme." + name, Message: "must be a #rrggbb color", Value: color})
		}
	}
	return errors.Join(errs...)
}

// IsHexColor reports whether s has the form #rrggbb.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
