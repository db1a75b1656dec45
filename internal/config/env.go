package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHEWOL_"

// ApplyEnv overrides settings from CHEWOL_* environment variables. Empty
// values are treated as set.
func (c *Config) ApplyEnv() error {
	var errs []error
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("PROFILE_DIR"); ok {
		c.ProfileDir = v
	}
	if v, ok := lookup("WATCH_PROFILES"); ok {
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, envError("WATCH_PROFILES", err))
		} else {
			c.WatchProfiles = b
		}
	}
	if v, ok := lookup("QUIT_TIMES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, envError("QUIT_TIMES", err))
		} else {
			c.QuitTimes = n
		}
	}
	if v, ok := lookup("MESSAGE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, envError("MESSAGE_TIMEOUT", err))
		} else {
			c.MessageTimeout = Duration{d}
		}
	}
	return errors.Join(errs...)
}

func lookup(name string) (string, bool) {
	return os.LookupEnv(EnvPrefix + name)
}

func envError(name string, err error) error {
	return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
}

// parseBool accepts the spellings the shell commonly uses.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
