package filetype

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// IsProfileFile reports whether path has a profile file extension.
func IsProfileFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads one profile from a TOML or YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a profile. The format is chosen from the extension of name.
func Parse(name string, data []byte) (*Profile, error) {
	var p Profile
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	default:
		return nil, &ParseError{Path: name, Message: ErrUnsupportedFormat.Error(), Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
	}

	if err := p.Validate(); err != nil {
		return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return &p, nil
}

// LoadDir loads every profile file in dir, in name order. Files that fail
// to load are skipped and their errors joined into the returned error.
// A missing directory yields no profiles and no error.
func LoadDir(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsProfileFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var profiles []*Profile
	var errs []error
	for _, name := range names {
		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, errors.Join(errs...)
}

// LoadDir registers every profile found in dir. Profiles that loaded are
// registered even when others failed.
func (r *Registry) LoadDir(dir string) error {
	profiles, err := LoadDir(dir)
	for _, p := range profiles {
		r.Register(p)
	}
	return err
}
