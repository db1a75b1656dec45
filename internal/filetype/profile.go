package filetype

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/chewol/internal/highlight"
)

// PlainName is the name of the profile used when no other profile matches.
const PlainName = "No filetype"

// Profile describes how files of one language are highlighted.
type Profile struct {
	Name       string   `toml:"name" yaml:"name"`
	Extensions []string `toml:"extensions" yaml:"extensions"`

	Characters        bool `toml:"characters" yaml:"characters"`
	Comments          bool `toml:"comments" yaml:"comments"`
	MultilineComments bool `toml:"multiline_comments" yaml:"multiline_comments"`
	Numbers           bool `toml:"numbers" yaml:"numbers"`
	Strings           bool `toml:"strings" yaml:"strings"`

	PrimaryKeywords   []string `toml:"primary_keywords" yaml:"primary_keywords"`
	SecondaryKeywords []string `toml:"secondary_keywords" yaml:"secondary_keywords"`
}

// Plain returns the profile that recognizes nothing.
func Plain() *Profile {
	return &Profile{Name: PlainName}
}

// Options returns the highlighter options for this profile.
func (p *Profile) Options() highlight.Options {
	if p == nil {
		return highlight.Options{}
	}
	return highlight.Options{
		Characters:        p.Characters,
		Comments:          p.Comments,
		MultilineComments: p.MultilineComments,
		Numbers:           p.Numbers,
		Strings:           p.Strings,
		PrimaryKeywords:   p.PrimaryKeywords,
		SecondaryKeywords: p.SecondaryKeywords,
	}
}

// Matches reports whether filename has one of the profile's extensions.
// The comparison ignores case and a leading dot in the configured extension.
func (p *Profile) Matches(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}
	for _, e := range p.Extensions {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}

// Validate checks that the profile can be registered.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile: name is required")
	}
	for _, e := range p.Extensions {
		if strings.Trim(e, ". ") == "" {
			return fmt.Errorf("profile %s: empty extension", p.Name)
		}
	}
	for _, kw := range append(append([]string(nil), p.PrimaryKeywords...), p.SecondaryKeywords...) {
		if kw == "" || strings.ContainsAny(kw, " \t") {
			return fmt.Errorf("profile %s: invalid keyword %q", p.Name, kw)
		}
	}
	return nil
}

// clone returns a deep copy so callers cannot mutate registered profiles.
func (p *Profile) clone() *Profile {
	c := *p
	c.Extensions = append([]string(nil), p.Extensions...)
	c.PrimaryKeywords = append([]string(nil), p.PrimaryKeywords...)
	c.SecondaryKeywords = append([]string(nil), p.SecondaryKeywords...)
	return &c
}
