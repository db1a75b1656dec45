package filetype

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for profile files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported profile format")

// ParseError describes a profile file that could not be decoded or failed
// validation.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("profile %s: %s", e.Path, e.Message)
	}
	return "profile: " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
