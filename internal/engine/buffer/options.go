package buffer

import (
	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/logging"
)

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithRegistry sets the registry used to pick a language profile.
func WithRegistry(r *filetype.Registry) Option {
	return func(d *Document) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithLogger sets the document's logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFilename names the file the document saves to.
func WithFilename(name string) Option {
	return func(d *Document) {
		d.filename = name
	}
}
