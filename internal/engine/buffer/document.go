package buffer

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/logging"
)

// Document is the ordered list of rows of one file.
type Document struct {
	rows     []*Row
	dirty    bool
	filename string
	profile  *filetype.Profile
	registry *filetype.Registry
	logger   *logging.Logger
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		registry: filetype.Default(),
		logger:   logging.Null(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.profile = d.registry.Detect(d.filename)
	return d
}

// Open reads path into a new document. Lines are split on '\n'; a trailing
// '\r' on a line is dropped and a final newline does not start a row.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &IOError{Op: "open", Path: path, Err: ErrInvalidEncoding}
	}

	d := New(append(opts, WithFilename(path))...)
	for _, line := range splitLines(string(data)) {
		d.rows = append(d.rows, NewRow(line))
	}
	d.Highlight("")
	d.logger.Info("opened %s: %d rows, filetype %s", path, len(d.rows), d.profile.Name)
	return d, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Row returns row i.
func (d *Document) Row(i int) (*Row, bool) {
	if i < 0 || i >= len(d.rows) {
		return nil, false
	}
	return d.rows[i], true
}

// IsDirty reports whether the document changed since it was opened or saved.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// Filename returns the file the document saves to, or "" if none.
func (d *Document) Filename() string {
	return d.filename
}

// Profile returns the language profile in use.
func (d *Document) Profile() *filetype.Profile {
	return d.profile
}

// FileTypeName returns the name of the language profile in use.
func (d *Document) FileTypeName() string {
	return d.profile.Name
}

// Text returns the document as it would be written by Save.
func (d *Document) Text() string {
	var b strings.Builder
	for _, row := range d.rows {
		b.WriteString(row.text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Insert inserts ch at pos. A '\n' splits the row. Inserting on the row
// just past the end appends a new row.
func (d *Document) Insert(pos Position, ch rune) {
	if pos.Row < 0 || pos.Row > len(d.rows) {
		return
	}
	if ch == '\n' {
		d.InsertNewline(pos)
		return
	}
	d.dirty = true
	if pos.Row == len(d.rows) {
		row := NewRow("")
		row.Insert(0, ch)
		d.rows = append(d.rows, row)
	} else {
		d.rows[pos.Row].Insert(pos.Column, ch)
	}
	d.Highlight("")
}

// InsertNewline splits the row at pos. On the row just past the end it
// appends an empty row.
func (d *Document) InsertNewline(pos Position) {
	if pos.Row < 0 || pos.Row > len(d.rows) {
		return
	}
	d.dirty = true
	if pos.Row == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
	} else {
		rest := d.rows[pos.Row].Split(pos.Column)
		d.rows = append(d.rows, nil)
		copy(d.rows[pos.Row+2:], d.rows[pos.Row+1:])
		d.rows[pos.Row+1] = rest
	}
	d.Highlight("")
}

// Delete removes the grapheme at pos. At the end of a row that has a
// successor, the successor is joined onto it.
func (d *Document) Delete(pos Position) {
	if pos.Row < 0 || pos.Row >= len(d.rows) {
		return
	}
	d.dirty = true
	row := d.rows[pos.Row]
	if pos.Column == row.Len() && pos.Row+1 < len(d.rows) {
		row.Append(d.rows[pos.Row+1])
		d.rows = append(d.rows[:pos.Row+1], d.rows[pos.Row+2:]...)
	} else {
		row.Delete(pos.Column)
	}
	d.Highlight("")
}

// Find searches for query starting at from. Forward returns the first match
// at or after from; Backward returns the last match ending before from.
func (d *Document) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	if query == "" || from.Row < 0 || from.Row >= len(d.rows) {
		return Position{}, false
	}
	if dir == Backward {
		for y := from.Row; y >= 0; y-- {
			x := d.rows[y].Len()
			if y == from.Row {
				x = from.Column
			}
			if col, ok := d.rows[y].Find(query, x, Backward); ok {
				return Position{Row: y, Column: col}, true
			}
		}
		return Position{}, false
	}
	for y := from.Row; y < len(d.rows); y++ {
		x := 0
		if y == from.Row {
			x = from.Column
		}
		if col, ok := d.rows[y].Find(query, x, Forward); ok {
			return Position{Row: y, Column: col}, true
		}
	}
	return Position{}, false
}

// Highlight classifies every row, threading the block-comment carry from
// each row into the next. A non-empty word is overlaid as a search match.
func (d *Document) Highlight(word string) {
	carry := false
	for _, row := range d.rows {
		carry = row.Highlight(d.profile, word, carry)
	}
}

// SetRegistry replaces the profile registry, re-detects the profile and
// re-highlights.
func (d *Document) SetRegistry(r *filetype.Registry) {
	if r == nil {
		return
	}
	d.registry = r
	d.setProfile(r.Detect(d.filename))
}

func (d *Document) setProfile(p *filetype.Profile) {
	d.profile = p
	for _, row := range d.rows {
		row.invalidate()
	}
	d.Highlight("")
}

// Save writes the document to its file. It does nothing when the document
// has no filename. The file is replaced atomically; on failure the document
// stays dirty.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}
	if err := writeAtomic(d.filename, d.rows); err != nil {
		d.logger.Error("save %s: %v", d.filename, err)
		return &IOError{Op: "save", Path: d.filename, Err: err}
	}
	d.setProfile(d.registry.Detect(d.filename))
	d.dirty = false
	d.logger.Info("saved %s: %d rows", d.filename, len(d.rows))
	return nil
}

// SaveAs sets the document's filename to path and saves it.
func (d *Document) SaveAs(path string) error {
	d.filename = path
	return d.Save()
}

func writeAtomic(path string, rows []*Row) (err error) {
	perm := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = f.Chmod(perm); err != nil {
		f.Close()
		return err
	}
	if err = writeRows(f, rows); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func writeRows(f *os.File, rows []*Row) error {
	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(row.text); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
