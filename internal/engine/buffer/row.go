package buffer

import (
	"strings"

	"github.com/dshills/chewol/internal/engine/grapheme"
	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/highlight"
)

// Span is a run of adjacent graphemes sharing one token class.
type Span struct {
	Text  string
	Class highlight.TokenClass
}

// Row is one line of text without its line terminator.
type Row struct {
	text    string
	length  int
	classes []highlight.TokenClass

	// Cache key for classes. A row is reused on a highlight pass only when
	// it is fresh, was computed with the same carry-in, and holds no search
	// overlay.
	fresh    bool
	carryIn  bool
	carryOut bool
	overlay  bool
}

// NewRow creates a row holding s.
func NewRow(s string) *Row {
	return &Row{text: s, length: grapheme.Count(s)}
}

// String returns the row's text.
func (r *Row) String() string {
	return r.text
}

// Len returns the number of graphemes in the row.
func (r *Row) Len() int {
	return r.length
}

// IsEmpty reports whether the row has no text.
func (r *Row) IsEmpty() bool {
	return r.length == 0
}

// IsHighlighted reports whether the cached classes match the current text.
func (r *Row) IsHighlighted() bool {
	return r.fresh
}

// Classes returns a copy of the cached classes, one per grapheme.
// It returns nil when the row has not been highlighted since its last edit.
func (r *Row) Classes() []highlight.TokenClass {
	if !r.fresh {
		return nil
	}
	out := make([]highlight.TokenClass, len(r.classes))
	copy(out, r.classes)
	return out
}

// Insert inserts ch before grapheme at. Inserting at Len appends.
func (r *Row) Insert(at int, ch rune) {
	r.InsertString(at, string(ch))
}

// InsertString inserts s before grapheme at. Out of range positions are
// ignored.
func (r *Row) InsertString(at int, s string) {
	if at < 0 || at > r.length || s == "" {
		return
	}
	off := grapheme.Boundaries(r.text)[at]
	r.setText(r.text[:off] + s + r.text[off:])
}

// Delete removes grapheme at.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}
	bounds := grapheme.Boundaries(r.text)
	r.setText(r.text[:bounds[at]] + r.text[bounds[at+1]:])
}

// Append concatenates other onto the end of r.
func (r *Row) Append(other *Row) {
	if other == nil {
		return
	}
	r.setText(r.text + other.text)
}

// Split truncates r to its first at graphemes and returns the rest as a new
// row.
func (r *Row) Split(at int) *Row {
	at = max(0, min(at, r.length))
	off := grapheme.Boundaries(r.text)[at]
	rest := NewRow(r.text[off:])
	r.setText(r.text[:off])
	return rest
}

// Find returns the grapheme index of query in the row. Forward finds the
// first match starting at or after from; Backward finds the last match that
// ends at or before from.
func (r *Row) Find(query string, from int, dir SearchDirection) (int, bool) {
	if query == "" || from < 0 || from > r.length {
		return 0, false
	}
	if dir == Backward {
		return grapheme.LastIndexBefore(r.text, query, from)
	}
	return grapheme.IndexFrom(r.text, query, from)
}

// Highlight classifies the row under profile p and returns whether a block
// comment is still open at the end of the row. word, when not empty, is
// overlaid as Match.
func (r *Row) Highlight(p *filetype.Profile, word string, carryIn bool) bool {
	if r.fresh && word == "" && !r.overlay && r.carryIn == carryIn {
		return r.carryOut
	}
	classes, carryOut := highlight.Classify(grapheme.Split(r.text), p.Options(), word, carryIn)
	r.classes = classes
	r.carryIn = carryIn
	r.carryOut = carryOut
	r.overlay = word != ""
	r.fresh = true
	return carryOut
}

// Render returns the graphemes [start, end) grouped into spans of one class.
// Tabs render as a single space.
func (r *Row) Render(start, end int) []Span {
	end = max(0, min(end, r.length))
	start = max(0, min(start, end))
	if start == end {
		return nil
	}

	clusters := grapheme.Split(r.text)
	var spans []Span
	var b strings.Builder
	cur := highlight.None
	for i := start; i < end; i++ {
		class := highlight.None
		if r.fresh && i < len(r.classes) {
			class = r.classes[i]
		}
		if i > start && class != cur {
			spans = append(spans, Span{Text: b.String(), Class: cur})
			b.Reset()
		}
		cur = class
		if clusters[i] == "\t" {
			b.WriteByte(' ')
		} else {
			b.WriteString(clusters[i])
		}
	}
	return append(spans, Span{Text: b.String(), Class: cur})
}

func (r *Row) setText(s string) {
	r.text = s
	r.length = grapheme.Count(s)
	r.invalidate()
}

func (r *Row) invalidate() {
	r.fresh = false
	r.overlay = false
	r.classes = nil
}
