package highlight

import (
	"slices"

	"github.com/dshills/chewol/internal/engine/grapheme"
)

// Options selects the recognizers that run for a line. It is usually built
// from a language profile.
type Options struct {
	Characters        bool
	Comments          bool
	MultilineComments bool
	Numbers           bool
	Strings           bool
	PrimaryKeywords   []string
	SecondaryKeywords []string
}

// Classify assigns a token class to every grapheme cluster of line.
//
// carryIn reports that the previous line ended inside an unterminated block
// comment. The returned bool is the carry for the next line. When word is
// non-empty every occurrence of it is overlaid with Match.
func Classify(line []string, opts Options, word string, carryIn bool) ([]TokenClass, bool) {
	s := scanner{
		line:      line,
		opts:      &opts,
		classes:   make([]TokenClass, len(line)),
		primary:   splitKeywords(opts.PrimaryKeywords),
		secondary: splitKeywords(opts.SecondaryKeywords),
	}

	if carryIn {
		end, closed := s.closeAfter(0)
		if !closed {
			s.mark(len(line), MultilineComment)
			s.open = true
		} else {
			s.mark(end, MultilineComment)
		}
	}

	for s.pos < len(s.line) {
		n, class := s.next()
		if n < 1 {
			n, class = 1, None
		}
		s.mark(n, class)
	}

	if word != "" {
		for _, m := range grapheme.IndexAll(grapheme.Join(line), word) {
			for i := m.Start; i < m.End && i < len(s.classes); i++ {
				s.classes[i] = Match
			}
		}
	}

	return s.classes, s.open
}

// ClassifyString splits text into grapheme clusters and classifies them.
func ClassifyString(text string, opts Options, word string, carryIn bool) ([]TokenClass, bool) {
	return Classify(grapheme.Split(text), opts, word, carryIn)
}

// scanner holds the cursor of one Classify call.
type scanner struct {
	line      []string
	opts      *Options
	classes   []TokenClass
	primary   [][]string
	secondary [][]string
	pos       int

	// open is set when the line ends inside a block comment.
	open bool
}

// next runs the recognizers in priority order at the cursor and returns the
// number of clusters the first matching one consumes. Zero means no
// recognizer matched.
func (s *scanner) next() (int, TokenClass) {
	if n := s.blockComment(); n > 0 {
		return n, MultilineComment
	}
	if n := s.character(); n > 0 {
		return n, Character
	}
	if n := s.lineComment(); n > 0 {
		return n, Comment
	}
	if n := s.keyword(s.primary); n > 0 {
		return n, PrimaryKeyword
	}
	if n := s.keyword(s.secondary); n > 0 {
		return n, SecondaryKeyword
	}
	if n := s.str(); n > 0 {
		return n, String
	}
	if n := s.number(); n > 0 {
		return n, Number
	}
	return 0, None
}

// mark tags n clusters from the cursor and advances past them.
func (s *scanner) mark(n int, class TokenClass) {
	for ; n > 0 && s.pos < len(s.line); n-- {
		s.classes[s.pos] = class
		s.pos++
	}
}

func (s *scanner) at(i int) string {
	if i < 0 || i >= len(s.line) {
		return ""
	}
	return s.line[i]
}

func (s *scanner) rest() int {
	return len(s.line) - s.pos
}

func (s *scanner) boundaryBefore() bool {
	return s.pos == 0 || grapheme.IsSeparator(s.line[s.pos-1])
}

// closeAfter returns the index just past the first "*/" starting at or
// after from.
func (s *scanner) closeAfter(from int) (int, bool) {
	for i := from; i+1 < len(s.line); i++ {
		if s.line[i] == "*" && s.line[i+1] == "/" {
			return i + 2, true
		}
	}
	return 0, false
}

func (s *scanner) blockComment() int {
	if !s.opts.MultilineComments || s.at(s.pos) != "/" || s.at(s.pos+1) != "*" {
		return 0
	}
	end, closed := s.closeAfter(s.pos + 2)
	if !closed {
		s.open = true
		return s.rest()
	}
	return end - s.pos
}

// character matches 'x' and '\x'.
func (s *scanner) character() int {
	if !s.opts.Characters || s.at(s.pos) != "'" || s.at(s.pos+1) == "" {
		return 0
	}
	closing := s.pos + 2
	if s.at(s.pos+1) == `\` {
		closing = s.pos + 3
	}
	if s.at(closing) != "'" {
		return 0
	}
	return closing - s.pos + 1
}

func (s *scanner) lineComment() int {
	if !s.opts.Comments || s.at(s.pos) != "/" || s.at(s.pos+1) != "/" {
		return 0
	}
	return s.rest()
}

func (s *scanner) keyword(words [][]string) int {
	if !s.boundaryBefore() {
		return 0
	}
	for _, kw := range words {
		end := s.pos + len(kw)
		if end > len(s.line) {
			continue
		}
		if end < len(s.line) && !grapheme.IsSeparator(s.line[end]) {
			continue
		}
		if slices.Equal(s.line[s.pos:end], kw) {
			return len(kw)
		}
	}
	return 0
}

func (s *scanner) str() int {
	if !s.opts.Strings || s.at(s.pos) != `"` {
		return 0
	}
	for i := s.pos + 1; i < len(s.line); i++ {
		if s.line[i] == `"` {
			return i - s.pos + 1
		}
	}
	return s.rest()
}

// number matches a run of digits and dots that starts with a digit after a
// word boundary. "1.2.3" is a single run.
func (s *scanner) number() int {
	if !s.opts.Numbers || !grapheme.IsDigit(s.at(s.pos)) || !s.boundaryBefore() {
		return 0
	}
	i := s.pos + 1
	for i < len(s.line) && (grapheme.IsDigit(s.line[i]) || s.line[i] == ".") {
		i++
	}
	return i - s.pos
}

// splitKeywords splits every keyword into clusters, dropping empty ones.
func splitKeywords(words []string) [][]string {
	out := make([][]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, grapheme.Split(w))
	}
	return out
}
