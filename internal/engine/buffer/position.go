package buffer

import "fmt"

// Position is a row and grapheme column in a Document. Both are 0-indexed.
type Position struct {
	Row    int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Row < other.Row:
		return -1
	case p.Row > other.Row:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// SearchDirection selects which way Find scans.
type SearchDirection uint8

const (
	// Forward finds the first match at or after the start position.
	Forward SearchDirection = iota
	// Backward finds the last match ending before the start position.
	Backward
)

// String returns the direction name.
func (d SearchDirection) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
