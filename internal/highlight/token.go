// Package highlight classifies the grapheme clusters of a line into token
// classes for display.
//
// The classifier is a single left-to-right pass over one line. The only
// state that crosses a line boundary is whether the line ends inside an
// unterminated block comment; callers thread that carry from one row to
// the next explicitly.
package highlight

// TokenClass is the display category of a single grapheme cluster.
type TokenClass uint8

// Token classes.
const (
	None TokenClass = iota
	Character
	Comment
	MultilineComment
	Number
	String
	PrimaryKeyword
	SecondaryKeyword

	// Match marks an occurrence of the active search word. It is an overlay
	// applied after classification and never part of a row's base classes.
	Match

	tokenClassCount
)

var tokenClassNames = [...]string{
	None:             "none",
	Character:        "character",
	Comment:          "comment",
	MultilineComment: "multiline-comment",
	Number:           "number",
	String:           "string",
	PrimaryKeyword:   "primary-keyword",
	SecondaryKeyword: "secondary-keyword",
	Match:            "match",
}

// String returns the name of the class.
func (c TokenClass) String() string {
	if c < tokenClassCount {
		return tokenClassNames[c]
	}
	return "unknown"
}

// IsComment returns true for line and block comments.
func (c TokenClass) IsComment() bool {
	return c == Comment || c == MultilineComment
}

// ParseTokenClass converts a class name back into a TokenClass.
func ParseTokenClass(name string) (TokenClass, bool) {
	for i, n := range tokenClassNames {
		if n == name {
			return TokenClass(i), true
		}
	}
	return None, false
}

// Classes returns every token class in declaration order.
func Classes() []TokenClass {
	out := make([]TokenClass, tokenClassCount)
	for i := range out {
		out[i] = TokenClass(i)
	}
	return out
}
