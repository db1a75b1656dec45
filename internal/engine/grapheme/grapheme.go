package grapheme

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the substring spanning clusters [start, end).
// Indices are clamped to the text.
func Slice(text string, start, end int) string {
	b := Boundaries(text)
	n := len(b) - 1
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	return text[b[start]:b[end]]
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Boundaries returns the byte offset of every cluster start followed by
// len(text). The result always has Count(text)+1 entries, so b[i] is the
// byte offset of cluster i and b[i+1]-b[i] is its size.
func Boundaries(text string) []int {
	b := make([]int, 0, len(text)+1)
	state := -1
	offset := 0
	rest := text
	for len(rest) > 0 {
		b = append(b, offset)
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
	}
	return append(b, len(text))
}

// IndexOfOffset returns the cluster index starting at byte offset off.
// The boolean is false when off falls inside a cluster. An offset equal to
// len(text) maps to the cluster count.
func IndexOfOffset(bounds []int, off int) (int, bool) {
	i := sort.SearchInts(bounds, off)
	if i < len(bounds) && bounds[i] == off {
		return i, true
	}
	return i, false
}

// IsSeparator reports whether cluster is a single ASCII punctuation or
// ASCII whitespace character.
func IsSeparator(cluster string) bool {
	if len(cluster) != 1 {
		return false
	}
	c := cluster[0]
	switch {
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\f':
		return true
	case c >= '!' && c <= '/', c >= ':' && c <= '@', c >= '[' && c <= '`', c >= '{' && c <= '~':
		return true
	}
	return false
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
