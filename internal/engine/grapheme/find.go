package grapheme

import "strings"

// IndexFrom returns the cluster index of the first occurrence of query that
// starts at or after cluster from. A byte match that starts or ends inside a
// cluster is not a match; the search resumes past it.
func IndexFrom(text, query string, from int) (int, bool) {
	if query == "" || from < 0 {
		return 0, false
	}
	bounds := Boundaries(text)
	if from > len(bounds)-1 {
		return 0, false
	}
	idx, _, ok := indexFrom(text, query, bounds, bounds[from])
	return idx, ok
}

// indexFrom returns the start and end cluster indices of the first aligned
// match at or after byte offset off.
func indexFrom(text, query string, bounds []int, off int) (int, int, bool) {
	for off <= len(text) {
		i := strings.Index(text[off:], query)
		if i < 0 {
			return 0, 0, false
		}
		start := off + i
		first, startOK := IndexOfOffset(bounds, start)
		last, endOK := IndexOfOffset(bounds, start+len(query))
		if startOK && endOK {
			return first, last, true
		}
		off = start + 1
	}
	return 0, 0, false
}

// LastIndexBefore returns the cluster index of the last occurrence of query
// lying entirely within clusters [0, before).
func LastIndexBefore(text, query string, before int) (int, bool) {
	if query == "" || before < 0 {
		return 0, false
	}
	bounds := Boundaries(text)
	if before > len(bounds)-1 {
		return 0, false
	}
	limit := bounds[before]
	for limit > 0 {
		start := strings.LastIndex(text[:limit], query)
		if start < 0 {
			return 0, false
		}
		end := start + len(query)
		idx, startOK := IndexOfOffset(bounds, start)
		_, endOK := IndexOfOffset(bounds, end)
		if startOK && endOK {
			return idx, true
		}
		limit = end - 1
	}
	return 0, false
}

// Span is a half-open range of cluster indices.
type Span struct {
	Start, End int
}

// IndexAll returns every non-overlapping occurrence of query, scanning left
// to right.
func IndexAll(text, query string) []Span {
	if query == "" {
		return nil
	}
	bounds := Boundaries(text)
	var out []Span
	from := 0
	for from < len(bounds) {
		start, end, ok := indexFrom(text, query, bounds, bounds[from])
		if !ok {
			break
		}
		out = append(out, Span{Start: start, End: end})
		from = end
	}
	return out
}
