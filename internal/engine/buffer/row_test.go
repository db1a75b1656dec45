package buffer

import (
	"strings"
	"testing"

	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/highlight"
)

const (
	family     = "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	decomposed = "e\u0301"
)

func pattern(classes []highlight.TokenClass) string {
	var sb strings.Builder
	for _, c := range classes {
		switch c {
		case highlight.None:
			sb.WriteByte('.')
		case highlight.Comment:
			sb.WriteByte('/')
		case highlight.MultilineComment:
			sb.WriteByte('*')
		case highlight.Number:
			sb.WriteByte('n')
		case highlight.String:
			sb.WriteByte('s')
		case highlight.PrimaryKeyword:
			sb.WriteByte('k')
		case highlight.SecondaryKeyword:
			sb.WriteByte('t')
		case highlight.Match:
			sb.WriteByte('m')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

func TestNewRow(t *testing.T) {
	tests := []struct {
		text string
		len  int
	}{
		{"", 0},
		{"hello", 5},
		{"caf" + decomposed, 4},
		{"a" + family + "b", 3},
		{"\t", 1},
	}
	for _, tt := range tests {
		r := NewRow(tt.text)
		if r.Len() != tt.len {
			t.Errorf("NewRow(%q).Len() = %d, want %d", tt.text, r.Len(), tt.len)
		}
		if r.String() != tt.text {
			t.Errorf("NewRow(%q).String() = %q", tt.text, r.String())
		}
		if r.IsEmpty() != (tt.len == 0) {
			t.Errorf("NewRow(%q).IsEmpty() = %v", tt.text, r.IsEmpty())
		}
	}
}

func TestRowInsert(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		ch   rune
		want string
	}{
		{"middle", "helo", 3, 'l', "hello"},
		{"start", "ello", 0, 'h', "hello"},
		{"append", "hell", 4, 'o', "hello"},
		{"past end", "hell", 5, 'o', "hell"},
		{"negative", "hell", -1, 'o', "hell"},
		{"empty", "", 0, 'x', "x"},
		{"after cluster", "a" + family, 2, 'b', "a" + family + "b"},
		{"before cluster", family, 0, 'a', "a" + family},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow(tt.text)
			r.Insert(tt.at, tt.ch)
			if r.String() != tt.want {
				t.Errorf("got %q, want %q", r.String(), tt.want)
			}
			if r.Len() != NewRow(tt.want).Len() {
				t.Errorf("Len() = %d, want %d", r.Len(), NewRow(tt.want).Len())
			}
		})
	}
}

func TestRowInsertCombiningMark(t *testing.T) {
	r := NewRow("e")
	r.Insert(1, '\u0301')
	if r.String() != decomposed {
		t.Fatalf("got %q", r.String())
	}
	if r.Len() != 1 {
		t.Errorf("combining mark should join the previous cluster, Len() = %d", r.Len())
	}
}

func TestRowDelete(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want string
	}{
		{"middle", "hexllo", 2, "hello"},
		{"last", "hello!", 5, "hello"},
		{"out of range", "hello", 5, "hello"},
		{"negative", "hello", -1, "hello"},
		{"whole cluster", "a" + family + "b", 1, "ab"},
		{"decomposed", "caf" + decomposed + "s", 3, "cafs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow(tt.text)
			r.Delete(tt.at)
			if r.String() != tt.want {
				t.Errorf("got %q, want %q", r.String(), tt.want)
			}
		})
	}
}

func TestRowSplitAppend(t *testing.T) {
	tests := []struct {
		text       string
		at         int
		head, tail string
	}{
		{"hello", 2, "he", "llo"},
		{"hello", 0, "", "hello"},
		{"hello", 5, "hello", ""},
		{"hello", 9, "hello", ""},
		{"hello", -3, "", "hello"},
		{"a" + family + "b", 2, "a" + family, "b"},
	}
	for _, tt := range tests {
		r := NewRow(tt.text)
		rest := r.Split(tt.at)
		if r.String() != tt.head || rest.String() != tt.tail {
			t.Errorf("Split(%q, %d) = %q, %q; want %q, %q", tt.text, tt.at, r.String(), rest.String(), tt.head, tt.tail)
		}
		if r.Len()+rest.Len() != NewRow(tt.text).Len() {
			t.Errorf("Split(%q, %d) lengths %d+%d", tt.text, tt.at, r.Len(), rest.Len())
		}
		r.Append(rest)
		if r.String() != tt.text {
			t.Errorf("Append after Split(%q, %d) = %q", tt.text, tt.at, r.String())
		}
	}
}

func TestRowFind(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		from  int
		dir   SearchDirection
		want  int
		found bool
	}{
		{"forward first", "abcabc", "bc", 0, Forward, 1, true},
		{"forward from match", "abcabc", "bc", 1, Forward, 1, true},
		{"forward skip", "abcabc", "bc", 2, Forward, 4, true},
		{"forward none", "abcabc", "bc", 5, Forward, 0, false},
		{"forward at end", "abcabc", "bc", 6, Forward, 0, false},
		{"past end", "abcabc", "bc", 7, Forward, 0, false},
		{"negative", "abcabc", "bc", -1, Forward, 0, false},
		{"empty query", "abcabc", "", 0, Forward, 0, false},
		{"backward from end", "abcabc", "bc", 6, Backward, 4, true},
		{"backward straddle", "abcabc", "bc", 5, Backward, 1, true},
		{"backward exact end", "abcabc", "bc", 3, Backward, 1, true},
		{"backward none", "abcabc", "bc", 2, Backward, 0, false},
		{"backward at start", "abcabc", "a", 0, Backward, 0, false},
		{"cluster index", family + "xy", "y", 0, Forward, 2, true},
		{"partial cluster", "caf" + decomposed, "cafe", 0, Forward, 0, false},
		{"whole cluster", "caf" + decomposed, decomposed, 0, Forward, 3, true},
		{"skip partial", "caf" + decomposed + " cafe", "cafe", 0, Forward, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewRow(tt.text).Find(tt.query, tt.from, tt.dir)
			if ok != tt.found || (ok && got != tt.want) {
				t.Errorf("Find(%q, %d, %v) = %d, %v; want %d, %v", tt.query, tt.from, tt.dir, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestRowHighlight(t *testing.T) {
	rust := filetype.Rust()
	r := NewRow("let x = 5; // hi")
	if r.IsHighlighted() {
		t.Fatal("new row should not be highlighted")
	}
	if r.Classes() != nil {
		t.Fatal("unhighlighted row should have no classes")
	}
	if carry := r.Highlight(rust, "", false); carry {
		t.Error("unexpected carry-out")
	}
	if got, want := pattern(r.Classes()), "kkk.....n../////"; got != want {
		t.Errorf("classes = %s, want %s", got, want)
	}
	if len(r.Classes()) != r.Len() {
		t.Errorf("len(Classes()) = %d, want %d", len(r.Classes()), r.Len())
	}

	r.Insert(0, ' ')
	if r.IsHighlighted() || r.Classes() != nil {
		t.Error("edit should invalidate the cache")
	}
}

func TestRowHighlightNilProfile(t *testing.T) {
	r := NewRow("let x = 5")
	r.Highlight(nil, "", false)
	if got, want := pattern(r.Classes()), "........."; got != want {
		t.Errorf("classes = %s, want %s", got, want)
	}
}

func TestRowHighlightCarry(t *testing.T) {
	rust := filetype.Rust()

	open := NewRow("/* open")
	if !open.Highlight(rust, "", false) {
		t.Error("open comment should carry out")
	}
	if got, want := pattern(open.Classes()), "*******"; got != want {
		t.Errorf("classes = %s, want %s", got, want)
	}
	// Cached rows keep reporting the open comment.
	if !open.Highlight(rust, "", false) {
		t.Error("cached row should still carry out")
	}

	closing := NewRow("x */ y")
	if closing.Highlight(rust, "", true) {
		t.Error("closed comment should not carry out")
	}
	if got, want := pattern(closing.Classes()), "****.."; got != want {
		t.Errorf("carry-in classes = %s, want %s", got, want)
	}

	// A different carry-in must reclassify the row.
	closing.Highlight(rust, "", false)
	if got, want := pattern(closing.Classes()), "......"; got != want {
		t.Errorf("no carry-in classes = %s, want %s", got, want)
	}
}

func TestRowHighlightOverlay(t *testing.T) {
	rust := filetype.Rust()
	r := NewRow("let x = x")
	r.Highlight(rust, "x", false)
	if got, want := pattern(r.Classes()), "kkk.m...m"; got != want {
		t.Errorf("overlay classes = %s, want %s", got, want)
	}
	r.Highlight(rust, "", false)
	if got, want := pattern(r.Classes()), "kkk......"; got != want {
		t.Errorf("classes after clearing overlay = %s, want %s", got, want)
	}
}

func TestRowRender(t *testing.T) {
	rust := filetype.Rust()
	r := NewRow("let x")
	r.Highlight(rust, "", false)

	tests := []struct {
		name       string
		start, end int
		want       []Span
	}{
		{"all", 0, 5, []Span{{"let", highlight.PrimaryKeyword}, {" x", highlight.None}}},
		{"inside", 1, 2, []Span{{"e", highlight.PrimaryKeyword}}},
		{"clamped", 3, 100, []Span{{" x", highlight.None}}},
		{"inverted", 4, 2, nil},
		{"empty", 5, 5, nil},
		{"negative", -2, 1, []Span{{"l", highlight.PrimaryKeyword}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Render(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("Render(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRowRenderText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{"tab", "a\tb", 0, 3, "a b"},
		{"combining mark kept", "caf" + decomposed, 3, 4, decomposed},
		{"cluster kept", "a" + family + "b", 1, 2, family},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow(tt.text)
			spans := r.Render(tt.start, tt.end)
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1", len(spans))
			}
			if spans[0].Text != tt.want || spans[0].Class != highlight.None {
				t.Errorf("got %v, want {%q None}", spans[0], tt.want)
			}
		})
	}
}
