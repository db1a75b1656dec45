package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/highlight"
)

func foreground(s tcell.Style) tcell.Color {
	fg, _, _ := s.Decompose()
	return fg
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	tests := []struct {
		class   highlight.TokenClass
		r, g, b int32
	}{
		{highlight.None, 255, 255, 255},
		{highlight.Character, 108, 113, 196},
		{highlight.Comment, 133, 153, 0},
		{highlight.MultilineComment, 133, 153, 0},
		{highlight.Number, 220, 163, 163},
		{highlight.String, 211, 54, 130},
		{highlight.PrimaryKeyword, 181, 137, 0},
		{highlight.SecondaryKeyword, 42, 161, 152},
		{highlight.Match, 38, 139, 210},
	}
	for _, tt := range tests {
		want := tcell.NewRGBColor(tt.r, tt.g, tt.b)
		if got := foreground(theme.Style(tt.class)); got != want {
			t.Errorf("%v foreground = %v, want %v", tt.class, got, want)
		}
	}
	for _, class := range highlight.Classes() {
		if _, ok := theme.Tokens[class]; !ok {
			t.Errorf("default theme has no style for %v", class)
		}
	}
}

func TestThemeStyleFallback(t *testing.T) {
	theme := &Theme{Text: tcell.StyleDefault.Bold(true)}
	if got := theme.Style(highlight.String); got != theme.Text {
		t.Errorf("missing class should fall back to Text, got %v", got)
	}
}

func TestThemeOverride(t *testing.T) {
	theme := DefaultTheme()
	err := theme.Override(map[string]string{
		"string":  "#010203",
		"keyword": "#ffffff",
		"number":  "red",
	})
	if err == nil {
		t.Fatal("expected errors for bad entries")
	}
	for _, want := range []string{`"keyword"`, "number"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
	if got, want := foreground(theme.Style(highlight.String)), tcell.NewRGBColor(1, 2, 3); got != want {
		t.Errorf("string foreground = %v, want %v", got, want)
	}
	if got, want := foreground(theme.Style(highlight.Number)), tcell.NewRGBColor(220, 163, 163); got != want {
		t.Errorf("number should keep its color, got %v", got)
	}
}

func TestThemeClone(t *testing.T) {
	theme := DefaultTheme()
	clone := theme.Clone()
	if err := clone.Override(map[string]string{"match": "#000000"}); err != nil {
		t.Fatal(err)
	}
	if foreground(theme.Style(highlight.Match)) == foreground(clone.Style(highlight.Match)) {
		t.Error("override of a clone leaked into the original")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"#000000", true},
		{"#Ab12eF", true},
		{"#12345", false},
		{"123456", false},
		{"#zzzzzz", false},
		{"", false},
	}
	for _, tt := range tests {
		_, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
	}
}
