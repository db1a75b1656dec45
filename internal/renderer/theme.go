package renderer

import (
	"errors"
	"fmt"
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/highlight"
)

// Theme maps token classes and editor chrome to styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Text is used for the tilde filler and any class without a style.
	Text tcell.Style

	// StatusBar is used for the inverted status line.
	StatusBar tcell.Style

	// Message is used for the message bar.
	Message tcell.Style

	// Tokens maps token classes to their styles.
	Tokens map[highlight.TokenClass]tcell.Style
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	fg := func(r, g, b int32) tcell.Style {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
	}
	return &Theme{
		Name:      "default",
		Text:      tcell.StyleDefault,
		StatusBar: fg(63, 63, 63).Background(tcell.NewRGBColor(239, 239, 239)),
		Message:   tcell.StyleDefault,
		Tokens: map[highlight.TokenClass]tcell.Style{
			highlight.None:             fg(255, 255, 255),
			highlight.Character:        fg(108, 113, 196),
			highlight.Comment:          fg(133, 153, 0),
			highlight.MultilineComment: fg(133, 153, 0),
			highlight.Number:           fg(220, 163, 163),
			highlight.String:           fg(211, 54, 130),
			highlight.PrimaryKeyword:   fg(181, 137, 0),
			highlight.SecondaryKeyword: fg(42, 161, 152),
			highlight.Match:            fg(38, 139, 210),
		},
	}
}

// Style returns the style for a token class.
func (t *Theme) Style(class highlight.TokenClass) tcell.Style {
	if s, ok := t.Tokens[class]; ok {
		return s
	}
	return t.Text
}

// Clone returns a deep copy of the theme.
func (t *Theme) Clone() *Theme {
	c := *t
	c.Tokens = maps.Clone(t.Tokens)
	return &c
}

// Override sets the foreground color of each named class. Names are token
// class names such as "string"; colors are #rrggbb. Bad entries are
// reported together and the good ones are still applied.
func (t *Theme) Override(colors map[string]string) error {
	if t.Tokens == nil {
		t.Tokens = make(map[highlight.TokenClass]tcell.Style)
	}
	var errs []error
	for name, value := range colors {
		class, ok := highlight.ParseTokenClass(name)
		if !ok {
			errs = append(errs, fmt.Errorf("theme: unknown token class %q", name))
			continue
		}
		color, err := ParseColor(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", name, err))
			continue
		}
		t.Tokens[class] = t.Style(class).Foreground(color)
	}
	return errors.Join(errs...)
}

// ParseColor parses a #rrggbb color.
func ParseColor(s string) (tcell.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}
