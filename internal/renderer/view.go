package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/chewol/internal/engine/buffer"
	"github.com/dshills/chewol/internal/engine/grapheme"
)

// Rows reserved below the text area for the status and message bars.
const chromeRows = 2

// maxNameWidth bounds the filename shown in the status bar.
const maxNameWidth = 20

// Frame is everything the View needs to draw one screen.
type Frame struct {
	Document *buffer.Document
	// Cursor is the cursor position in the document.
	Cursor buffer.Position
	// Offset is the first visible row and grapheme column.
	Offset buffer.Position
	// Message is shown in the message bar. Empty clears it.
	Message string
}

// View draws frames onto a tcell screen.
type View struct {
	screen  tcell.Screen
	theme   *Theme
	welcome string
}

// NewView creates a view drawing on screen. A nil theme selects the default.
func NewView(screen tcell.Screen, theme *Theme) *View {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &View{screen: screen, theme: theme}
}

// SetTheme replaces the theme used by later draws.
func (v *View) SetTheme(theme *Theme) {
	if theme != nil {
		v.theme = theme
	}
}

// Theme returns the current theme.
func (v *View) Theme() *Theme {
	return v.theme
}

// SetWelcome sets the line shown a third of the way down an empty document.
func (v *View) SetWelcome(msg string) {
	v.welcome = msg
}

// TextArea returns the cells available for document rows.
func (v *View) TextArea() (width, height int) {
	w, h := v.screen.Size()
	return w, max(0, h-chromeRows)
}

// Draw renders f and shows the result.
func (v *View) Draw(f Frame) {
	v.screen.Clear()
	width, height := v.TextArea()
	for y := 0; y < height; y++ {
		v.drawRow(f, y, width, height)
	}
	v.drawStatusBar(f, height, width)
	v.drawMessageBar(f, height+1, width)

	if f.Document != nil {
		v.screen.ShowCursor(v.cursorColumn(f), f.Cursor.Row-f.Offset.Row)
	}
	v.screen.Show()
}

func (v *View) drawRow(f Frame, y, width, height int) {
	if f.Document == nil {
		v.drawString(0, y, width, "~", v.theme.Text)
		return
	}
	row, ok := f.Document.Row(f.Offset.Row + y)
	if !ok {
		if f.Document.IsEmpty() && v.welcome != "" && y == height/3 {
			v.drawString(0, y, width, centered(v.welcome, width), v.theme.Text)
			return
		}
		v.drawString(0, y, width, "~", v.theme.Text)
		return
	}

	x := 0
	for _, span := range row.Render(f.Offset.Column, f.Offset.Column+width) {
		x = v.drawString(x, y, width, span.Text, v.theme.Style(span.Class))
		if x >= width {
			break
		}
	}
}

func centered(msg string, width int) string {
	msg = runewidth.Truncate(msg, width, "")
	pad := (width - runewidth.StringWidth(msg)) / 2
	if pad <= 0 {
		return msg
	}
	return "~" + strings.Repeat(" ", pad-1) + msg
}

func (v *View) drawStatusBar(f Frame, y, width int) {
	name := "[No Name]"
	lines, fileType := 0, ""
	modified := ""
	if d := f.Document; d != nil {
		if d.Filename() != "" {
			name = runewidth.Truncate(d.Filename(), maxNameWidth, "")
		}
		lines = d.Len()
		fileType = d.FileTypeName()
		if d.IsDirty() {
			modified = " (modified)"
		}
	}

	left := fmt.Sprintf("%s - %d lines%s", name, lines, modified)
	right := fmt.Sprintf("%s | %d/%d", fileType, f.Cursor.Row+1, lines)
	gap := max(0, width-runewidth.StringWidth(left)-runewidth.StringWidth(right))
	status := left + strings.Repeat(" ", gap) + right

	v.fill(y, width, v.theme.StatusBar)
	v.drawString(0, y, width, status, v.theme.StatusBar)
}

func (v *View) drawMessageBar(f Frame, y, width int) {
	if f.Message != "" {
		v.drawString(0, y, width, f.Message, v.theme.Message)
	}
}

func (v *View) fill(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawString draws text starting at cell x and returns the cell after it.
// Nothing is drawn at or past limit; a wide grapheme that would straddle
// limit is dropped.
func (v *View) drawString(x, y, limit int, text string, style tcell.Style) int {
	for _, cluster := range grapheme.Split(text) {
		w := clusterWidth(cluster)
		if x+w > limit {
			return limit
		}
		runes := []rune(cluster)
		v.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// clusterWidth is the number of cells a grapheme occupies. Zero-width
// clusters such as control characters still take one cell.
func clusterWidth(cluster string) int {
	return max(1, runewidth.StringWidth(cluster))
}

// cursorColumn converts the cursor's grapheme column into a screen cell.
func (v *View) cursorColumn(f Frame) int {
	row, ok := f.Document.Row(f.Cursor.Row)
	if !ok || f.Cursor.Column <= f.Offset.Column {
		return 0
	}
	x := 0
	for _, span := range row.Render(f.Offset.Column, f.Cursor.Column) {
		for _, cluster := range grapheme.Split(span.Text) {
			x += clusterWidth(cluster)
		}
	}
	return x
}
