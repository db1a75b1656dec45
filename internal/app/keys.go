package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/engine/buffer"
)

// handleKey applies one key press to the editor.
func (a *Application) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		if a.doc.IsDirty() && a.quitTimes > 0 {
			a.setStatus(fmt.Sprintf("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", a.quitTimes))
			a.quitTimes--
			return nil
		}
		a.quit = true
		return nil
	case tcell.KeyCtrlS:
		if err := a.save(); err != nil {
			return err
		}
	case tcell.KeyCtrlF:
		if err := a.search(); err != nil {
			return err
		}
	case tcell.KeyRune:
		a.insert(ev.Rune())
	case tcell.KeyTab:
		a.insert('\t')
	case tcell.KeyEnter:
		a.insert('\n')
	case tcell.KeyDelete:
		a.doc.Delete(a.cursor)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.cursor.Column > 0 || a.cursor.Row > 0 {
			a.moveCursor(tcell.KeyLeft)
			a.doc.Delete(a.cursor)
		}
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
		tcell.KeyPgUp, tcell.KeyPgDn, tcell.KeyHome, tcell.KeyEnd:
		a.moveCursor(ev.Key())
	}

	a.scroll()
	if a.quitTimes < a.maxQuitTimes {
		a.quitTimes = a.maxQuitTimes
		a.setStatus("")
	}
	return nil
}

// insert types r at the cursor and steps past it. A combining mark joins the
// grapheme before the cursor, so the cursor stays put.
func (a *Application) insert(r rune) {
	before := a.rowLen(a.cursor.Row)
	rows := a.doc.Len()
	a.doc.Insert(a.cursor, r)
	if r == '\n' || a.doc.Len() > rows || a.rowLen(a.cursor.Row) > before {
		a.moveCursor(tcell.KeyRight)
	}
}

func (a *Application) rowLen(i int) int {
	if row, ok := a.doc.Row(i); ok {
		return row.Len()
	}
	return 0
}

// moveCursor moves the cursor one step. The cursor may sit one row past the
// last row, where typing starts a new row.
func (a *Application) moveCursor(key tcell.Key) {
	_, pageHeight := a.view.TextArea()
	height := a.doc.Len()
	pos := a.cursor
	width := a.rowLen(pos.Row)

	switch key {
	case tcell.KeyUp:
		pos.Row = max(0, pos.Row-1)
	case tcell.KeyDown:
		if pos.Row < height {
			pos.Row++
		}
	case tcell.KeyLeft:
		if pos.Column > 0 {
			pos.Column--
		} else if pos.Row > 0 {
			pos.Row--
			pos.Column = a.rowLen(pos.Row)
		}
	case tcell.KeyRight:
		if pos.Column < width {
			pos.Column++
		} else if pos.Row < height {
			pos.Row++
			pos.Column = 0
		}
	case tcell.KeyPgUp:
		pos.Row = max(0, pos.Row-pageHeight)
	case tcell.KeyPgDn:
		pos.Row = min(height, pos.Row+pageHeight)
	case tcell.KeyHome:
		pos.Column = 0
	case tcell.KeyEnd:
		pos.Column = width
	}

	pos.Column = min(pos.Column, a.rowLen(pos.Row))
	a.cursor = pos
}

// scroll adjusts the offset so the cursor is inside the text area.
func (a *Application) scroll() {
	width, height := a.view.TextArea()
	a.offset = scrollAxis(a.cursor, a.offset, width, height)
}

func scrollAxis(cursor, offset buffer.Position, width, height int) buffer.Position {
	if cursor.Row < offset.Row {
		offset.Row = cursor.Row
	} else if height > 0 && cursor.Row >= offset.Row+height {
		offset.Row = cursor.Row - height + 1
	}
	if cursor.Column < offset.Column {
		offset.Column = cursor.Column
	} else if width > 0 && cursor.Column >= offset.Column+width {
		offset.Column = cursor.Column - width + 1
	}
	return offset
}
