package app

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/engine/buffer"
	"github.com/dshills/chewol/internal/engine/grapheme"
)

const searchPrompt = "Search (ESC to cancel, Arrows to navigate): "

// prompt reads a line of input in the message bar. onKey, if set, runs after
// every key that does not end the prompt. Enter accepts, Esc cancels; both a
// cancel and an empty answer return "".
func (a *Application) prompt(label string, onKey func(ev *tcell.EventKey, input string)) (string, error) {
	var input string
	for {
		a.setStatus(label + input)
		a.refresh()

		ev, err := a.readKey()
		if err != nil {
			return "", err
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			a.setStatus("")
			return input, nil
		case tcell.KeyEsc:
			a.setStatus("")
			return "", nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			input = grapheme.Slice(input, 0, grapheme.Count(input)-1)
		case tcell.KeyRune:
			if !unicode.IsControl(ev.Rune()) {
				input += string(ev.Rune())
			}
		}
		if onKey != nil {
			onKey(ev, input)
		}
	}
}

// save writes the document, asking for a name first if it has none.
func (a *Application) save() error {
	var err error
	if a.doc.Filename() == "" {
		name, perr := a.prompt("Save as: ", nil)
		if perr != nil {
			return perr
		}
		if name == "" {
			a.setStatus("Save aborted.")
			return nil
		}
		err = a.doc.SaveAs(name)
	} else {
		err = a.doc.Save()
	}

	if err != nil {
		a.logger.Error("%v", NewOperationError("save", a.doc.Filename(), err))
		a.setStatus("Error writing file!")
		return nil
	}
	a.setStatus("File saved successfully.")
	return nil
}

// search runs an incremental search. Right and Down jump to the next match,
// Left and Up to the previous one. Cancelling restores the cursor.
func (a *Application) search() error {
	start, startOffset := a.cursor, a.offset
	dir := buffer.Forward

	query, err := a.prompt(searchPrompt, func(ev *tcell.EventKey, query string) {
		moved := false
		switch ev.Key() {
		case tcell.KeyRight, tcell.KeyDown:
			dir = buffer.Forward
			a.moveCursor(tcell.KeyRight)
			moved = true
		case tcell.KeyLeft, tcell.KeyUp:
			dir = buffer.Backward
		default:
			dir = buffer.Forward
		}

		if pos, ok := a.doc.Find(query, a.cursor, dir); ok {
			a.cursor = pos
			a.scroll()
		} else if moved {
			a.moveCursor(tcell.KeyLeft)
		}
		a.doc.Highlight(query)
	})
	if err != nil {
		return err
	}

	if query == "" {
		a.cursor, a.offset = start, startOffset
		a.scroll()
	}
	a.doc.Highlight("")
	return nil
}
