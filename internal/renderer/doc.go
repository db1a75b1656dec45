// Package renderer draws a Document onto a tcell screen.
//
// The screen is split into the text area, a status bar and a message bar:
//
//	+------------------------------+
//	| rows of the document         |
//	| ~                            |
//	|[status bar]                  |
//	|message                       |
//	+------------------------------+
//
// Rows come from buffer.Row.Render, so every span already carries its token
// class; the Theme turns classes into styles. Offsets and the cursor are
// grapheme positions; cell columns are computed with go-runewidth so wide
// characters occupy two cells.
package renderer
