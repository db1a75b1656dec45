// Package buffer holds the editable text of one file as an ordered list of
// rows.
//
// Positions are grapheme indices: column n names the nth user-perceived
// character of a row, never a byte or rune offset. Every row caches its own
// syntax classification; a Document threads the block-comment carry from
// row to row on each highlight pass so that a comment opened on one row
// colors the rows that follow it.
//
// A Document is not safe for concurrent use. The editor drives it from a
// single event loop.
package buffer
