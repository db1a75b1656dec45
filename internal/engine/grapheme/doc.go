// Package grapheme provides grapheme cluster helpers for the editing engine.
//
// A grapheme cluster is a user-perceived character and may span several
// code points (a base letter plus combining marks, an emoji ZWJ sequence,
// a CRLF pair). Every positional argument in the engine is a grapheme
// index, never a byte offset or a rune index. This package is the single
// place where byte offsets produced by the standard library are translated
// back into grapheme indices.
//
// Segmentation follows Unicode Standard Annex #29 via github.com/rivo/uniseg.
package grapheme
