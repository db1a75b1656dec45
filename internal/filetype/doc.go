// Package filetype maps file names to language profiles.
//
// A Profile names a language and selects which token classes the
// highlighter recognizes for it, together with its primary and secondary
// keyword lists. Profiles are immutable once registered.
//
// Besides the built-in profiles, profiles can be loaded from TOML or YAML
// files:
//
//	name = "Zig"
//	extensions = ["zig"]
//	comments = true
//	strings = true
//	numbers = true
//	primary_keywords = ["const", "var", "fn", "pub"]
//	secondary_keywords = ["u8", "i32", "usize"]
//
// A Watcher reloads a profile directory whenever its files change.
package filetype
