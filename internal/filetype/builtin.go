package filetype

// Rust returns the built-in Rust profile.
func Rust() *Profile {
	return &Profile{
		Name:              "Rust",
		Extensions:        []string{"rs"},
		Characters:        true,
		Comments:          true,
		MultilineComments: true,
		Numbers:           true,
		Strings:           true,
		PrimaryKeywords: []string{
			"as", "break", "const", "continue", "crate", "else", "enum", "extern",
			"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
			"move", "mut", "pub", "ref", "return", "self", "Self", "static",
			"struct", "super", "trait", "true", "type", "unsafe", "use", "where",
			"while", "dyn", "abstract", "become", "box", "do", "final", "macro",
			"override", "priv", "typeof", "unsized", "virtual", "yield", "async",
			"await", "try",
		},
		SecondaryKeywords: []string{
			"bool", "char", "i8", "i16", "i32", "i64", "isize",
			"u8", "u16", "u32", "u64", "usize", "f32", "f64",
		},
	}
}

// Go returns the built-in Go profile.
func Go() *Profile {
	return &Profile{
		Name:              "Go",
		Extensions:        []string{"go"},
		Characters:        true,
		Comments:          true,
		MultilineComments: true,
		Numbers:           true,
		Strings:           true,
		PrimaryKeywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var", "true", "false", "nil", "iota",
		},
		SecondaryKeywords: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
		},
	}
}

// C returns the built-in C and C++ profile.
func C() *Profile {
	return &Profile{
		Name:              "C",
		Extensions:        []string{"c", "h", "cpp", "hpp", "cc"},
		Characters:        true,
		Comments:          true,
		MultilineComments: true,
		Numbers:           true,
		Strings:           true,
		PrimaryKeywords: []string{
			"auto", "break", "case", "continue", "default", "do", "else", "enum",
			"extern", "for", "goto", "if", "register", "return", "sizeof", "static",
			"struct", "switch", "typedef", "union", "volatile", "while", "NULL",
			"class", "namespace", "new", "delete", "nullptr", "private", "protected",
			"public", "template", "this", "throw", "try", "catch", "virtual",
		},
		SecondaryKeywords: []string{
			"int", "long", "double", "float", "char", "unsigned", "signed",
			"void", "short", "const", "bool",
		},
	}
}

// JavaScript returns the built-in JavaScript and TypeScript profile.
func JavaScript() *Profile {
	return &Profile{
		Name:              "JavaScript",
		Extensions:        []string{"js", "jsx", "mjs", "cjs", "ts", "tsx"},
		Comments:          true,
		MultilineComments: true,
		Numbers:           true,
		Strings:           true,
		PrimaryKeywords: []string{
			"if", "else", "for", "while", "do", "switch", "case", "default",
			"break", "continue", "return", "throw", "try", "catch", "finally",
			"function", "var", "let", "const", "class", "extends", "async",
			"await", "import", "export", "from", "new", "delete", "typeof",
			"instanceof", "in", "of", "this", "super", "yield",
		},
		SecondaryKeywords: []string{
			"true", "false", "null", "undefined", "NaN", "Infinity",
		},
	}
}

// Builtin returns fresh copies of every built-in profile.
func Builtin() []*Profile {
	return []*Profile{Rust(), Go(), C(), JavaScript()}
}
