package filetype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const zigTOML = `
name = "Zig"
extensions = ["zig"]
comments = true
strings = true
numbers = true
primary_keywords = ["const", "var", "fn", "pub"]
secondary_keywords = ["u8", "usize"]
`

const luaYAML = `
name: Lua
extensions: [lua]
strings: true
numbers: true
primary_keywords: [local, function, end, if, then]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "zig.toml", zigTOML)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Name != "Zig" || !p.Comments || p.MultilineComments {
		t.Errorf("LoadFile() = %+v", p)
	}
	if len(p.PrimaryKeywords) != 4 || p.SecondaryKeywords[1] != "usize" {
		t.Errorf("keywords = %v / %v", p.PrimaryKeywords, p.SecondaryKeywords)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lua.yml", luaYAML)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if p.Name != "Lua" || !p.Matches("init.lua") || p.Comments {
		t.Errorf("LoadFile() = %+v", p)
	}
}

func TestParseErrors(t *testing.T) {
	var perr *ParseError

	_, err := Parse("x.json", []byte(`{}`))
	if !errors.As(err, &perr) || !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse(json) error = %v, want unsupported format", err)
	}

	_, err = Parse("bad.toml", []byte(`name = [`))
	if !errors.As(err, &perr) || perr.Path != "bad.toml" {
		t.Errorf("Parse(bad toml) error = %v", err)
	}

	_, err = Parse("noname.yaml", []byte("extensions: [x]\n"))
	if !errors.As(err, &perr) {
		t.Errorf("Parse(no name) error = %v, want ParseError", err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want not exist", err)
	}
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_zig.toml", zigTOML)
	writeFile(t, dir, "b_lua.yaml", luaYAML)
	writeFile(t, dir, "c_broken.toml", "name = [")
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub.toml"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := Default()
	err := r.LoadDir(dir)
	if err == nil {
		t.Error("LoadDir() should report the broken file")
	}
	if got := r.Detect("main.zig").Name; got != "Zig" {
		t.Errorf("Detect(main.zig) = %q, want Zig", got)
	}
	if got := r.Detect("init.lua").Name; got != "Lua" {
		t.Errorf("Detect(init.lua) = %q, want Lua", got)
	}
	if r.Len() != len(Builtin())+2 {
		t.Errorf("Len() = %d, want %d", r.Len(), len(Builtin())+2)
	}
}

func TestLoadDirMissing(t *testing.T) {
	profiles, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || profiles != nil {
		t.Errorf("LoadDir(missing) = %v, %v; want nil, nil", profiles, err)
	}
}
