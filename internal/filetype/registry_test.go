package filetype

import "testing"

func TestRegistryDetect(t *testing.T) {
	r := Default()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.rs", "Rust"},
		{"main.go", "Go"},
		{"x.HPP", "C"},
		{"app.tsx", "JavaScript"},
		{"README", PlainName},
		{"", PlainName},
	}
	for _, tt := range tests {
		if got := r.Detect(tt.filename).Name; got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}

	var nilRegistry *Registry
	if got := nilRegistry.Detect("main.rs").Name; got != PlainName {
		t.Errorf("nil registry Detect() = %q, want %q", got, PlainName)
	}
}

func TestRegistryRegisterReplacesByName(t *testing.T) {
	r := Default()
	before := r.Len()

	r.Register(&Profile{Name: "rust", Extensions: []string{"rs"}})
	if r.Len() != before {
		t.Errorf("Len() = %d, want %d", r.Len(), before)
	}
	p, ok := r.Lookup("RUST")
	if !ok {
		t.Fatal("Lookup(RUST) not found")
	}
	if p.Comments {
		t.Error("replacement profile should not inherit flags")
	}
}

func TestRegistryLaterWins(t *testing.T) {
	r := Default()
	r.Register(&Profile{Name: "Header", Extensions: []string{"h"}})

	if got := r.Detect("x.h").Name; got != "Header" {
		t.Errorf("Detect(x.h) = %q, want Header", got)
	}
	if got := r.Detect("x.c").Name; got != "C" {
		t.Errorf("Detect(x.c) = %q, want C", got)
	}
}

func TestRegistryIsolation(t *testing.T) {
	p := &Profile{Name: "Mine", Extensions: []string{"mine"}, PrimaryKeywords: []string{"a"}}
	r := NewRegistry(p)
	p.PrimaryKeywords[0] = "changed"
	r.Register(nil)

	got, _ := r.Lookup("Mine")
	if got.PrimaryKeywords[0] != "a" {
		t.Error("registry should copy registered profiles")
	}

	c := r.Clone()
	c.Register(&Profile{Name: "Other"})
	if r.Len() != 1 || c.Len() != 2 {
		t.Errorf("Clone() not independent: %d, %d", r.Len(), c.Len())
	}
	if len(r.Profiles()) != 1 {
		t.Errorf("Profiles() = %d, want 1", len(r.Profiles()))
	}
}
