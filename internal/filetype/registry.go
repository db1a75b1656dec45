package filetype

import (
	"strings"
	"sync"
)

// Registry holds the known profiles in registration order.
// Later registrations win when extensions overlap.
type Registry struct {
	mu       sync.RWMutex
	profiles []*Profile
}

// NewRegistry creates a registry holding the given profiles.
func NewRegistry(profiles ...*Profile) *Registry {
	r := &Registry{}
	for _, p := range profiles {
		r.Register(p)
	}
	return r
}

// Default returns a registry holding the built-in profiles.
func Default() *Registry {
	return NewRegistry(Builtin()...)
}

// Register adds p. A profile with the same name (ignoring case) is replaced
// in place; otherwise p is appended.
func (r *Registry) Register(p *Profile) {
	if p == nil {
		return
	}
	p = p.clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.profiles {
		if strings.EqualFold(existing.Name, p.Name) {
			r.profiles[i] = p
			return
		}
	}
	r.profiles = append(r.profiles, p)
}

// Detect returns the profile for filename, or the plain profile when none
// matches.
func (r *Registry) Detect(filename string) *Profile {
	if r == nil || filename == "" {
		return Plain()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.profiles) - 1; i >= 0; i-- {
		if r.profiles[i].Matches(filename) {
			return r.profiles[i]
		}
	}
	return Plain()
}

// Lookup returns the profile with the given name.
func (r *Registry) Lookup(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return NewRegistry(r.Profiles()...)
}
