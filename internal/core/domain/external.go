package domain

import "slices"

// ExternalModuleSet holds logical module names that are built outside the
// project (standard library modules, prebuilt third-party modules). Members
// are leaves: they never depend on anything inside the project.
type ExternalModuleSet struct {
	names map[string]struct{}
}

// DefaultExternalModules returns the modules every toolchain is assumed to ship.
func DefaultExternalModules() ExternalModuleSet {
	return NewExternalModuleSet("std", "std.compat")
}

// NewExternalModuleSet builds a set from the given names. Empty names are ignored.
func NewExternalModuleSet(names ...string) ExternalModuleSet {
	s := ExternalModuleSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is an external module.
func (s ExternalModuleSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Union returns a new set holding the members of both sets.
func (s ExternalModuleSet) Union(other ExternalModuleSet) ExternalModuleSet {
	out := ExternalModuleSet{names: make(map[string]struct{}, len(s.names)+len(other.names))}
	for n := range s.names {
		out.names[n] = struct{}{}
	}
	for n := range other.names {
		out.names[n] = struct{}{}
	}
	return out
}

// Len returns the number of members.
func (s ExternalModuleSet) Len() int {
	return len(s.names)
}

// Names returns the members in sorted order.
func (s ExternalModuleSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
