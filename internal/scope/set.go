package scope

import "slices"

// Set is a deduplicated collection of addresses. It has no order; use
// Sorted when order matters.
type Set map[Addr]struct{}

// NewSet returns a set holding addrs.
func NewSet(addrs ...Addr) Set {
	s := make(Set, len(addrs))
	s.Add(addrs...)
	return s
}

// Add inserts addrs, ignoring ones already present.
func (s Set) Add(addrs ...Addr) {
	for _, a := range addrs {
		s[a] = struct{}{}
	}
}

// AddSet inserts every address of other.
func (s Set) AddSet(other Set) {
	for a := range other {
		s[a] = struct{}{}
	}
}

// Contains reports whether a is in s.
func (s Set) Contains(a Addr) bool {
	_, ok := s[a]
	return ok
}

// Len returns the number of addresses in s.
func (s Set) Len() int {
	return len(s)
}

// Difference returns a new set with the addresses of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for a := range s {
		if _, excluded := other[a]; !excluded {
			out[a] = struct{}{}
		}
	}
	return out
}

// Sorted returns the addresses of s in ascending order.
func (s Set) Sorted() []Addr {
	out := make([]Addr, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Strings returns the addresses of s as dotted quads, ascending.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, a := range sorted {
		out[i] = a.String()
	}
	return out
}
