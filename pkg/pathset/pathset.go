// Package pathset keeps an ordered, duplicate-free collection of
// fieldpath.Path values and serializes the whole collection
// deterministically.
package pathset

import (
	"sort"

	"github.com/rawbytedev/fieldpath"
)

// Set holds unique Paths ordered by fieldpath.Compare. The zero value
// is an empty set ready for use.
type Set struct {
	paths []fieldpath.Path
}

// New builds a set from the given paths, dropping duplicates.
func New(paths ...fieldpath.Path) *Set {
	s := &Set{}
	for _, p := range paths {
		s.Insert(p)
	}
	return s
}

// search returns the insertion index for p and whether p is present.
func (s *Set) search(p fieldpath.Path) (int, bool) {
	i := sort.Search(len(s.paths), func(i int) bool {
		return s.paths[i].Compare(p) >= 0
	})
	return i, i < len(s.paths) && s.paths[i].Equal(p)
}

// Insert adds p, keeping order. Reports false if p was already there.
func (s *Set) Insert(p fieldpath.Path) bool {
	i, ok := s.search(p)
	if ok {
		return false
	}
	s.paths = append(s.paths, fieldpath.Path{})
	copy(s.paths[i+1:], s.paths[i:])
	s.paths[i] = p
	return true
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p fieldpath.Path) bool {
	_, ok := s.search(p)
	return ok
}

// Delete removes p. Reports false if p was not there.
func (s *Set) Delete(p fieldpath.Path) bool {
	i, ok := s.search(p)
	if !ok {
		return false
	}
	s.paths = append(s.paths[:i], s.paths[i+1:]...)
	return true
}

// Len is the number of paths in the set.
func (s *Set) Len() int { return len(s.paths) }

// Paths returns the members in Compare order.
func (s *Set) Paths() []fieldpath.Path {
	out := make([]fieldpath.Path, len(s.paths))
	copy(out, s.paths)
	return out
}

// Marshal returns the serialized members in Compare order, so equal
// sets always marshal identically.
func (s *Set) Marshal() []string {
	out := make([]string, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.Serialize()
	}
	return out
}

// Unmarshal rebuilds a set from serialized entries. Order and
// duplicates in the input do not matter. The first malformed entry
// aborts with its parse error.
func Unmarshal(entries []string) (*Set, error) {
	s := &Set{paths: make([]fieldpath.Path, 0, len(entries))}
	for _, e := range entries {
		p, err := fieldpath.Deserialize(e)
		if err != nil {
			return nil, err
		}
		s.Insert(p)
	}
	return s, nil
}
