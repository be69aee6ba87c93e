package matcher

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/locus/internal/geo"
)

// Reference set construction errors.
var (
	ErrEmptyReference     = errors.New("reference name must not be empty")
	ErrDuplicateReference = errors.New("duplicate reference name")
)

// Reference is a named, pre-validated matching target. The point label carries
// the canonical address written into matched records.
type Reference struct {
	Name  string    // Name is the unique lookup key, e.g. a building name.
	Point geo.Point // Point is the reference coordinate labeled with its address.
}

// ReferenceSet is an ordered, immutable collection of references.
// It is safe for concurrent use once constructed.
type ReferenceSet struct {
	refs   []Reference
	byName map[string]int
}

// NewReferenceSet builds a reference set preserving the given order.
// Names must be non-empty and unique.
func NewReferenceSet(refs ...Reference) (*ReferenceSet, error) {
	set := &ReferenceSet{
		refs:   make([]Reference, 0, len(refs)),
		byName: make(map[string]int, len(refs)),
	}

	for idx, ref := range refs {
		if ref.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyReference, idx)
		}
		if _, exists := set.byName[ref.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReference, ref.Name)
		}
		set.byName[ref.Name] = len(set.refs)
		set.refs = append(set.refs, ref)
	}

	return set, nil
}

// Len returns the number of references.
func (s *ReferenceSet) Len() int { return len(s.refs) }

// All returns a copy of the references in iteration order.
func (s *ReferenceSet) All() []Reference {
	out := make([]Reference, len(s.refs))
	copy(out, s.refs)
	return out
}

// Lookup returns the reference registered under name.
func (s *ReferenceSet) Lookup(name string) (Reference, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return Reference{}, false
	}
	return s.refs[idx], true
}
