package permission

import "sort"

// Set is an immutable collection of opaque permission identifiers granted to
// a principal within its organization. The zero value is an empty set and is
// safe to query.
type Set struct {
	members map[string]struct{}
}

// NewSet builds a [Set] from the given identifiers. Empty identifiers and
// duplicates are discarded.
func NewSet(ids ...string) Set {
	if len(ids) == 0 {
		return Set{}
	}

	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		members[id] = struct{}{}
	}

	return Set{members: members}
}

// Has reports whether the identifier is a member of the set.
func (s Set) Has(id string) bool {
	if len(s.members) == 0 {
		return false
	}
	_, ok := s.members[id]
	return ok
}

// HasAny reports whether at least one of the identifiers is a member.
func (s Set) HasAny(ids ...string) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// List returns the members in sorted order. The returned slice is a copy.
func (s Set) List() []string {
	out := make([]string, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
