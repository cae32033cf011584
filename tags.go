package kharcha

import "strings"

// The tag registry is a deduplicated vocabulary shared by all transactions.
// Membership is case-insensitive, but the stored form keeps the casing of
// the first sighting: "food" typed after "Food" exists resolves to "Food".

// Tags returns the registry in its stored order.
func (l *Ledger) Tags() []string {
	return append([]string(nil), l.tags...)
}

// HasTag reports whether the registry contains the tag, matching
// case-insensitively.
func (l *Ledger) HasTag(tag string) bool {
	_, ok := l.canonicalTag(tag)
	return ok
}

// EnsureTag registers the candidate if no case-insensitive match exists and
// returns the canonical form, so a transaction's stored tag always matches
// the registry's casing regardless of what the user typed.
func (l *Ledger) EnsureTag(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	if canonical, ok := l.canonicalTag(candidate); ok {
		return canonical
	}
	l.tags = append(l.tags, candidate)
	return candidate
}

// DeleteTag removes the tag from the registry and strips it from every
// transaction's tag set. Irreversible; the caller is responsible for
// confirming first.
func (l *Ledger) DeleteTag(tag string) bool {
	canonical, ok := l.canonicalTag(tag)
	if !ok {
		return false
	}
	kept := l.tags[:0]
	for _, t := range l.tags {
		if t != canonical {
			kept = append(kept, t)
		}
	}
	l.tags = kept

	for i := range l.transactions {
		tx := &l.transactions[i]
		if len(tx.Tags) == 0 {
			continue
		}
		keptTags := tx.Tags[:0]
		for _, t := range tx.Tags {
			if t != canonical {
				keptTags = append(keptTags, t)
			}
		}
		tx.Tags = keptTags
	}
	return true
}

func (l *Ledger) canonicalTag(tag string) (string, bool) {
	for _, t := range l.tags {
		if strings.EqualFold(t, tag) {
			return t, true
		}
	}
	return "", false
}

// canonicalTags maps a tag list through the registry, registering unknown
// tags and dropping duplicates while preserving first-selected order.
func (l *Ledger) canonicalTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		canonical := l.EnsureTag(tag)
		if canonical == "" {
			continue
		}
		dup := false
		for _, have := range out {
			if have == canonical {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, canonical)
		}
	}
	return out
}

// TagSet is the working tag selection of a transaction form. Semantically a
// set with case-insensitive identity, but the selection order is preserved
// for display.
type TagSet struct {
	ledger *Ledger
	tags   []string
}

// NewTagSet creates a working set resolving against the ledger's registry.
func NewTagSet(l *Ledger, initial ...string) *TagSet {
	s := &TagSet{ledger: l}
	for _, tag := range initial {
		s.Select(tag)
	}
	return s
}

// Select adds the tag to the working set, registering it if needed.
// Idempotent: selecting an already-selected tag (any casing) is a no-op.
func (s *TagSet) Select(tag string) {
	canonical := s.ledger.EnsureTag(tag)
	if canonical == "" || s.Has(canonical) {
		return
	}
	s.tags = append(s.tags, canonical)
}

// Deselect removes the tag from the working set. Idempotent.
func (s *TagSet) Deselect(tag string) {
	for i, have := range s.tags {
		if strings.EqualFold(have, tag) {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

// Toggle flips the tag's membership in the working set.
func (s *TagSet) Toggle(tag string) {
	if s.Has(tag) {
		s.Deselect(tag)
	} else {
		s.Select(tag)
	}
}

// Has reports membership, matching case-insensitively.
func (s *TagSet) Has(tag string) bool {
	for _, have := range s.tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// Slice returns the selected tags in selection order.
func (s *TagSet) Slice() []string {
	return append([]string(nil), s.tags...)
}
