package types

import "slices"

// SongEntry is a flat song record from the Songs container.
//
// SongEntry is a view decoded from the underlying document tree, not the
// storage representation itself. Mutating a SongEntry does nothing until
// it is written back through the document's AddSong or SetSongs.
//
// UniqueId is the sole identity key. All other fields are optional:
// string fields default to "", Rating and Difficulty are nil when the
// attribute is absent or not an integer.
type SongEntry struct {
	// UniqueID keys the record. Required for persistence.
	UniqueID string

	Title     string
	Subtitle  string
	Composer  string
	Arranger  string
	Copyright string
	License   string

	// Rating and Difficulty are nil when unset. A nil pointer and a
	// zero value are different things in this format: absent attribute
	// versus literal "0".
	Rating     *int
	Difficulty *int

	// FingerHints and HandParts are opaque encoded blobs owned by the
	// Synthesia app's own format. Carried as-is, never interpreted.
	FingerHints string
	HandParts   string

	// Tags in insertion order. The model does not dedup tags; a literal
	// ";" inside a tag cannot be represented (see TagSeparator).
	Tags []string
}

// Clone returns a deep copy of the entry.
func (s SongEntry) Clone() SongEntry {
	c := s
	c.Tags = slices.Clone(s.Tags)
	if s.Rating != nil {
		r := *s.Rating
		c.Rating = &r
	}
	if s.Difficulty != nil {
		d := *s.Difficulty
		c.Difficulty = &d
	}
	return c
}

// Equal reports whether two entries carry the same field values.
func (s SongEntry) Equal(other SongEntry) bool {
	if s.UniqueID != other.UniqueID ||
		s.Title != other.Title ||
		s.Subtitle != other.Subtitle ||
		s.Composer != other.Composer ||
		s.Arranger != other.Arranger ||
		s.Copyright != other.Copyright ||
		s.License != other.License ||
		s.FingerHints != other.FingerHints ||
		s.HandParts != other.HandParts {
		return false
	}
	if !intPtrEqual(s.Rating, other.Rating) || !intPtrEqual(s.Difficulty, other.Difficulty) {
		return false
	}
	return slices.Equal(s.Tags, other.Tags)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// GroupEntry is a materialized group subtree.
//
// Like SongEntry it is a view: Songs holds the UniqueIds referenced
// directly by the group (weak references, never validated against the
// song registry), Groups holds fully materialized children in document
// order. Mutating a GroupEntry does not touch the document.
type GroupEntry struct {
	Name string

	// Songs lists referenced song UniqueIds in document order.
	Songs []string

	// Groups lists child groups in document order.
	Groups []GroupEntry
}

// Clone returns a deep copy of the subtree.
func (g GroupEntry) Clone() GroupEntry {
	c := g
	c.Songs = slices.Clone(g.Songs)
	if g.Groups != nil {
		c.Groups = make([]GroupEntry, len(g.Groups))
		for i, child := range g.Groups {
			c.Groups[i] = child.Clone()
		}
	}
	return c
}
