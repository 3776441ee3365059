package synthmeta

import (
	"iter"

	"github.com/pianoware/synthmeta/internal/songxml"
	"github.com/pianoware/synthmeta/internal/types"
)

// Songs returns a lazy sequence over the song registry.
//
// Each record under the Songs container is decoded into a SongEntry as
// it is yielded: absent attributes leave fields at their defaults, an
// unparseable Rating or Difficulty leaves the pointer nil with no error,
// and Tags splits on ";" with empty segments dropped.
//
// The sequence is restartable: every range over it re-walks the current
// document state, so it can be iterated any number of times and reflects
// mutations made between iterations.
//
// Example:
//
//	for song := range doc.Songs() {
//		fmt.Printf("%s: %s\n", song.UniqueID, song.Title)
//	}
func (d *Document) Songs() iter.Seq[SongEntry] {
	return func(yield func(SongEntry) bool) {
		container := d.root.SelectElement(types.SongsTag)
		if container == nil {
			return
		}
		for _, el := range container.SelectElements(types.SongTag) {
			if !yield(songxml.Decode(el)) {
				return
			}
		}
	}
}

// SetSongs upserts every entry in the sequence into the registry.
//
// Each entry is applied with AddSong semantics: existing records with a
// matching UniqueId are overwritten in place, new ones are appended.
// Records already in the registry but absent from the input are kept --
// this is an additive replace, not a full sync.
//
// Every entry is validated before anything is written, so a
// *InvalidArgumentError (empty UniqueId) leaves the document unmodified.
func (d *Document) SetSongs(entries iter.Seq[SongEntry]) error {
	var all []SongEntry
	for entry := range entries {
		if entry.UniqueID == "" {
			return &InvalidArgumentError{Arg: "entries", Reason: "song UniqueId must not be empty"}
		}
		all = append(all, entry)
	}
	for _, entry := range all {
		d.upsertSong(entry)
	}
	return nil
}

// AddSong upserts one entry into the registry.
//
// If a record with the entry's UniqueId exists, its recognized
// attributes are overwritten in place (empty fields remove theirs);
// otherwise a new record is appended, creating the Songs container if
// absent. Tags are written ";"-joined; a literal ";" inside a tag is not
// escaped, as the format has no escape syntax.
//
// Returns *InvalidArgumentError when the entry's UniqueId is empty.
func (d *Document) AddSong(entry SongEntry) error {
	if entry.UniqueID == "" {
		return &InvalidArgumentError{Arg: "entry", Reason: "song UniqueId must not be empty"}
	}
	d.upsertSong(entry)
	return nil
}

func (d *Document) upsertSong(entry SongEntry) {
	container := d.root.SelectElement(types.SongsTag)
	if container == nil {
		container = d.root.CreateElement(types.SongsTag)
	}
	el := songxml.FindByID(container, entry.UniqueID)
	if el == nil {
		el = container.CreateElement(types.SongTag)
	}
	songxml.Encode(el, entry)
}

// RemoveSong removes the record keyed by uniqueID from the registry.
//
// A no-op when uniqueID is empty, the Songs container is absent, or no
// record matches. At most one record is expected to match; the scan
// stops at the first hit. Group references to the id are left alone --
// groups may dangle-reference a missing song and readers tolerate that.
func (d *Document) RemoveSong(uniqueID string) {
	if uniqueID == "" {
		return
	}
	container := d.root.SelectElement(types.SongsTag)
	if container == nil {
		return
	}
	if el := songxml.FindByID(container, uniqueID); el != nil {
		container.RemoveChild(el)
	}
}

// FindSong returns the registry record keyed by uniqueID, decoded the
// same way as Songs, and whether one was found.
func (d *Document) FindSong(uniqueID string) (SongEntry, bool) {
	if uniqueID == "" {
		return SongEntry{}, false
	}
	container := d.root.SelectElement(types.SongsTag)
	if container == nil {
		return SongEntry{}, false
	}
	el := songxml.FindByID(container, uniqueID)
	if el == nil {
		return SongEntry{}, false
	}
	return songxml.Decode(el), true
}
