// Package synthmeta provides non-destructive reading and writing of
// Synthesia metadata documents.
//
// A metadata document describes a catalog of songs and a tree of named
// groups referencing those songs. synthmeta exposes the recognized parts
// of the format for editing while carrying everything else through a
// load then save cycle untouched.
//
// # Quick Start
//
// Reading a metadata file:
//
//	doc, err := synthmeta.Open("library.synthesia")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for song := range doc.Songs() {
//		fmt.Printf("%s - %s\n", song.UniqueID, song.Title)
//	}
//
// Editing and writing it back:
//
//	doc.AddSong(synthmeta.SongEntry{UniqueID: "s1", Title: "Prelude"})
//	name, _ := doc.AddGroup(synthmeta.GroupPath{"Favorites"})
//	doc.AddSongToGroup(synthmeta.GroupPath{name}, "s1")
//
//	if err := doc.Save(synthmeta.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Philosophy
//
// synthmeta embodies three core principles:
//
// 1. Non-destructive: anything in a document the model does not
// recognize (foreign elements, extra attributes, comments) survives a
// load then save round trip in structural terms. The model never
// normalizes, reorders, or drops what it does not own.
//
// 2. Graceful decoding: an attribute that fails to parse leaves its
// field unset instead of failing the record, and a group may reference a
// song id absent from the registry. Readers tolerate real-world files.
//
// 3. Zero surprises: operations that must know their target exists fail
// loudly (AddGroup's parent, RenameGroup, SwapGroups); idempotent
// cleanup operations (RemoveSong, RemoveGroup) are quiet no-ops on a
// miss. Both contracts are documented per method.
//
// # Architecture
//
// The document is stored as a generic labeled tree; typed accessors are
// views constructed on demand, never the storage representation:
//
//	[Document]            - Load/Open/Save, version gate
//	  ├─ [SongEntry]      - flat registry records (Songs, AddSong, ...)
//	  └─ [GroupEntry]     - group tree views (Groups, AddGroup, ...)
//
// Song references inside groups are weak: plain UniqueId strings into
// the registry's address space, with no referential integrity enforced
// in either direction.
//
// # Groups and Paths
//
// Groups are addressed by GroupPath, an ordered sequence of names walked
// from the tree root by exact match. Creating or renaming a group
// disambiguates the requested name against its siblings by appending a
// counter (" 2", " 3", ...) until it is unique, and returns the name
// actually used:
//
//	name, err := doc.AddGroup(synthmeta.GroupPath{"Classical", "Intro"})
//	// "Intro 2" if the Classical group already had an Intro
//
// # Error Handling
//
// Load failures and invalid mutations surface as typed errors
// (FormatError, UnsupportedVersionError, InvalidPathError,
// MissingParentError, GroupNotFoundError, InvalidArgumentError) that
// callers can match with errors.As. Validation happens before mutation:
// a rejected operation leaves the document unmodified, and a failed Load
// returns no document at all.
//
// # Concurrency
//
// A Document is plain mutable state with no internal locking. Share one
// across goroutines only behind a single exclusive lock around each
// operation. OpenMany parses independent files concurrently and is safe
// as long as each resulting Document stays with one goroutine.
package synthmeta
