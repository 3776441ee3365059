package synthmeta

import (
	"iter"

	"github.com/beevik/etree"

	"github.com/pianoware/synthmeta/internal/grouptree"
	"github.com/pianoware/synthmeta/internal/types"
)

// ValidatePath reports whether path is usable for group operations.
//
// A valid path is non-empty with no empty or whitespace-only segments.
// Returns *InvalidPathError otherwise. Every mutating group operation
// performs this check itself before touching the tree.
func ValidatePath(path GroupPath) error {
	return path.Validate()
}

// Groups returns a lazy sequence over the top-level groups.
//
// Each yielded GroupEntry is fully materialized: its direct song
// references and its children, recursively, in document order. Like
// Songs, the sequence is restartable and re-walks current state on every
// iteration.
func (d *Document) Groups() iter.Seq[GroupEntry] {
	return func(yield func(GroupEntry) bool) {
		container := grouptree.Container(d.root)
		if container == nil {
			return
		}
		for _, el := range container.SelectElements(types.GroupTag) {
			if !yield(grouptree.Materialize(el)) {
				return
			}
		}
	}
}

// Group returns the materialized subtree at path and whether the path
// resolves. Unresolvable and empty paths report false rather than an
// error; this is a read-only query.
func (d *Document) Group(path GroupPath) (GroupEntry, bool) {
	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return GroupEntry{}, false
	}
	return grouptree.Materialize(el), true
}

// AddGroup creates a group at path and returns the name actually used.
//
// All segments but the last must already resolve (the empty parent is
// the tree root); otherwise AddGroup fails with *MissingParentError. The
// last segment is a requested name: if a sibling already carries it, a
// counter is appended (" 2", then " 3", ...) until the name is unique.
// Callers must not assume the requested name was used verbatim.
//
//	name, err := doc.AddGroup(synthmeta.GroupPath{"Classical", "Intro"})
//	// name is "Intro", or "Intro 2" if "Intro" was taken, ...
func (d *Document) AddGroup(path GroupPath) (string, error) {
	if err := path.Validate(); err != nil {
		return "", err
	}

	parent, err := d.resolveParent(path.Parent())
	if err != nil {
		return "", err
	}

	name := grouptree.Disambiguate(parent, path.Last(), nil)
	el := parent.CreateElement(types.GroupTag)
	el.CreateAttr(types.NameAttr, name)
	return name, nil
}

// resolveParent resolves the parent portion of a mutation path. The
// empty path is the implicit tree root: the Groups container, created on
// demand so first-time adds succeed on a fresh document.
func (d *Document) resolveParent(parent GroupPath) (*etree.Element, error) {
	if len(parent) == 0 {
		return grouptree.EnsureContainer(d.root), nil
	}
	el := grouptree.Resolve(d.root, parent)
	if el == nil {
		return nil, &MissingParentError{Parent: parent}
	}
	return el, nil
}

// RenameGroup renames the group at path and returns the name actually
// applied.
//
// When newName equals the path's last segment this is a no-op returning
// newName unchanged. Otherwise the group must resolve (*GroupNotFoundError
// if not) and newName is disambiguated against the group's siblings with
// the same counter policy as AddGroup. Returns *InvalidArgumentError
// when newName is empty.
func (d *Document) RenameGroup(path GroupPath, newName string) (string, error) {
	if err := path.Validate(); err != nil {
		return "", err
	}
	if newName == "" {
		return "", &InvalidArgumentError{Arg: "newName", Reason: "group name must not be empty"}
	}
	if newName == path.Last() {
		return newName, nil
	}

	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return "", &GroupNotFoundError{Path: path}
	}

	name := grouptree.Disambiguate(el.Parent(), newName, el)
	el.CreateAttr(types.NameAttr, name)
	return name, nil
}

// RemoveGroup detaches the subtree at path.
//
// A no-op when the path does not resolve; idempotent cleanup has softer
// semantics than operations that must know their target exists.
func (d *Document) RemoveGroup(path GroupPath) error {
	if err := path.Validate(); err != nil {
		return err
	}
	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return nil
	}
	el.Parent().RemoveChild(el)
	return nil
}

// SwapGroups exchanges the positions of two sibling groups under parent.
//
// parent may be empty to swap top-level groups. Both siblings must
// resolve or SwapGroups fails with *GroupNotFoundError and leaves the
// tree unchanged. Both nodes and their positions are captured before
// either moves, so the exchange is a single edit that is safe for
// adjacent siblings.
func (d *Document) SwapGroups(parent GroupPath, nameA, nameB string) error {
	// Extend per branch; Child copies, so the two paths never alias.
	pathA := parent.Child(nameA)
	pathB := parent.Child(nameB)
	if err := pathA.Validate(); err != nil {
		return err
	}
	if err := pathB.Validate(); err != nil {
		return err
	}

	var parentEl *etree.Element
	if len(parent) == 0 {
		parentEl = grouptree.Container(d.root)
	} else {
		parentEl = grouptree.Resolve(d.root, parent)
	}
	if parentEl == nil {
		return &GroupNotFoundError{Path: pathA}
	}

	a := grouptree.FindChild(parentEl, nameA)
	if a == nil {
		return &GroupNotFoundError{Path: pathA}
	}
	b := grouptree.FindChild(parentEl, nameB)
	if b == nil {
		return &GroupNotFoundError{Path: pathB}
	}

	grouptree.Exchange(parentEl, a, b)
	return nil
}

// AddSongToGroup adds a reference to songID directly under the group at
// path.
//
// The group must resolve (*GroupNotFoundError if not) and songID must be
// non-empty (*InvalidArgumentError). If the group already references
// songID directly this is a no-op: duplicates are prevented per group,
// not globally, and the id is never checked against the song registry.
func (d *Document) AddSongToGroup(path GroupPath, songID string) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if songID == "" {
		return &InvalidArgumentError{Arg: "songID", Reason: "song UniqueId must not be empty"}
	}
	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return &GroupNotFoundError{Path: path}
	}
	grouptree.AddSongRef(el, songID)
	return nil
}

// RemoveSongFromGroup removes every direct reference to songID under the
// group at path.
//
// Removal is defensive: all matches go, not just the first, so a file
// hand-edited into carrying duplicates comes out clean. Empty songID and
// an unresolvable path are no-ops.
func (d *Document) RemoveSongFromGroup(path GroupPath, songID string) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if songID == "" {
		return nil
	}
	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return nil
	}
	grouptree.RemoveSongRefs(el, songID)
	return nil
}

// RemoveAllSongsFromGroup removes all direct song references under the
// group at path, leaving child groups untouched. A no-op when the path
// does not resolve.
func (d *Document) RemoveAllSongsFromGroup(path GroupPath) error {
	if err := path.Validate(); err != nil {
		return err
	}
	el := grouptree.Resolve(d.root, path)
	if el == nil {
		return nil
	}
	grouptree.ClearSongRefs(el)
	return nil
}
