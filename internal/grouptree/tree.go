// Package grouptree implements path resolution, name disambiguation, and
// membership edits over the Group elements of a metadata document.
//
// All functions operate directly on the underlying tree. Groups are
// matched by exact Name attribute; at each path step the first matching
// child wins. Song references inside groups are weak: they are plain
// UniqueId strings and are never checked against the song registry.
package grouptree

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/pianoware/synthmeta/internal/types"
)

// Container returns the Groups element under root, or nil.
func Container(root *etree.Element) *etree.Element {
	return root.SelectElement(types.GroupsTag)
}

// EnsureContainer returns the Groups element under root, creating and
// appending it if absent.
func EnsureContainer(root *etree.Element) *etree.Element {
	if c := Container(root); c != nil {
		return c
	}
	return root.CreateElement(types.GroupsTag)
}

// FindChild returns the first Group child of parent whose Name equals
// name, or nil.
func FindChild(parent *etree.Element, name string) *etree.Element {
	for _, el := range parent.SelectElements(types.GroupTag) {
		if el.SelectAttrValue(types.NameAttr, "") == name {
			return el
		}
	}
	return nil
}

// Resolve walks the path from the tree root and returns the group it
// names, or nil as soon as any segment fails to match. The empty path
// resolves to nil at this layer; public operations validate paths before
// calling in.
func Resolve(root *etree.Element, path types.GroupPath) *etree.Element {
	if len(path) == 0 {
		return nil
	}
	container := Container(root)
	if container == nil {
		return nil
	}
	return ResolveUnder(container, path)
}

// ResolveUnder walks the path downward from parent. The empty path
// resolves to parent itself.
func ResolveUnder(parent *etree.Element, path types.GroupPath) *etree.Element {
	current := parent
	for _, name := range path {
		current = FindChild(current, name)
		if current == nil {
			return nil
		}
	}
	return current
}

// Disambiguate returns desired if no sibling group under parent carries
// that name, otherwise the first free "desired 2", "desired 3", ...
// skip, when non-nil, is excluded from the taken check (the group being
// renamed does not collide with itself).
func Disambiguate(parent *etree.Element, desired string, skip *etree.Element) string {
	name := desired
	for n := 2; nameTaken(parent, name, skip); n++ {
		name = desired + " " + strconv.Itoa(n)
	}
	return name
}

func nameTaken(parent *etree.Element, name string, skip *etree.Element) bool {
	for _, el := range parent.SelectElements(types.GroupTag) {
		if el == skip {
			continue
		}
		if el.SelectAttrValue(types.NameAttr, "") == name {
			return true
		}
	}
	return false
}

// Exchange swaps the positions of sibling tokens a and b among parent's
// children as one edit. Both nodes and their indices are captured before
// anything moves; the two-step remove/reinsert is safe for adjacent
// siblings and for any foreign tokens interleaved between them.
func Exchange(parent, a, b *etree.Element) {
	if a == b {
		return
	}
	ia, ib := a.Index(), b.Index()
	if ia > ib {
		a, b = b, a
		ia, ib = ib, ia
	}
	parent.RemoveChildAt(ia)
	parent.RemoveChildAt(ib - 1)
	parent.InsertChildAt(ia, b)
	parent.InsertChildAt(ib, a)
}

// Materialize builds the GroupEntry view of a group subtree: its name,
// its direct song references, and its children, recursively, all in
// document order. Unrecognized child elements are skipped by the view
// but remain in the tree.
func Materialize(el *etree.Element) types.GroupEntry {
	g := types.GroupEntry{Name: el.SelectAttrValue(types.NameAttr, "")}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case types.SongTag:
			g.Songs = append(g.Songs, child.SelectAttrValue(types.UniqueIDAttr, ""))
		case types.GroupTag:
			g.Groups = append(g.Groups, Materialize(child))
		}
	}
	return g
}

// HasSongRef reports whether group holds a direct reference to id.
func HasSongRef(group *etree.Element, id string) bool {
	for _, el := range group.SelectElements(types.SongTag) {
		if el.SelectAttrValue(types.UniqueIDAttr, "") == id {
			return true
		}
	}
	return false
}

// AddSongRef appends a reference to id unless one already exists
// directly under group. Reports whether a reference was added.
func AddSongRef(group *etree.Element, id string) bool {
	if HasSongRef(group, id) {
		return false
	}
	ref := group.CreateElement(types.SongTag)
	ref.CreateAttr(types.UniqueIDAttr, id)
	return true
}

// RemoveSongRefs removes every direct reference to id under group,
// not just the first. Duplicates can enter through hand-edited files, so
// removal does not assume a single match. Returns the number removed.
func RemoveSongRefs(group *etree.Element, id string) int {
	removed := 0
	for _, el := range group.SelectElements(types.SongTag) {
		if el.SelectAttrValue(types.UniqueIDAttr, "") == id {
			group.RemoveChild(el)
			removed++
		}
	}
	return removed
}

// ClearSongRefs removes all direct song references under group, leaving
// child groups and foreign content in place. Returns the number removed.
func ClearSongRefs(group *etree.Element) int {
	refs := group.SelectElements(types.SongTag)
	for _, el := range refs {
		group.RemoveChild(el)
	}
	return len(refs)
}
