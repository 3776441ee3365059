package types

import (
	"fmt"
	"strings"
)

// GroupPath is an ordered sequence of group names describing a walk from
// the group tree root through child groups by exact name match.
//
// Paths are value types. Child returns a fresh slice rather than
// appending to the receiver's backing array, so two paths built from the
// same parent never alias each other.
type GroupPath []string

// Validate reports whether the path is usable for group operations.
//
// A valid path is non-empty and has no empty or whitespace-only
// segments. Returns *InvalidPathError otherwise.
func (p GroupPath) Validate() error {
	if len(p) == 0 {
		return &InvalidPathError{Path: p, Reason: "path is empty"}
	}
	for i, seg := range p {
		if strings.TrimSpace(seg) == "" {
			return &InvalidPathError{Path: p, Reason: fmt.Sprintf("segment %d is blank", i)}
		}
	}
	return nil
}

// Child returns a copy of the path extended by one segment.
func (p GroupPath) Child(name string) GroupPath {
	child := make(GroupPath, 0, len(p)+1)
	child = append(child, p...)
	return append(child, name)
}

// Parent returns the path without its last segment. The parent of a
// single-segment path is the empty path (the implicit tree root).
func (p GroupPath) Parent() GroupPath {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final segment, or "" for the empty path.
func (p GroupPath) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// String renders the path with "/" separators, for messages and logs.
// Group names may themselves contain "/", so this is not parseable.
func (p GroupPath) String() string {
	return strings.Join(p, "/")
}
