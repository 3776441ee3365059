package types

import "fmt"

// FormatError is returned when a document cannot be loaded because the
// root element is missing, malformed, or not a Synthesia metadata root.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid metadata document: %s", e.Reason)
}

// UnsupportedVersionError is returned when the root carries a Version
// attribute the model does not recognize.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported metadata version %q (want %q)", e.Version, FormatVersion)
}

// InvalidPathError is returned when a group path is empty or contains a
// blank segment.
type InvalidPathError struct {
	Path   GroupPath
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid group path %q: %s", e.Path, e.Reason)
}

// MissingParentError is returned by AddGroup when the parent portion of
// the requested path does not resolve to an existing group.
type MissingParentError struct {
	// Parent is the portion of the requested path that failed to resolve.
	Parent GroupPath
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("parent group %q does not exist", e.Parent)
}

// GroupNotFoundError is returned by operations that require their target
// group to exist when the path does not resolve.
type GroupNotFoundError struct {
	Path GroupPath
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("group %q not found", e.Path)
}

// InvalidArgumentError is returned when an argument fails validation
// before any mutation is applied (for example an empty song id).
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}
