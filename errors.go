package synthmeta

import (
	"github.com/pianoware/synthmeta/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types keeps one definition shared across packages.
type FormatError = types.FormatError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
// Re-exporting from internal/types keeps one definition shared across packages.
type UnsupportedVersionError = types.UnsupportedVersionError

// InvalidPathError is an alias to types.InvalidPathError.
// Re-exporting from internal/types keeps one definition shared across packages.
type InvalidPathError = types.InvalidPathError

// MissingParentError is an alias to types.MissingParentError.
// Re-exporting from internal/types keeps one definition shared across packages.
type MissingParentError = types.MissingParentError

// GroupNotFoundError is an alias to types.GroupNotFoundError.
// Re-exporting from internal/types keeps one definition shared across packages.
type GroupNotFoundError = types.GroupNotFoundError

// InvalidArgumentError is an alias to types.InvalidArgumentError.
// Re-exporting from internal/types keeps one definition shared across packages.
type InvalidArgumentError = types.InvalidArgumentError
