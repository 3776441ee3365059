package synthmeta

import (
	"github.com/pianoware/synthmeta/internal/types"
)

// SongEntry is an alias to types.SongEntry.
// Re-exporting from internal/types keeps one definition shared across packages.
type SongEntry = types.SongEntry

// GroupEntry is an alias to types.GroupEntry.
// Re-exporting from internal/types keeps one definition shared across packages.
type GroupEntry = types.GroupEntry

// GroupPath is an alias to types.GroupPath.
// Re-exporting from internal/types keeps one definition shared across packages.
type GroupPath = types.GroupPath
