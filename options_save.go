package synthmeta

// SaveOption configures behavior when saving metadata documents to files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := doc.Save(
//	    synthmeta.WithBackup(".bak"),
//	    synthmeta.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving documents.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	indent          int    // Spaces per level; -1 leaves structure verbatim
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
		indent:          -1, // Verbatim: whitespace is preserved content too
	}
}

// WithBackup keeps the previous file before saving over it.
//
// The backup file has the suffix appended to the original filename. For
// example, WithBackup(".bak") keeps "library.synthesia.bak" before
// replacing "library.synthesia". An existing backup is overwritten.
//
// Example:
//
//	err := doc.Save(synthmeta.WithBackup(".bak"))
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify it loads.
//
// After saving, the written file is opened again and must pass the same
// root and version checks as any load. This adds overhead but catches a
// bad write before the caller moves on.
//
// Example:
//
//	err := doc.Save(synthmeta.WithValidation())
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the current
// time. This option restores the original timestamp after the write.
//
// Example:
//
//	err := doc.Save(synthmeta.WithPreserveModTime())
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithIndent re-indents the output with the given spaces per level.
//
// By default the document is written with its structure byte-faithful to
// what was loaded, whitespace included, which is what round-trip
// fidelity requires. Indenting rewrites that whitespace; use it for
// freshly built documents or when readability matters more than a
// byte-identical round trip. The in-memory tree is not modified.
//
// Example:
//
//	err := doc.SaveAs("library.synthesia", synthmeta.WithIndent(2))
func WithIndent(spaces int) SaveOption {
	return func(o *saveOptions) {
		o.indent = spaces
	}
}
