package synthmeta

// LoadOption configures behavior when loading metadata documents.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	doc, err := synthmeta.Open("library.synthesia",
//	    synthmeta.WithPermissive(),
//	)
type LoadOption func(*loadOptions)

// loadOptions holds configuration for loading documents.
type loadOptions struct {
	permissive bool // Tolerate minor XML irregularities
}

// defaultLoadOptions returns the default configuration.
func defaultLoadOptions() *loadOptions {
	return &loadOptions{
		permissive: false,
	}
}

// WithPermissive tolerates minor XML irregularities while loading.
//
// By default a document must be strictly well-formed. With permissive
// loading enabled, recoverable issues (unclosed tags near EOF, stray
// characters) are glossed over where possible instead of failing the
// load. The root element and version checks still apply.
//
// Use this for recovering data from files damaged by hand-editing.
//
// Example:
//
//	doc, err := synthmeta.Open("damaged.synthesia", synthmeta.WithPermissive())
func WithPermissive() LoadOption {
	return func(o *loadOptions) {
		o.permissive = true
	}
}
