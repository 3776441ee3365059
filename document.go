package synthmeta

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/beevik/etree"
	"golang.org/x/sync/errgroup"

	"github.com/pianoware/synthmeta/internal/types"
)

// Document is an in-memory Synthesia metadata document.
//
// Document owns the full underlying tree, including any elements and
// attributes the model does not recognize; foreign content survives a
// load then save cycle byte-for-byte in structural terms. Typed access
// goes through the song registry (Songs, AddSong, ...) and the group
// tree (Groups, AddGroup, ...); those accessors are views decoded on
// demand, never a second copy of the data.
//
// A Document is not safe for concurrent use. Callers that share one
// across goroutines must serialize every operation behind a single lock:
// the tree has no finer-grained ownership boundary.
type Document struct {
	// Path the document was opened from. Empty for documents built with
	// New or Load; Save requires it.
	Path string

	xml  *etree.Document
	root *etree.Element
}

// New creates an empty document: an XML declaration and a
// SynthesiaMetadata root with Version="1", no song or group containers.
func New() *Document {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := xml.CreateElement(types.RootTag)
	root.CreateAttr(types.VersionAttr, types.FormatVersion)
	return &Document{xml: xml, root: root}
}

// Load parses a metadata document from r.
//
// The stream is read to completion. Load fails with *FormatError when
// the content is not well-formed or the root element is missing or not
// SynthesiaMetadata, and with *UnsupportedVersionError when the root
// carries a Version attribute other than "1" (an absent Version is
// accepted). On any failure no document is returned.
//
// Everything in the stream that the model does not recognize is kept in
// memory verbatim and re-emitted by WriteTo and Save.
func Load(r io.Reader, opts ...LoadOption) (*Document, error) {
	options := defaultLoadOptions()
	for _, opt := range opts {
		opt(options)
	}

	xml := etree.NewDocument()
	if options.permissive {
		xml.ReadSettings.Permissive = true
	}
	if _, err := xml.ReadFrom(r); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("not well-formed: %v", err)}
	}

	root := xml.Root()
	if root == nil {
		return nil, &FormatError{Reason: "missing root element"}
	}
	if root.Tag != types.RootTag {
		return nil, &FormatError{Reason: fmt.Sprintf("unexpected root element <%s>", root.Tag)}
	}
	if attr := root.SelectAttr(types.VersionAttr); attr != nil && attr.Value != types.FormatVersion {
		return nil, &UnsupportedVersionError{Version: attr.Value}
	}

	return &Document{xml: xml, root: root}, nil
}

// Open reads a metadata document from a file.
//
// Open is a convenience wrapper around Load that records the path for a
// later Save. The file is read to completion and closed before Open
// returns; a Document holds no file handles.
func Open(path string, opts ...LoadOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	doc, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// OpenMany opens multiple metadata files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, OpenMany returns that error and no documents.
func OpenMany(ctx context.Context, paths ...string) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Document, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := Open(path)
			if err != nil {
				return err
			}
			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Version returns the root Version attribute, or "" when absent.
func (d *Document) Version() string {
	return d.root.SelectAttrValue(types.VersionAttr, "")
}

// WriteTo serializes the document to w in current in-memory order,
// preserved foreign content included. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.xml.WriteTo(w)
}

// Save writes the document back to the path it was opened from.
//
// See SaveAs for the write semantics and options.
func (d *Document) Save(opts ...SaveOption) error {
	if d.Path == "" {
		return fmt.Errorf("document has no path: use SaveAs")
	}
	return d.SaveAs(d.Path, opts...)
}

// SaveAs writes the document to a file.
//
// The write is atomic: content goes to a temporary file in the target
// directory first, then a rename replaces the destination. If any step
// fails the destination is left unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := doc.SaveAs("library.synthesia",
//	    synthmeta.WithBackup(".bak"),
//	    synthmeta.WithValidation(),
//	)
func (d *Document) SaveAs(path string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	out := d.xml
	if options.indent >= 0 {
		// Indent on a copy so the in-memory tree stays verbatim.
		out = d.xml.Copy()
		out.Indent(options.indent)
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(path); err == nil {
			origInfo = info
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".synthmeta-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := out.WriteTo(tmp); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		backupPath := path + options.backupSuffix
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if options.preserveModTime && origInfo != nil {
		os.Chtimes(path, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if _, err := Open(path); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}
