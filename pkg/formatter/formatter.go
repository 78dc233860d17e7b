// Package formatter orchestrates one formatting operation: it owns the
// buffer for the operation, runs the structural passes in order, invokes the
// printer call-out, and returns the result only when every pass succeeded.
// Nothing partial is ever handed back.
package formatter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/frontmatter"
	"github.com/yaklabco/mdtidy/pkg/passes"
	"github.com/yaklabco/mdtidy/pkg/printer"
	"github.com/yaklabco/mdtidy/pkg/textedit"
	"github.com/yaklabco/mdtidy/pkg/upload"
)

// Result is the outcome of a successful formatting operation.
type Result struct {
	// Text is the fully formatted document.
	Text string

	// Cursor is the remapped cursor offset into Text. Valid only when
	// Tracked is true.
	Cursor  int
	Tracked bool

	// Changed reports whether Text differs from the input.
	Changed bool
}

// Formatter runs formatting operations. It is safe to reuse across files;
// each operation gets its own buffer and the only cross-operation state is
// the upload rewriter's session-scoped failed-URL memory.
type Formatter struct {
	cfg      *config.Config
	printer  printer.Printer
	ignore   *frontmatter.IgnoreFilter
	rewriter *upload.Rewriter
}

// Option customizes a Formatter.
type Option func(*Formatter)

// WithPrinter replaces the built-in printer.
func WithPrinter(p printer.Printer) Option {
	return func(f *Formatter) { f.printer = p }
}

// WithUploader replaces the COS uploader, regardless of config.
func WithUploader(u upload.Uploader) Option {
	return func(f *Formatter) {
		f.rewriter = upload.NewRewriter(u, f.cfg.Upload)
	}
}

// New creates a Formatter for the given configuration.
func New(cfg *config.Config, opts ...Option) (*Formatter, error) {
	ignore, err := frontmatter.NewIgnoreFilter(cfg.Ignore)
	if err != nil {
		return nil, err
	}

	f := &Formatter{
		cfg:     cfg,
		printer: printer.NewNormalizer(),
		ignore:  ignore,
	}
	if cfg.Upload.Enabled {
		f.rewriter = upload.NewRewriter(upload.NewCOSUploader(cfg.Upload), cfg.Upload)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Skip reports whether the gates exempt this document from formatting: a
// path matching an ignore pattern, or frontmatter turning the disable key
// off.
func (f *Formatter) Skip(path, text string) bool {
	return f.ignore.Ignored(path) || frontmatter.Disabled(text, f.cfg.DisableKey)
}

// Format formats a document in fast mode, without cursor tracking.
func (f *Formatter) Format(ctx context.Context, text string) (Result, error) {
	return f.run(ctx, text, textedit.NoCursor())
}

// FormatWithCursor formats a document while keeping the given cursor offset
// valid through every edit.
func (f *Formatter) FormatWithCursor(ctx context.Context, text string, cursor int) (Result, error) {
	if cursor < 0 || cursor > len(text) {
		return Result{}, fmt.Errorf("formatter: cursor %d out of range [0, %d]", cursor, len(text))
	}
	return f.run(ctx, text, textedit.TrackCursor(cursor))
}

func (f *Formatter) run(ctx context.Context, text string, cur textedit.Cursor) (Result, error) {
	b := textedit.NewBuffer(text)

	var err error
	if f.cfg.HeadingStartLevel > 0 {
		if cur, err = passes.ShiftHeadings(b, f.cfg.HeadingStartLevel, cur); err != nil {
			return Result{}, err
		}
	}
	if f.cfg.NumberHeadings {
		if cur, err = passes.NumberHeadings(b, cur); err != nil {
			return Result{}, err
		}
	}
	if f.cfg.TidyLists {
		if cur, err = passes.TidyListMarkers(b, cur); err != nil {
			return Result{}, err
		}
	}
	if f.cfg.TagFences {
		if cur, err = passes.TagFenceLanguages(b, cur); err != nil {
			return Result{}, err
		}
	}
	if f.rewriter != nil {
		if cur, err = f.rewriter.Rewrite(ctx, b, cur); err != nil {
			return Result{}, err
		}
	}

	if cur, err = f.print(ctx, b, cur); err != nil {
		return Result{}, err
	}

	res := Result{Text: b.String(), Changed: b.Modified()}
	res.Cursor, res.Tracked = cur.Offset()
	return res, nil
}

// print invokes the printer call-out and splices its output wholesale. In
// cursor mode the printer's own remapped cursor is adopted verbatim; the
// previous offset is meaningless against the rewritten text.
func (f *Formatter) print(ctx context.Context, b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	opts := printer.Options{
		MaxBlankLines: f.cfg.MaxBlankLines,
		FinalNewline:  f.cfg.FinalNewline,
	}

	if pos, tracked := cur.Offset(); tracked {
		res, err := f.printer.FormatWithCursor(ctx, b.String(), opts, pos)
		if err != nil {
			return cur, err
		}
		b.Overwrite(res.Text)
		return textedit.TrackCursor(res.Cursor), nil
	}

	out, err := f.printer.FormatPlain(ctx, b.String(), opts)
	if err != nil {
		return cur, err
	}
	b.Overwrite(out)
	return cur, nil
}

// FormatSelection formats a fragment of a document, reconciling the trailing
// newline so the splice back into the editor does not grow or lose one: a
// fragment that ended with a newline keeps one, a fragment that did not stays
// without.
func (f *Formatter) FormatSelection(ctx context.Context, selection string) (string, error) {
	res, err := f.Format(ctx, selection)
	if err != nil {
		return "", err
	}

	b := textedit.NewBuffer(res.Text)
	hadNewline := len(selection) > 0 && selection[len(selection)-1] == '\n'
	hasNewline := len(res.Text) > 0 && res.Text[len(res.Text)-1] == '\n'

	switch {
	case hadNewline && !hasNewline:
		b.Append("\n")
	case !hadNewline && hasNewline:
		b.TrimLastByte()
	}
	return b.String(), nil
}
