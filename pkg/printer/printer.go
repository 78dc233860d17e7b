// Package printer defines the pretty-printer call-out the formatter invokes
// after its structural passes. The printer is opaque to the caller: it takes
// text plus options and returns new text, and in cursor mode returns its own
// remapped cursor which the caller adopts verbatim instead of attempting to
// remap through the rewrite.
package printer

import "context"

// Options control the printing behavior.
type Options struct {
	// MaxBlankLines is the maximum number of consecutive blank lines to keep.
	MaxBlankLines int

	// FinalNewline ensures the output ends with exactly one newline.
	FinalNewline bool
}

// DefaultOptions returns the options used when a config does not override
// them.
func DefaultOptions() Options {
	return Options{MaxBlankLines: 1, FinalNewline: true}
}

// Result is the outcome of a cursor-tracking print.
type Result struct {
	// Text is the printed output.
	Text string

	// Cursor is the printer's own remapped cursor offset into Text.
	Cursor int
}

// Printer is the two-case call-out contract: plain printing for fast mode,
// cursor-tracking printing for interactive mode. Implementations must treat
// a print failure as fatal for the whole operation; partial output is never
// returned.
type Printer interface {
	FormatPlain(ctx context.Context, text string, opts Options) (string, error)
	FormatWithCursor(ctx context.Context, text string, opts Options, cursor int) (Result, error)
}
