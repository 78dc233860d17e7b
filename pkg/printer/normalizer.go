package printer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/textedit"
)

// Normalizer is the built-in Printer. It collapses runs of blank lines and
// enforces a final newline, tracking the cursor through both with the
// mutation engine so the tool works standalone without an external printer.
type Normalizer struct{}

// NewNormalizer creates the built-in printer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// FormatPlain implements Printer.
func (n *Normalizer) FormatPlain(ctx context.Context, text string, opts Options) (string, error) {
	res, err := n.FormatWithCursor(ctx, text, opts, 0)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// FormatWithCursor implements Printer.
func (n *Normalizer) FormatWithCursor(ctx context.Context, text string, opts Options, cursor int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("printer: %w", err)
	}
	if cursor < 0 || cursor > len(text) {
		return Result{}, fmt.Errorf("printer: cursor %d out of range [0, %d]", cursor, len(text))
	}

	b := textedit.NewBuffer(text)
	cur := textedit.TrackCursor(cursor)

	cur, err := n.collapseBlankRuns(b, opts, cur)
	if err != nil {
		return Result{}, err
	}

	if opts.FinalNewline {
		cur, err = ensureFinalNewline(b, cur)
		if err != nil {
			return Result{}, err
		}
	}

	pos, _ := cur.Offset()
	return Result{Text: b.String(), Cursor: pos}, nil
}

// collapseBlankRuns shortens every run of blank lines longer than the
// configured maximum. Edits are applied in reverse document order.
func (n *Normalizer) collapseBlankRuns(b *textedit.Buffer, opts Options, cur textedit.Cursor) (textedit.Cursor, error) {
	maxNewlines := opts.MaxBlankLines + 1
	if maxNewlines < 1 {
		maxNewlines = 1
	}

	runRE := regexp.MustCompile(fmt.Sprintf(`\n{%d,}`, maxNewlines+1))
	matches := b.Match(runRE)

	var err error
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		cur, err = b.Update(m.Start, m.End, strings.Repeat("\n", maxNewlines), cur)
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

func ensureFinalNewline(b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	text := b.String()
	if text == "" || strings.HasSuffix(text, "\n") {
		return cur, nil
	}
	return b.Insert(len(text), "\n", cur)
}
