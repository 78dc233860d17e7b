package textedit

import (
	"fmt"
	"regexp"
	"strings"
)

// Buffer holds the text under mutation for one formatting operation. It keeps
// three views of the text:
//
//   - the original construction snapshot, which never changes and exists only
//     to answer Modified,
//   - the reference snapshot, which is the text all pending edit spans refer
//     to (the buffer as it stood when the current rewrite pass started),
//   - the live text, produced by splicing edits into the reference snapshot.
//
// Edits are expressed in reference-snapshot coordinates, validated against
// that snapshot, and may be applied in any order; the edit log plus
// shiftBefore translate each span to its live splice point. Callers that run
// several passes over one buffer call Checkpoint between passes to advance
// the reference snapshot.
//
// A Buffer is single-operation state: create one per formatting operation and
// discard it after writing the result back.
type Buffer struct {
	original string
	ref      string
	current  string
	edits    []Edit
}

// NewBuffer creates a buffer over the given text.
func NewBuffer(text string) *Buffer {
	return &Buffer{
		original: text,
		ref:      text,
		current:  text,
	}
}

// Original returns the immutable construction snapshot.
func (b *Buffer) Original() string {
	return b.original
}

// String returns the live text with all edits applied.
func (b *Buffer) String() string {
	return b.current
}

// Len returns the length of the live text in bytes.
func (b *Buffer) Len() int {
	return len(b.current)
}

// Modified reports whether the live text differs from the construction
// snapshot.
func (b *Buffer) Modified() bool {
	return b.current != b.original
}

// Checkpoint seals the applied edits into the buffer and makes the live text
// the new reference snapshot. Spans computed after a checkpoint refer to the
// text as it stands now.
func (b *Buffer) Checkpoint() {
	b.ref = b.current
	b.edits = nil
}

// Insert applies a zero-width edit at reference position at, remapping cur
// through it.
func (b *Buffer) Insert(at int, text string, cur Cursor) (Cursor, error) {
	if err := b.checkSpan(at, at); err != nil {
		return cur, err
	}
	b.splice(Edit{Span: Span{Start: at, End: at}, Text: text})
	return remapInsert(cur, at, text), nil
}

// Delete removes the reference span [start, end), remapping cur through the
// deletion.
func (b *Buffer) Delete(start, end int, cur Cursor) (Cursor, error) {
	return b.Update(start, end, "", cur)
}

// Update replaces the reference span [start, end) with text, remapping cur
// through the replacement. Equivalent to a delete plus an insert, recorded as
// one edit so shift accounting stays simple.
func (b *Buffer) Update(start, end int, text string, cur Cursor) (Cursor, error) {
	if err := b.checkSpan(start, end); err != nil {
		return cur, err
	}
	e := Edit{Span: Span{Start: start, End: end}, Text: text}
	shift := b.splice(e)
	return remapReplace(cur, e, shift), nil
}

// Overwrite replaces the live text wholesale and resets the edit log. Used
// after an external formatter pass whose output cannot be expressed as a
// sparse edit list. Any cursor tracked before this call is no longer a valid
// reference offset; the caller must re-derive it (external formatters return
// their own remapped cursor for exactly this reason).
func (b *Buffer) Overwrite(text string) {
	b.current = text
	b.ref = text
	b.edits = nil
}

// Append adds text at the end of the live buffer and checkpoints.
func (b *Buffer) Append(text string) {
	b.current += text
	b.Checkpoint()
}

// TrimLastByte removes the final byte of the live buffer, if any, and
// checkpoints. Append and TrimLastByte exist for the single special case of
// reconciling a trailing newline between the buffer and externally formatted
// text.
func (b *Buffer) TrimLastByte() {
	if len(b.current) > 0 {
		b.current = b.current[:len(b.current)-1]
	}
	b.Checkpoint()
}

// Match runs the pattern against the reference snapshot and returns all
// non-overlapping matches in document order. The live text is never
// consulted. A pattern that matches nothing returns an empty slice, not an
// error.
func (b *Buffer) Match(re *regexp.Regexp) []Match {
	return MatchAll(b.ref, re)
}

// splice applies the edit to the live text and records it. Returns the shift
// that positioned the splice, which the cursor remap for in-span offsets
// also needs.
func (b *Buffer) splice(e Edit) int {
	shift := shiftBefore(b.edits, e.Start)

	var sb strings.Builder
	sb.Grow(len(b.current) + e.Delta())
	sb.WriteString(b.current[:e.Start+shift])
	sb.WriteString(e.Text)
	sb.WriteString(b.current[e.End+shift:])
	b.current = sb.String()

	b.edits = append(b.edits, e)
	return shift
}

// checkSpan validates a reference-snapshot span. Out-of-range spans are
// programming errors in the caller and fail fast; silently clamping would
// corrupt the shift math for every later edit.
func (b *Buffer) checkSpan(start, end int) error {
	if start < 0 {
		return fmt.Errorf("textedit: negative span start %d", start)
	}
	if end < start {
		return fmt.Errorf("textedit: span end %d before start %d", end, start)
	}
	if end > len(b.ref) {
		return fmt.Errorf("textedit: span end %d exceeds buffer length %d", end, len(b.ref))
	}
	return nil
}
