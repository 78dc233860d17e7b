// Package textedit implements an offset-tracking incremental mutation engine
// for text buffers. Edits are described against a fixed reference snapshot,
// translated forward through every edit already applied, and an optional
// caller-owned cursor offset is remapped through the whole edit sequence.
package textedit

// Span is a half-open [Start, End) byte range into a specific buffer version.
// Spans from different buffer versions must never be compared without
// remapping.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Edit is one applied mutation: a reference-buffer span and its replacement
// text. End == Start for pure insertions. The edit log is append-only and
// ordered by application time, not by position.
type Edit struct {
	Span

	// Text is the replacement text.
	Text string
}

// Delta returns the length change this edit introduces.
func (e Edit) Delta() int {
	return len(e.Text) - e.Len()
}
