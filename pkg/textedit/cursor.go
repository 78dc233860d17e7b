package textedit

// Cursor is an optional tracked offset carried through a sequence of edits.
// The zero value is an untracked cursor; every remap step leaves an untracked
// cursor untouched, so callers that do not care about tracking can thread the
// zero value through for free.
type Cursor struct {
	pos     int
	tracked bool
}

// TrackCursor returns a cursor tracking the given byte offset.
func TrackCursor(pos int) Cursor {
	return Cursor{pos: pos, tracked: true}
}

// NoCursor returns an untracked cursor.
func NoCursor() Cursor {
	return Cursor{}
}

// Offset returns the tracked offset and whether tracking is active.
func (c Cursor) Offset() (int, bool) {
	return c.pos, c.tracked
}

// Tracked reports whether this cursor is tracking an offset.
func (c Cursor) Tracked() bool {
	return c.tracked
}
