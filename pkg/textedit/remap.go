package textedit

// shiftBefore computes the cumulative length shift introduced by every edit
// in the log whose reference-buffer start is strictly less than the given
// offset. Adding this shift to a reference-buffer offset yields the
// corresponding offset in the live buffer, which is what makes applying edits
// in reverse document order safe: edits applied so far all sit at or after
// the next splice point, so they contribute nothing to its shift, while a
// forward-order replay accumulates exactly the deltas of the edits that
// precede it.
func shiftBefore(edits []Edit, offset int) int {
	shift := 0
	for _, e := range edits {
		if e.Start < offset {
			shift += e.Delta()
		}
	}
	return shift
}

// remapReplace remaps a tracked cursor through a replacement or deletion
// edit. A cursor strictly before the span is untouched, a cursor at or past
// the span end shifts by the edit's delta, and a cursor inside the replaced
// span is pinned to the start of the replacement text.
func remapReplace(cur Cursor, e Edit, shift int) Cursor {
	if !cur.tracked {
		return cur
	}
	switch {
	case cur.pos < e.Start:
		return cur
	case cur.pos >= e.End:
		return TrackCursor(cur.pos + e.Delta())
	default:
		return TrackCursor(e.Start + shift)
	}
}

// remapInsert remaps a tracked cursor through a zero-width insertion. A
// cursor at or after the insertion point shifts by the inserted length; a
// cursor strictly before it is untouched.
func remapInsert(cur Cursor, at int, text string) Cursor {
	if !cur.tracked || cur.pos < at {
		return cur
	}
	return TrackCursor(cur.pos + len(text))
}
