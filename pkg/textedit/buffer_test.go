package textedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInsertCursor(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		at      int
		insert  string
		cursor  int
		wantPos int
	}{
		{
			name:    "cursor before insertion point",
			text:    "hello world",
			at:      6,
			insert:  "big ",
			cursor:  2,
			wantPos: 2,
		},
		{
			name:    "cursor at insertion point",
			text:    "hello world",
			at:      6,
			insert:  "big ",
			cursor:  6,
			wantPos: 10,
		},
		{
			name:    "cursor after insertion point",
			text:    "hello world",
			at:      0,
			insert:  ">> ",
			cursor:  5,
			wantPos: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			cur, err := b.Insert(tt.at, tt.insert, TrackCursor(tt.cursor))
			require.NoError(t, err)

			pos, tracked := cur.Offset()
			require.True(t, tracked)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestBufferDeleteCursor(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		cursor     int
		wantPos    int
	}{
		{
			name:    "cursor before deleted span",
			text:    "one two three",
			start:   4,
			end:     8,
			cursor:  2,
			wantPos: 2,
		},
		{
			name:    "cursor after deleted span",
			text:    "one two three",
			start:   4,
			end:     8,
			cursor:  10,
			wantPos: 6,
		},
		{
			name:    "cursor inside deleted span pins to start",
			text:    "one two three",
			start:   4,
			end:     8,
			cursor:  6,
			wantPos: 4,
		},
		{
			name:    "cursor at span start pins to start",
			text:    "one two three",
			start:   4,
			end:     8,
			cursor:  4,
			wantPos: 4,
		},
		{
			name:    "cursor at span end shifts by removed length",
			text:    "one two three",
			start:   4,
			end:     8,
			cursor:  8,
			wantPos: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			cur, err := b.Delete(tt.start, tt.end, TrackCursor(tt.cursor))
			require.NoError(t, err)

			pos, tracked := cur.Offset()
			require.True(t, tracked)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestBufferUpdate(t *testing.T) {
	b := NewBuffer("the quick fox")

	cur, err := b.Update(4, 9, "slow", TrackCursor(11))
	require.NoError(t, err)

	assert.Equal(t, "the slow fox", b.String())

	pos, tracked := cur.Offset()
	require.True(t, tracked)
	assert.Equal(t, 10, pos)
}

func TestBufferUntrackedCursorPropagates(t *testing.T) {
	b := NewBuffer("abcdef")

	cur, err := b.Insert(0, "xx", NoCursor())
	require.NoError(t, err)
	cur, err = b.Delete(2, 4, cur)
	require.NoError(t, err)
	cur, err = b.Update(4, 6, "yy", cur)
	require.NoError(t, err)

	assert.False(t, cur.Tracked())
}

// Applying non-overlapping edits in reverse document order must produce the
// same text as one forward splice pass over the starting snapshot.
func TestBufferReverseOrderApplication(t *testing.T) {
	const text = "alpha beta gamma delta"

	edits := []Edit{
		{Span: Span{Start: 0, End: 5}, Text: "A"},
		{Span: Span{Start: 6, End: 10}, Text: "BB"},
		{Span: Span{Start: 11, End: 16}, Text: ""},
		{Span: Span{Start: 17, End: 22}, Text: "DDDD"},
	}

	b := NewBuffer(text)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		_, err := b.Update(e.Start, e.End, e.Text, NoCursor())
		require.NoError(t, err)
	}

	assert.Equal(t, "A BB  DDDD", b.String())
}

// The same edits applied forward must also converge, because shiftBefore
// translates each span through the edits already applied.
func TestBufferForwardOrderApplication(t *testing.T) {
	const text = "alpha beta gamma delta"

	b := NewBuffer(text)
	_, err := b.Update(0, 5, "A", NoCursor())
	require.NoError(t, err)
	_, err = b.Update(6, 10, "BB", NoCursor())
	require.NoError(t, err)
	_, err = b.Update(11, 16, "", NoCursor())
	require.NoError(t, err)
	_, err = b.Update(17, 22, "DDDD", NoCursor())
	require.NoError(t, err)

	assert.Equal(t, "A BB  DDDD", b.String())
}

func TestBufferCursorThreadedThroughReverseReplay(t *testing.T) {
	// Cursor sits inside "gamma"; the two edits before it change lengths and
	// the edit containing it pins to the span start.
	b := NewBuffer("alpha beta gamma delta")
	cur := TrackCursor(13)

	var err error
	cur, err = b.Update(17, 22, "d", cur)
	require.NoError(t, err)
	cur, err = b.Update(11, 16, "GAMMA!", cur)
	require.NoError(t, err)
	cur, err = b.Update(6, 10, "b", cur)
	require.NoError(t, err)
	cur, err = b.Update(0, 5, "a", cur)
	require.NoError(t, err)

	assert.Equal(t, "a b GAMMA! d", b.String())

	pos, tracked := cur.Offset()
	require.True(t, tracked)
	// Pinned to the start of "GAMMA!": "a b " is 4 bytes.
	assert.Equal(t, 4, pos)
}

func TestBufferModified(t *testing.T) {
	b := NewBuffer("text")
	assert.False(t, b.Modified())

	_, err := b.Insert(0, "x", NoCursor())
	require.NoError(t, err)
	assert.True(t, b.Modified())

	b.Overwrite("text")
	assert.False(t, b.Modified())
	assert.Equal(t, "text", b.Original())
}

func TestBufferCheckpointAdvancesReferenceFrame(t *testing.T) {
	b := NewBuffer("aa bb")

	_, err := b.Update(0, 2, "xxxx", NoCursor())
	require.NoError(t, err)
	b.Checkpoint()

	// After the checkpoint, spans refer to "xxxx bb".
	_, err = b.Update(5, 7, "yy", NoCursor())
	require.NoError(t, err)

	assert.Equal(t, "xxxx yy", b.String())
	assert.Equal(t, "aa bb", b.Original())
}

func TestBufferInvalidSpans(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{name: "negative start", start: -1, end: 2},
		{name: "end before start", start: 4, end: 2},
		{name: "end past buffer", start: 0, end: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer("short")
			_, err := b.Update(tt.start, tt.end, "x", TrackCursor(3))
			require.Error(t, err)
			// Nothing may be applied on failure.
			assert.Equal(t, "short", b.String())
		})
	}
}

func TestBufferAppendAndTrim(t *testing.T) {
	b := NewBuffer("line")

	b.Append("\n")
	assert.Equal(t, "line\n", b.String())

	b.TrimLastByte()
	assert.Equal(t, "line", b.String())

	empty := NewBuffer("")
	empty.TrimLastByte()
	assert.Equal(t, "", empty.String())
}

func TestBufferOverwriteResetsLog(t *testing.T) {
	b := NewBuffer("one two")
	_, err := b.Delete(0, 4, NoCursor())
	require.NoError(t, err)

	b.Overwrite("formatted output")

	// Spans now refer to the overwritten text.
	_, err = b.Update(0, 9, "final", NoCursor())
	require.NoError(t, err)
	assert.Equal(t, "final output", b.String())
}
