// Package passes implements the line-oriented structural rewrite passes:
// heading level shifting, heading renumbering, list marker cleanup, and fence
// language tagging. Each pass is a pure function of the buffer's text at pass
// start: it scans line by line, computes edits in that frame, sorts them by
// descending start, and replays them through the mutation engine, threading
// the tracked cursor.
package passes

import (
	"sort"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/textedit"
)

// line is one scanned buffer line with its span (excluding the newline).
type line struct {
	span    textedit.Span
	text    string
	inFence bool
}

// scanLines splits text into lines, tracking the fenced-code toggle. A line
// whose trimmed content starts with ``` flips the toggle; the fence markers
// themselves are reported as inside the fence so no pass touches them.
func scanLines(text string) []line {
	var lines []line
	inFence := false

	start := 0
	for start <= len(text) {
		end := len(text)
		if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
			end = start + nl
		}
		content := text[start:end]

		fenceLine := strings.HasPrefix(strings.TrimLeft(content, " \t"), "```")
		lines = append(lines, line{
			span:    textedit.Span{Start: start, End: end},
			text:    content,
			inFence: inFence || fenceLine,
		})
		if fenceLine {
			inFence = !inFence
		}

		if end == len(text) {
			break
		}
		start = end + 1
	}

	return lines
}

// edit is a pending rewrite in pass-start coordinates.
type edit struct {
	start, end int
	text       string
	insert     bool
}

// applyReverse sorts edits by descending start and replays them through the
// engine so that spans of not-yet-applied edits stay valid.
func applyReverse(b *textedit.Buffer, edits []edit, cur textedit.Cursor) (textedit.Cursor, error) {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})

	var err error
	for _, e := range edits {
		if e.insert {
			cur, err = b.Insert(e.start, e.text, cur)
		} else {
			cur, err = b.Update(e.start, e.end, e.text, cur)
		}
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}
