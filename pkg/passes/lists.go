package passes

import (
	"regexp"

	"github.com/yaklabco/mdtidy/pkg/textedit"
)

// wideMarkerRE matches a list marker followed by more than one space before
// its content. Group 2 is the run of spaces to collapse.
var wideMarkerRE = regexp.MustCompile(`^(\s*(?:[-*+]|\d+\.))(  +)\S`)

// bareMarkerRE matches a list marker with no content and no trailing space,
// which needs one so the item survives pretty-printing as a valid marker.
var bareMarkerRE = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)$`)

// TidyListMarkers normalizes list marker spacing: a marker followed by more
// than one space collapses to exactly one, and an empty item with no trailing
// space gains one. Fenced code lines are never touched.
func TidyListMarkers(b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	var edits []edit
	for _, ln := range scanLines(b.String()) {
		if ln.inFence {
			continue
		}

		if m := wideMarkerRE.FindStringSubmatchIndex(ln.text); m != nil {
			edits = append(edits, edit{
				start: ln.span.Start + m[4],
				end:   ln.span.Start + m[5],
				text:  " ",
			})
			continue
		}

		if bareMarkerRE.MatchString(ln.text) {
			edits = append(edits, edit{
				start:  ln.span.End,
				text:   " ",
				insert: true,
			})
		}
	}

	return applyReverse(b, edits, cur)
}
