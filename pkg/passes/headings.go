package passes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/textedit"
)

const maxHeadingLevel = 6

// headingRE matches an ATX heading line: a run of # followed by a space and
// the heading text.
var headingRE = regexp.MustCompile(`^(#+)\s+(.*)$`)

// numberTokenRE matches a dotted-number token at the start of heading text,
// like "2." or "2.1.3", followed by whitespace.
var numberTokenRE = regexp.MustCompile(`^(\d+(?:\.\d+)*\.?)\s+`)

// heading is one non-fenced ATX heading found in a scan.
type heading struct {
	line  line
	depth int
	// textStart is the pass-frame offset where the heading text begins,
	// after the # run and its separating spaces.
	textStart int
}

func findHeadings(lines []line) []heading {
	var hs []heading
	for _, ln := range lines {
		if ln.inFence {
			continue
		}
		m := headingRE.FindStringSubmatch(ln.text)
		if m == nil {
			continue
		}
		depth := len(m[1])
		if depth > maxHeadingLevel {
			continue
		}
		hs = append(hs, heading{
			line:      ln,
			depth:     depth,
			textStart: ln.span.Start + len(ln.text) - len(m[2]),
		})
	}
	return hs
}

func minDepth(hs []heading) int {
	m := 0
	for _, h := range hs {
		if m == 0 || h.depth < m {
			m = h.depth
		}
	}
	return m
}

// ShiftHeadings rewrites every heading's # run so the shallowest heading
// lands at targetLevel. Headings whose shifted depth would leave [1,6] are
// left alone. A document with no headings, or one already at the target
// level, is untouched and the cursor passes through unchanged.
func ShiftHeadings(b *textedit.Buffer, targetLevel int, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	hs := findHeadings(scanLines(b.String()))
	if len(hs) == 0 {
		return cur, nil
	}

	shift := targetLevel - minDepth(hs)
	if shift == 0 {
		return cur, nil
	}

	var edits []edit
	for _, h := range hs {
		depth := h.depth + shift
		if depth < 1 || depth > maxHeadingLevel {
			continue
		}
		edits = append(edits, edit{
			start: h.line.span.Start,
			end:   h.line.span.Start + h.depth,
			text:  strings.Repeat("#", depth),
		})
	}

	return applyReverse(b, edits, cur)
}

// NumberHeadings prefixes each heading's text with a dot-joined counter
// token: top-level headings get a trailing dot ("2.") while nested ones do
// not ("2.1", "2.1.3"). An existing dotted-number token is replaced only when
// it differs from the computed one.
func NumberHeadings(b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	hs := findHeadings(scanLines(b.String()))
	if len(hs) == 0 {
		return cur, nil
	}

	base := minDepth(hs)
	var counters []int
	var edits []edit

	for _, h := range hs {
		d := h.depth - base + 1
		if d > len(counters) {
			for len(counters) < d {
				counters = append(counters, 1)
			}
		} else {
			counters = counters[:d]
			counters[d-1]++
		}

		token := renderNumber(counters, d == 1)
		text := h.line.text[h.textStart-h.line.span.Start:]

		if m := numberTokenRE.FindStringSubmatch(text); m != nil {
			if m[1] == token {
				continue
			}
			edits = append(edits, edit{
				start: h.textStart,
				end:   h.textStart + len(m[1]),
				text:  token,
			})
			continue
		}

		edits = append(edits, edit{
			start:  h.textStart,
			text:   token + " ",
			insert: true,
		})
	}

	return applyReverse(b, edits, cur)
}

func renderNumber(counters []int, topLevel bool) string {
	parts := make([]string, len(counters))
	for i, c := range counters {
		parts[i] = strconv.Itoa(c)
	}
	token := strings.Join(parts, ".")
	if topLevel {
		token += "."
	}
	return token
}
