package textedit

import "regexp"

// Match is one pattern match: the whole-match span plus the span of each
// capture group, all in the coordinates of the text that was matched. Groups
// that did not participate in the match carry the span {-1, -1}.
type Match struct {
	Span

	// Groups holds capture-group spans by index. Index 0 is the whole match.
	Groups []Span

	// Named maps capture-group names to their spans. Empty when the pattern
	// has no named groups.
	Named map[string]Span
}

// Text returns the matched text of the whole match within src.
func (m Match) Text(src string) string {
	return src[m.Start:m.End]
}

// Group returns the span of capture group i and whether it participated in
// the match.
func (m Match) Group(i int) (Span, bool) {
	if i < 0 || i >= len(m.Groups) || m.Groups[i].Start < 0 {
		return Span{}, false
	}
	return m.Groups[i], true
}

// MatchAll runs re against text and returns every non-overlapping match in
// document order. It has no side effects; a pattern that matches nothing
// yields an empty result.
func MatchAll(text string, re *regexp.Regexp) []Match {
	idx := re.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	names := re.SubexpNames()
	matches := make([]Match, 0, len(idx))

	for _, loc := range idx {
		m := Match{
			Span:   Span{Start: loc[0], End: loc[1]},
			Groups: make([]Span, 0, len(loc)/2),
		}
		for g := 0; g*2 < len(loc); g++ {
			m.Groups = append(m.Groups, Span{Start: loc[g*2], End: loc[g*2+1]})
		}
		for g, name := range names {
			if name == "" || g >= len(m.Groups) || m.Groups[g].Start < 0 {
				continue
			}
			if m.Named == nil {
				m.Named = make(map[string]Span)
			}
			m.Named[name] = m.Groups[g]
		}
		matches = append(matches, m)
	}

	return matches
}
