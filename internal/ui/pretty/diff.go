package pretty

import (
	"fmt"
	"io"
	"strings"
)

// WriteDiff renders a simple line-level unified-style diff between original
// and formatted content for one file. It is a presentation diff for humans,
// not a patch: runs of differing lines are shown as removals followed by
// additions.
func WriteDiff(w io.Writer, styles *Styles, path, original, formatted string) {
	fmt.Fprintln(w, styles.DiffHeader.Render("--- "+path))
	fmt.Fprintln(w, styles.DiffHeader.Render("+++ "+path+" (formatted)"))

	origLines := splitLines(original)
	fmtLines := splitLines(formatted)

	i, j := 0, 0
	for i < len(origLines) || j < len(fmtLines) {
		switch {
		case i < len(origLines) && j < len(fmtLines) && origLines[i] == fmtLines[j]:
			i++
			j++
		default:
			// Emit the differing run: everything up to the next resync point.
			oi, fj := resync(origLines, fmtLines, i, j)
			for ; i < oi; i++ {
				fmt.Fprintln(w, styles.DiffRemove.Render("-"+origLines[i]))
			}
			for ; j < fj; j++ {
				fmt.Fprintln(w, styles.DiffAdd.Render("+"+fmtLines[j]))
			}
		}
	}
}

// resync finds the next pair of equal lines after (i, j), scanning a small
// window so pathological inputs stay cheap.
func resync(a, b []string, i, j int) (int, int) {
	const window = 64
	for di := 0; di < window && i+di < len(a); di++ {
		for dj := 0; dj < window && j+dj < len(b); dj++ {
			if a[i+di] == b[j+dj] {
				return i + di, j + dj
			}
		}
	}
	return len(a), len(b)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
