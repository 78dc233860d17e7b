package passes

import (
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/mdtidy/pkg/textedit"
)

// classifierCandidates limits language detection to identifiers that are
// meaningful as fence tags.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
	"Java", "C", "C++", "SQL", "JSON", "YAML", "HTML", "CSS", "Dockerfile",
}

// TagFenceLanguages adds a language identifier to unlabeled ``` fences when
// detection is confident. Fences that already carry a tag, and fences whose
// content cannot be classified, are left alone.
func TagFenceLanguages(b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	lines := scanLines(b.String())
	var edits []edit

	// Loop index jumps past each fence body, so every ``` line seen here is
	// an opening fence.
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		trimmed := strings.TrimLeft(ln.text, " \t")
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		// Skip fences that already carry a tag.
		if strings.TrimSpace(strings.TrimPrefix(trimmed, "```")) != "" {
			i = skipFence(lines, i)
			continue
		}

		ending := skipFence(lines, i)
		content := fenceContent(b.String(), lines, i, ending)
		if lang := detectLanguage(content); lang != "" {
			edits = append(edits, edit{
				start:  ln.span.End,
				text:   lang,
				insert: true,
			})
		}
		i = ending
	}

	return applyReverse(b, edits, cur)
}

// skipFence returns the index of the closing fence line for the fence opened
// at index open, or the last line if the fence is unterminated.
func skipFence(lines []line, open int) int {
	for i := open + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimLeft(lines[i].text, " \t"), "```") {
			return i
		}
	}
	return len(lines) - 1
}

func fenceContent(text string, lines []line, open, end int) string {
	if end <= open+1 {
		return ""
	}
	return text[lines[open+1].span.Start:lines[end-1].span.End]
}

// detectLanguage classifies fence content with enry. Returns the lowercase
// identifier, or "" when detection is not confident enough to tag.
func detectLanguage(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	data := []byte(content)

	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return strings.ToLower(lang)
	}
	if lang, safe := enry.GetLanguageByClassifier(data, classifierCandidates); safe && lang != "" {
		return strings.ToLower(lang)
	}
	return ""
}
