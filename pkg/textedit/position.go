package textedit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a zero-indexed line and column in the live buffer. Column
// counts UTF-16 code units, matching the convention of the text-editing
// surfaces this integrates with. Positions never involve the edit history;
// they are a boundary conversion for the editor.
type Position struct {
	Line int
	Ch   int
}

// OffsetToPosition converts a byte offset into the live text to a Position.
func (b *Buffer) OffsetToPosition(offset int) (Position, error) {
	if offset < 0 || offset > len(b.current) {
		return Position{}, fmt.Errorf("textedit: offset %d out of range [0, %d]", offset, len(b.current))
	}

	line := 0
	lineStart := 0
	for i := range offset {
		if b.current[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{Line: line, Ch: utf16Len(b.current[lineStart:offset])}, nil
}

// PositionToOffset converts a Position to a byte offset into the live text.
func (b *Buffer) PositionToOffset(pos Position) (int, error) {
	if pos.Line < 0 || pos.Ch < 0 {
		return 0, fmt.Errorf("textedit: invalid position %d:%d", pos.Line, pos.Ch)
	}

	lineStart := 0
	for range pos.Line {
		nl := strings.IndexByte(b.current[lineStart:], '\n')
		if nl < 0 {
			return 0, fmt.Errorf("textedit: line %d past end of buffer", pos.Line)
		}
		lineStart += nl + 1
	}

	lineText := b.current[lineStart:]
	if nl := strings.IndexByte(lineText, '\n'); nl >= 0 {
		lineText = lineText[:nl]
	}

	offset := lineStart
	remaining := pos.Ch
	for _, r := range lineText {
		if remaining <= 0 {
			break
		}
		remaining -= utf16RuneLen(r)
		offset += utf8.RuneLen(r)
	}
	if remaining > 0 {
		return 0, fmt.Errorf("textedit: column %d past end of line %d", pos.Ch, pos.Line)
	}

	return offset, nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
