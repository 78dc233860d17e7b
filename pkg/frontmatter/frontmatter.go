// Package frontmatter reads the YAML frontmatter block of a markdown
// document and implements the boolean gates consulted before a formatting
// operation starts.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Block is a parsed frontmatter block.
type Block struct {
	// Fields holds the decoded top-level YAML mapping.
	Fields map[string]any

	// BodyStart is the byte offset where the document body begins, directly
	// after the closing delimiter line.
	BodyStart int
}

// Extract returns the frontmatter block of text, if any. A document has
// frontmatter only when it starts with a --- line; a missing or unterminated
// block yields ok == false, not an error.
func Extract(text string) (Block, bool, error) {
	if !strings.HasPrefix(text, delimiter+"\n") && text != delimiter {
		return Block{}, false, nil
	}

	rest := text[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return Block{}, false, nil
	}

	// The closing delimiter must be a whole line.
	closeEnd := len(delimiter) + 1 + end + 1 + len(delimiter)
	if closeEnd < len(text) && text[closeEnd] != '\n' {
		return Block{}, false, nil
	}
	bodyStart := closeEnd
	if bodyStart < len(text) {
		bodyStart++ // past the newline after the closing delimiter
	}

	fields := make(map[string]any)
	if err := yaml.Unmarshal([]byte(rest[:end]), &fields); err != nil {
		return Block{}, false, fmt.Errorf("frontmatter: %w", err)
	}

	return Block{Fields: fields, BodyStart: bodyStart}, true, nil
}

// Disabled reports whether the document's frontmatter switches formatting
// off by setting key to false. Documents without frontmatter, without the
// key, or with malformed YAML are not disabled.
func Disabled(text, key string) bool {
	if key == "" {
		return false
	}
	block, ok, err := Extract(text)
	if err != nil || !ok {
		return false
	}
	v, ok := block.Fields[key]
	if !ok {
		return false
	}
	enabled, ok := v.(bool)
	return ok && !enabled
}

// IgnoreFilter gates files out of formatting by matching their path against
// configured patterns.
type IgnoreFilter struct {
	patterns []*regexp.Regexp
}

// NewIgnoreFilter compiles the given patterns. An invalid pattern is a
// configuration error and fails construction.
func NewIgnoreFilter(patterns []string) (*IgnoreFilter, error) {
	f := &IgnoreFilter{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Ignored reports whether path matches any ignore pattern.
func (f *IgnoreFilter) Ignored(path string) bool {
	if f == nil {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
