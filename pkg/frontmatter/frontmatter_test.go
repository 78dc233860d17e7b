package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	text := "---\ntitle: Hello\nmdtidy: false\n---\nbody text\n"

	block, ok, err := Extract(text)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Hello", block.Fields["title"])
	assert.Equal(t, false, block.Fields["mdtidy"])
	assert.Equal(t, "body text\n", text[block.BodyStart:])
}

func TestExtractAbsent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no frontmatter", text: "just a document\n"},
		{name: "unterminated block", text: "---\ntitle: x\n"},
		{name: "delimiter not at start", text: "\n---\ntitle: x\n---\n"},
		{name: "empty document", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Extract(tt.text)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestExtractMalformedYAML(t *testing.T) {
	_, _, err := Extract("---\n{unclosed\n---\n")
	assert.Error(t, err)
}

func TestDisabled(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want bool
	}{
		{
			name: "key false disables",
			text: "---\nmdtidy: false\n---\nbody\n",
			key:  "mdtidy",
			want: true,
		},
		{
			name: "key true does not disable",
			text: "---\nmdtidy: true\n---\nbody\n",
			key:  "mdtidy",
			want: false,
		},
		{
			name: "missing key does not disable",
			text: "---\ntitle: x\n---\nbody\n",
			key:  "mdtidy",
			want: false,
		},
		{
			name: "no frontmatter does not disable",
			text: "body\n",
			key:  "mdtidy",
			want: false,
		},
		{
			name: "empty key never disables",
			text: "---\nmdtidy: false\n---\nbody\n",
			key:  "",
			want: false,
		},
		{
			name: "non-boolean value does not disable",
			text: "---\nmdtidy: nope\n---\nbody\n",
			key:  "mdtidy",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Disabled(tt.text, tt.key))
		})
	}
}

func TestIgnoreFilter(t *testing.T) {
	f, err := NewIgnoreFilter([]string{`^templates/`, `\.draft\.md$`})
	require.NoError(t, err)

	assert.True(t, f.Ignored("templates/daily.md"))
	assert.True(t, f.Ignored("notes/wip.draft.md"))
	assert.False(t, f.Ignored("notes/real.md"))
}

func TestIgnoreFilterInvalidPattern(t *testing.T) {
	_, err := NewIgnoreFilter([]string{"("})
	assert.Error(t, err)
}

func TestIgnoreFilterNil(t *testing.T) {
	var f *IgnoreFilter
	assert.False(t, f.Ignored("anything.md"))
}
