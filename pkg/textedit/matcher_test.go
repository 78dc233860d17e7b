package textedit

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAll(t *testing.T) {
	re := regexp.MustCompile(`!\[(?P<alt>[^\]]*)\]\((?P<dest>[^)]+)\)`)
	src := "text ![a](one.png) more ![b](two.png) end"

	matches := MatchAll(src, re)
	require.Len(t, matches, 2)

	assert.Equal(t, "![a](one.png)", matches[0].Text(src))
	assert.Equal(t, "![b](two.png)", matches[1].Text(src))

	dest, ok := matches[0].Named["dest"]
	require.True(t, ok)
	assert.Equal(t, "one.png", src[dest.Start:dest.End])

	alt, ok := matches[1].Named["alt"]
	require.True(t, ok)
	assert.Equal(t, "b", src[alt.Start:alt.End])
}

func TestMatchAllNoMatches(t *testing.T) {
	matches := MatchAll("plain text", regexp.MustCompile(`\d+`))
	assert.Empty(t, matches)
}

func TestMatchGroupOptional(t *testing.T) {
	re := regexp.MustCompile(`(a)(b)?`)
	matches := MatchAll("a", re)
	require.Len(t, matches, 1)

	_, ok := matches[0].Group(1)
	assert.True(t, ok)

	_, ok = matches[0].Group(2)
	assert.False(t, ok, "non-participating group should not resolve")

	_, ok = matches[0].Group(9)
	assert.False(t, ok)
}

func TestBufferMatchUsesReferenceSnapshot(t *testing.T) {
	b := NewBuffer("one one")
	_, err := b.Update(0, 3, "zzz", NoCursor())
	require.NoError(t, err)

	// The live text changed but matching still runs against the snapshot the
	// pending spans refer to.
	matches := b.Match(regexp.MustCompile(`one`))
	assert.Len(t, matches, 2)
}
