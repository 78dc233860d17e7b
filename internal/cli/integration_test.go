package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtidy/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestIntegration_StdinFormat(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("-  item one\n- item two"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--stdin"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "- item one\n- item two\n", stdout.String())
}

func TestIntegration_StdinCursor(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("-  abc"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// Offset 5 is the final "c"; collapsing the marker spacing moves it to 4.
	cmd.SetArgs([]string{"fmt", "--stdin", "--cursor", "5"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "- abc\n", stdout.String())
	assert.Contains(t, stderr.String(), "cursor=4")
}

func TestIntegration_WriteInPlace(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("# Title\n\n\n\ntext"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--write", tmpDir})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\ntext\n", string(got))
}

func TestIntegration_CheckMode(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("-  spaced marker"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", tmpDir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrWouldChange))

	// The file itself is left alone.
	got, readErr := os.ReadFile(mdFile)
	require.NoError(t, readErr)
	assert.Equal(t, "-  spaced marker", string(got))
}

func TestIntegration_CheckModeClean(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("# Tidy\n\ntext\n"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", tmpDir})

	require.NoError(t, cmd.Execute())
}

func TestIntegration_DiffOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "doc.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("-  wide\n"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--diff", "--color", "never", tmpDir})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "-  wide")
	assert.Contains(t, output, "- wide")
}

func TestIntegration_HeadingFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("## A\n\n### B\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--stdin", "--heading-level", "1", "--number-headings"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "# 1. A\n\n## 1.1 B\n", stdout.String())
}
