package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	res, err := Load(LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, res.LoadedFrom)
	assert.True(t, res.Config.TidyLists)
	assert.Equal(t, 1, res.Config.MaxBlankLines)
	assert.Equal(t, "mdtidy", res.Config.DisableKey)
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := "heading_start_level: 2\nnumber_headings: true\nignore:\n  - '^templates/'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdtidy.yaml"), []byte(content), 0o644))

	res, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".mdtidy.yaml"), res.LoadedFrom)
	assert.Equal(t, 2, res.Config.HeadingStartLevel)
	assert.True(t, res.Config.NumberHeadings)
	assert.Equal(t, []string{"^templates/"}, res.Config.Ignore)
	// Defaults survive for keys the file does not set.
	assert.True(t, res.Config.TidyLists)
}

func TestLoadDiscoversUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".mdtidy.yml"), []byte("tag_fences: true\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	res, err := Load(LoadOptions{WorkingDir: nested})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".mdtidy.yml"), res.LoadedFrom)
	assert.True(t, res.Config.TagFences)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(LoadOptions{ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdtidy.yaml"), []byte("{broken"), 0o644))

	_, err := Load(LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}

func TestLoadEnvSecrets(t *testing.T) {
	t.Setenv("MDTIDY_SECRET_ID", "AKIDenv")
	t.Setenv("MDTIDY_SECRET_KEY", "sk-env")

	res, err := Load(LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "AKIDenv", res.Config.Upload.SecretID)
	assert.Equal(t, "sk-env", res.Config.Upload.SecretKey)
}
