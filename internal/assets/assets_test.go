package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "textures"), 0o755))
	deep := filepath.Join(root, "cmd", "spx-editor", "bin")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	assert.Equal(t, root, FindRoot(deep))
	assert.Equal(t, root, FindRoot(root))
}

func TestFindRootFallback(t *testing.T) {
	dir := t.TempDir()
	got := FindRoot(dir)
	// Nothing above a temp dir normally has assets/, but if something does
	// the result must still contain one.
	if got != dir {
		_, err := os.Stat(filepath.Join(got, "assets"))
		assert.NoError(t, err)
	}
}

func TestFindRootFrom(t *testing.T) {
	withAssets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(withAssets, "assets"), 0o755))

	assert.Equal(t, withAssets, FindRootFrom("", withAssets))
	assert.Equal(t, ".", FindRootFrom())
}

func TestResolver(t *testing.T) {
	r := NewResolver("/opt/spx")

	assert.Equal(t, filepath.Join("/opt/spx", "assets", "textures", "checker.png"), r.Texture("checker.png"))
	assert.Equal(t, filepath.Join("/opt/spx", "assets", "shaders", "scene", "scene.vert"), r.Shader("scene", "scene.vert"))
	assert.Equal(t, filepath.Join("/opt/spx", "assets", "fonts", "comic.ttf"), r.Path("fonts/comic.ttf"))
	assert.Equal(t, "/tmp/x.png", r.Texture("/tmp/x.png"))
	assert.Equal(t, "", r.Texture(""))
}
