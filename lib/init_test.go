package slideshowlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDirStable(t *testing.T) {
	t.Cleanup(func() { _ = Cleanup() })

	a, err := TempDir()
	require.NoError(t, err)
	require.NotEmpty(t, a)

	b, err := TempDir()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	fi, err := os.Stat(a)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestCleanupRemovesComposites(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.png")
	writeTestImage(t, src, 10, 10)

	out, err := ComposeCentered(src, Resolution{Width: 20, Height: 20})
	require.NoError(t, err)

	tmp, err := TempDir()
	require.NoError(t, err)

	require.NoError(t, Cleanup())

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "composite should be deleted")
	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err), "temp dir should be deleted")

	// The source is not ours to delete
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestCleanupToleratesMissingFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.png")
	writeTestImage(t, src, 10, 10)

	out, err := ComposeCentered(src, Resolution{Width: 20, Height: 20})
	require.NoError(t, err)

	// Someone beat us to it
	require.NoError(t, os.Remove(out))

	assert.NoError(t, Cleanup())
}

func TestCleanupWithoutTempDir(t *testing.T) {
	require.NoError(t, Cleanup())

	// Idempotent when nothing was ever created
	assert.NoError(t, Cleanup())
}

func TestCleanupResetsState(t *testing.T) {
	a, err := TempDir()
	require.NoError(t, err)
	require.NoError(t, Cleanup())

	b, err := TempDir()
	require.NoError(t, err)
	t.Cleanup(func() { _ = Cleanup() })

	assert.NotEqual(t, a, b)

	fi, err := os.Stat(b)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
