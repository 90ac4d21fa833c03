package slideshowlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkingListPassthrough(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	touch(t, dir, "b.png")
	touch(t, dir, "c.gif")

	conf := &Config{Directory: dir, DwellSeconds: 5}

	got, err := BuildWorkingList(conf, Resolution{Width: 100, Height: 100})
	require.NoError(t, err)

	// Without --original-size the working list is exactly the selected
	// originals, in the same order
	want, err := SelectImages(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildWorkingListEmptyDirectory(t *testing.T) {
	conf := &Config{Directory: t.TempDir(), DwellSeconds: 5}

	_, err := BuildWorkingList(conf, Resolution{Width: 100, Height: 100})
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestBuildWorkingListDirectoryNotFound(t *testing.T) {
	conf := &Config{
		Directory:    filepath.Join(t.TempDir(), "missing"),
		DwellSeconds: 5,
	}

	_, err := BuildWorkingList(conf, Resolution{Width: 100, Height: 100})
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestBuildWorkingListComposited(t *testing.T) {
	t.Cleanup(func() { _ = Cleanup() })

	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "a.png"), 10, 10)
	writeTestImage(t, filepath.Join(dir, "b.png"), 10, 10)

	conf := &Config{Directory: dir, DwellSeconds: 5, OriginalSize: true}

	got, err := BuildWorkingList(conf, Resolution{Width: 40, Height: 40})
	require.NoError(t, err)
	require.Len(t, got, 2)

	tmp, err := TempDir()
	require.NoError(t, err)

	for _, p := range got {
		assert.Equal(t, tmp, filepath.Dir(p))

		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	// Originals stay where they were
	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "b.png"))
	assert.NoError(t, err)
}

func TestBuildWorkingListSkipsBrokenImages(t *testing.T) {
	t.Cleanup(func() { _ = Cleanup() })

	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "good.png"), 10, 10)
	touch(t, dir, "bad.jpg")

	conf := &Config{Directory: dir, DwellSeconds: 5, OriginalSize: true}

	got, err := BuildWorkingList(conf, Resolution{Width: 40, Height: 40})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, filepath.Base(got[0]), "good")
}

func TestBuildWorkingListAllBroken(t *testing.T) {
	t.Cleanup(func() { _ = Cleanup() })

	dir := t.TempDir()
	touch(t, dir, "bad1.jpg")
	touch(t, dir, "bad2.png")

	conf := &Config{Directory: dir, DwellSeconds: 5, OriginalSize: true}

	_, err := BuildWorkingList(conf, Resolution{Width: 40, Height: 40})
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestBuildWorkingListShuffle(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	touch(t, dir, "b.jpg")
	touch(t, dir, "c.jpg")
	touch(t, dir, "d.jpg")

	conf := &Config{Directory: dir, DwellSeconds: 5, Shuffle: true}

	got, err := BuildWorkingList(conf, Resolution{Width: 100, Height: 100})
	require.NoError(t, err)

	want, err := SelectImages(dir)
	require.NoError(t, err)

	// Order is random, membership is not
	assert.ElementsMatch(t, want, got)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{
			name: "Valid",
			conf: Config{Directory: "/some/dir", DwellSeconds: 10},
		},
		{
			name:    "Missing directory",
			conf:    Config{DwellSeconds: 10},
			wantErr: true,
		},
		{
			name:    "Zero dwell",
			conf:    Config{Directory: "/some/dir"},
			wantErr: true,
		},
		{
			name:    "Negative dwell",
			conf:    Config{Directory: "/some/dir", DwellSeconds: -3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
