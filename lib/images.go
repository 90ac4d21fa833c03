package slideshowlib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrDirectoryNotFound = errors.New("directory not found")

var imageFileExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff",
}

// SelectImages lists dir and returns the paths that look like raster
// images by extension. The extension match is purely name based, no
// file contents are inspected.
//
// Paths come back in raw directory order. That order is the slideshow
// order, so the unsorted File.ReadDir is deliberate.
func SelectImages(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: [%s]", ErrDirectoryNotFound, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: [%s]", ErrDirectoryNotFound, dir)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("Error listing directory [%s]: %w", dir, err)
	}

	images := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		nameLower := strings.ToLower(e.Name())
		for _, ext := range imageFileExtensions {
			if strings.HasSuffix(nameLower, ext) {
				images = append(images, filepath.Join(dir, e.Name()))
				break
			}
		}
	}

	return images, nil
}
