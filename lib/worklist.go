package slideshowlib

import (
	"errors"
	"fmt"
	"log"

	strpick "github.com/awused/go-strpick"
)

var ErrNoImages = errors.New("no valid images found")

// BuildWorkingList produces the ordered list of files the slideshow
// will rotate through. With OriginalSize set every entry is a freshly
// composited temporary file; otherwise the originals pass through
// untouched.
func BuildWorkingList(c *Config, res Resolution) ([]string, error) {
	images, err := SelectImages(c.Directory)
	if err != nil {
		return nil, err
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("%w in [%s]", ErrNoImages, c.Directory)
	}

	if c.Shuffle {
		images, err = shuffleImages(images)
		if err != nil {
			return nil, err
		}
	}

	if !c.OriginalSize {
		return images, nil
	}

	working := []string{}
	for _, p := range images {
		out, err := ComposeCentered(p, res)
		if err != nil {
			// A single bad file shouldn't kill the slideshow
			log.Printf("Error processing image %s: %v", p, err)
			continue
		}
		working = append(working, out)
	}

	if len(working) == 0 {
		return nil, fmt.Errorf("%w in [%s]", ErrNoImages, c.Directory)
	}

	return working, nil
}

// Draws a full unique permutation out of the picker rather than using
// a plain shuffle, keeping selection consistent with how repeated runs
// would weight unseen images.
func shuffleImages(images []string) ([]string, error) {
	picker := strpick.NewPicker()
	defer picker.Close()

	if err := picker.AddAll(images); err != nil {
		return nil, err
	}

	return picker.TryUniqueN(len(images))
}
