package slideshowlib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

var ErrInvalidResolution = errors.New(
	"invalid resolution format, expected WIDTHxHEIGHT")

var ErrResolutionDetection = errors.New(
	"could not detect display resolution, specify one with -r WIDTHxHEIGHT")

// ResolveResolution parses a user-supplied WIDTHxHEIGHT string, or
// queries the display when none was given. A single attempt either way.
func ResolveResolution(configured string) (Resolution, error) {
	if configured != "" {
		return ParseResolution(configured)
	}

	return DetectResolution()
}

func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Resolution{}, fmt.Errorf("%w: [%s]", ErrInvalidResolution, s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: [%s]", ErrInvalidResolution, s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: [%s]", ErrInvalidResolution, s)
	}

	if w <= 0 || h <= 0 {
		return Resolution{}, fmt.Errorf("%w: [%s]", ErrInvalidResolution, s)
	}

	return Resolution{Width: w, Height: h}, nil
}

// parseDisplayProfile extracts the first resolution from
// system_profiler SPDisplaysDataType output. The line looks like
// "Resolution: 2560 x 1600 Retina" with optional trailing text.
func parseDisplayProfile(output string) (Resolution, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "Resolution") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "x" {
			continue
		}

		w, werr := strconv.Atoi(fields[1])
		h, herr := strconv.Atoi(fields[3])
		if werr != nil || herr != nil || w <= 0 || h <= 0 {
			continue
		}

		return Resolution{Width: w, Height: h}, nil
	}

	return Resolution{}, ErrResolutionDetection
}
