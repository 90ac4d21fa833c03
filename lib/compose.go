package slideshowlib

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var compositeCount int

// ComposeCentered draws the source image centered on a black canvas of
// exactly res.Width x res.Height and writes the result to a fresh file
// in the per-run temporary directory. Sources larger than the canvas
// are clipped symmetrically rather than scaled.
//
// The returned file is tracked for deletion by Cleanup.
func ComposeCentered(path string, res Resolution) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("Error opening image [%s]: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("Error decoding image [%s]: %w", path, err)
	}

	x := floorDiv(res.Width-img.Bounds().Dx(), 2)
	y := floorDiv(res.Height-img.Bounds().Dy(), 2)

	canvas := imaging.New(res.Width, res.Height, color.Black)
	canvas = imaging.Paste(canvas, img, image.Pt(x, y))

	out, err := nextCompositePath(path)
	if err != nil {
		return "", err
	}

	if err := imaging.Save(canvas, out); err != nil {
		return "", fmt.Errorf("Error saving composite for [%s]: %w", path, err)
	}

	registerComposite(out)
	return out, nil
}

// Composites are always PNG regardless of the source format
const compositeFormat = ".png"

func nextCompositePath(src string) (string, error) {
	dir, err := TempDir()
	if err != nil {
		return "", err
	}

	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	compositeCount++
	return filepath.Join(
		dir, fmt.Sprintf("%03d-%s%s", compositeCount, base, compositeFormat)), nil
}

// Integer division that rounds toward negative infinity, so oversized
// sources land half a pixel up-left instead of down-right.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
