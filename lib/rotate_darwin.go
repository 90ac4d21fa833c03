//go:build darwin

package slideshowlib

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// RunSlideshow hands the whole rotation to osascript in a single
// invocation and blocks until the script finishes or ctx is cancelled.
func RunSlideshow(
	ctx context.Context, images []string, dwellSeconds int, loop bool) error {

	script := BuildSlideshowScript(images, dwellSeconds, loop)

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAutomation, err)
	}
	return nil
}
