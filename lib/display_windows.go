//go:build windows

package slideshowlib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const smCxScreen = 0
const smCyScreen = 1

var user32 = windows.NewLazySystemDLL("user32.dll")
var procGetSystemMetrics = user32.NewProc("GetSystemMetrics")

// DetectResolution reads the primary display dimensions from
// GetSystemMetrics.
func DetectResolution() (Resolution, error) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)

	if w == 0 || h == 0 {
		return Resolution{}, fmt.Errorf("%w: GetSystemMetrics returned %dx%d",
			ErrResolutionDetection, w, h)
	}

	return Resolution{Width: int(w), Height: int(h)}, nil
}
