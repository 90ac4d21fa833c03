//go:build windows

package slideshowlib

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const spiSetDeskWallpaper = 0x0014
const spifUpdateIniFile = 0x01
const spifSendChange = 0x02

var procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")

// RunSlideshow walks the image list natively, pointing the desktop at
// each file through SystemParametersInfo and sleeping dwellSeconds
// between transitions.
func RunSlideshow(
	ctx context.Context, images []string, dwellSeconds int, loop bool) error {

	dwell := time.Duration(dwellSeconds) * time.Second

	for {
		for _, img := range images {
			if err := setWallpaper(img); err != nil {
				return fmt.Errorf("%w: %s", ErrAutomation, err)
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(dwell):
			}
		}

		if !loop {
			return nil
		}
	}
}

func setWallpaper(img string) error {
	abs, err := filepath.Abs(img)
	if err != nil {
		return err
	}

	p, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return err
	}

	r, _, err := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendChange)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfo failed setting [%s]: %s", abs, err)
	}
	return nil
}
