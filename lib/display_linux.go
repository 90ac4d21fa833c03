//go:build linux

package slideshowlib

import (
	"fmt"
	"io"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// DetectResolution reads the dimensions of the first active CRTC over
// RandR. Multi-monitor setups get the first output, not the bounding
// box, since a single wallpaper canvas is being sized.
func DetectResolution() (Resolution, error) {
	// Stop polluting stdout
	xgb.Logger.SetOutput(io.Discard)

	X, err := xgb.NewConn()
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %s", ErrResolutionDetection, err)
	}
	defer X.Close()

	if err := randr.Init(X); err != nil {
		return Resolution{}, fmt.Errorf("%w: %s", ErrResolutionDetection, err)
	}

	screen := xproto.Setup(X).DefaultScreen(X)

	resources, err := randr.GetScreenResources(X, screen.Root).Reply()
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %s", ErrResolutionDetection, err)
	}

	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(X, crtc, 0).Reply()
		if err != nil {
			return Resolution{}, fmt.Errorf("%w: %s", ErrResolutionDetection, err)
		}

		if info.Width > 0 && info.Height > 0 {
			return Resolution{Width: int(info.Width), Height: int(info.Height)}, nil
		}
	}

	if screen.WidthInPixels > 0 {
		return Resolution{
			Width:  int(screen.WidthInPixels),
			Height: int(screen.HeightInPixels),
		}, nil
	}

	return Resolution{}, ErrResolutionDetection
}
