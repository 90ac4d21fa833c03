//go:build linux

package slideshowlib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"time"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

type environment int

const (
	gnome environment = iota
	unknown
)

// RunSlideshow drives the desktop through the image list natively,
// setting each wallpaper and sleeping dwellSeconds between
// transitions. GNOME goes through gsettings, everything else falls
// back to feh.
func RunSlideshow(
	ctx context.Context, images []string, dwellSeconds int, loop bool) error {

	env, err := detectEnvironment()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAutomation, err)
	}

	if env == gnome {
		if err := setDBUSAddress(); err != nil {
			return fmt.Errorf("%w: %s", ErrAutomation, err)
		}
	}

	dwell := time.Duration(dwellSeconds) * time.Second

	for {
		for _, img := range images {
			if err := setWallpaper(env, img); err != nil {
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

func setWallpaper(env environment, img string) error {
	if env == gnome {
		_, err := runBash(`
			gsettings set org.gnome.desktop.background picture-options centered
			gsettings set org.gnome.desktop.background picture-uri "file://` + img + `"
		`)
		return err
	}

	return exec.Command("feh", "--bg-center", img).Run()
}

func detectEnvironment() (environment, error) {
	xgbutil.Logger.SetOutput(io.Discard)

	X, err := xgbutil.NewConn()
	if err != nil {
		return unknown, err
	}
	defer X.Conn().Close()

	wm, err := ewmh.GetEwmhWM(X)
	if err != nil {
		// Feh probably works
		return unknown, nil
	}

	if strings.Contains(strings.ToLower(wm), "gnome") {
		return gnome, nil
	}
	return unknown, nil
}

const dbusAddress = "DBUS_SESSION_BUS_ADDRESS"

func setDBUSAddress() error {
	if os.Getenv(dbusAddress) != "" {
		return nil
	}

	// Assume a per-user dbus session
	u, err := user.Current()
	if err != nil {
		return nil
	}
	if u.Uid == "" {
		return errors.New("no $UID set")
	}
	return os.Setenv(dbusAddress, "unix:path=/run/user/"+u.Uid+"/bus")
}

func runBash(cmd string) (string, error) {
	// See http://redsymbol.net/articles/unofficial-bash-strict-mode/
	command := `
		set -euo pipefail
		IFS=$'\n\t'
		` + cmd + "\n"

	bash := exec.Command("/usr/bin/env", "bash")
	bash.Stdin = strings.NewReader(command)
	bash.Stderr = os.Stderr

	out, err := bash.Output()
	return string(out), err
}
