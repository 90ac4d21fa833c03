package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	lib "github.com/avisser/wallslide/lib"
)

const directory = "directory"
const transitionTime = "transition-time"
const resolution = "resolution"
const originalSize = "original-size"
const shuffle = "shuffle"
const loop = "loop"

func slideshowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     directory,
			Aliases:  []string{"d"},
			Required: true,
			Usage:    "Directory containing images to use as wallpaper",
		},
		&cli.IntFlag{
			Name:    transitionTime,
			Aliases: []string{"t"},
			Value:   10,
			Usage:   "Time in seconds each image stays up before transitioning",
		},
		&cli.StringFlag{
			Name:    resolution,
			Aliases: []string{"r"},
			Usage: "Resolution of the display as WIDTHxHEIGHT (e.g. \"1920x1080\")." +
				" Detected from the display if unset",
		},
		&cli.BoolFlag{
			Name: originalSize,
			Usage: "Display images at their original size," +
				" centered on a black canvas matching the display resolution",
		},
		&cli.BoolFlag{
			Name:    shuffle,
			Aliases: []string{"s"},
			Usage:   "Rotate through the images in random order",
		},
		&cli.BoolFlag{
			Name:  loop,
			Usage: "Cycle through the images indefinitely instead of stopping after one pass",
		},
	}
}

func slideshowAction(c *cli.Context) error {
	conf := &lib.Config{
		Directory:    c.String(directory),
		DwellSeconds: c.Int(transitionTime),
		Resolution:   c.String(resolution),
		OriginalSize: c.Bool(originalSize),
		Shuffle:      c.Bool(shuffle),
		Loop:         c.Bool(loop),
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	res, err := lib.ResolveResolution(conf.Resolution)
	if err != nil {
		return err
	}

	images, err := lib.BuildWorkingList(conf, res)
	if err != nil {
		return err
	}

	fmt.Println("Starting slideshow... Press Ctrl+C to exit.")
	err = lib.RunSlideshow(c.Context, images, conf.DwellSeconds, conf.Loop)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nSlideshow interrupted. Exiting...")
		return nil
	}
	return err
}
