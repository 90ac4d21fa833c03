package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	lib "github.com/avisser/wallslide/lib"
)

func main() {
	os.Exit(run())
}

// Cleanup has to cover every exit path, including fatal errors and
// interrupts, so the whole app runs inside a function whose defers fire
// before the exit code is returned.
func run() int {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := lib.Cleanup(); err != nil {
			log.Printf("Error cleaning up temporary files: %v", err)
		}
	}()

	app := cli.NewApp()
	app.Name = "wallslide"
	app.Usage = "Rotate desktop wallpapers from a directory on a timed interval"
	app.Flags = slideshowFlags()
	app.Action = slideshowAction

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}
