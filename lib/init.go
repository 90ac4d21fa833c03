package slideshowlib

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Config holds the slideshow parameters taken from the command line.
// Immutable once Validate has been called.
type Config struct {
	Directory    string
	DwellSeconds int
	Resolution   string
	OriginalSize bool
	Shuffle      bool
	Loop         bool
}

func (c *Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("no image directory specified")
	}

	if c.DwellSeconds <= 0 {
		return fmt.Errorf(
			"transition time must be greater than 0, got [%d]", c.DwellSeconds)
	}

	return nil
}

var tempDir string
var tempErr error
var tempOnce sync.Once

// composites are the temporary files this run has created.
// Cleanup only ever deletes these, never pass-through originals.
var composites []string

func TempDir() (string, error) {
	tempOnce.Do(func() {
		tempDir, tempErr = os.MkdirTemp("", "wallslide")
	})

	return tempDir, tempErr
}

func registerComposite(path string) {
	composites = append(composites, path)
}

// Cleanup deletes every composite produced during this run and then the
// temporary directory itself. Individual deletion failures are logged
// and skipped so one stuck file never strands the rest.
func Cleanup() error {
	for _, f := range composites {
		if err := os.Remove(f); err != nil {
			log.Printf("Error removing temporary file %s: %v", f, err)
		}
	}
	composites = nil

	if tempDir == "" {
		return nil
	}

	err := os.RemoveAll(tempDir)
	tempDir = ""
	tempErr = nil
	tempOnce = sync.Once{}
	return err
}
