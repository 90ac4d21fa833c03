package slideshowlib

import (
	"errors"
	"strconv"
	"strings"
)

var ErrAutomation = errors.New("error executing slideshow")

// BuildSlideshowScript renders the AppleScript that walks the image
// list, pointing the desktop at each file and delaying dwellSeconds
// between transitions. With loop the walk repeats indefinitely.
func BuildSlideshowScript(images []string, dwellSeconds int, loop bool) string {
	quoted := make([]string, len(images))
	for i, img := range images {
		quoted[i] = strconv.Quote(img)
	}

	var b strings.Builder
	b.WriteString("tell application \"System Events\"\n")
	b.WriteString("\tset the_images to {" + strings.Join(quoted, ", ") + "}\n")
	b.WriteString("\tset the_transition_time to " +
		strconv.Itoa(dwellSeconds) + "\n\n")
	if loop {
		b.WriteString("\trepeat\n")
	}
	b.WriteString("\trepeat with i from 1 to count of the_images\n")
	b.WriteString("\t\tset the_image to item i of the_images\n")
	b.WriteString("\t\ttell application \"Finder\"\n")
	b.WriteString("\t\t\tset desktop picture to POSIX file the_image\n")
	b.WriteString("\t\tend tell\n")
	b.WriteString("\t\tdelay the_transition_time\n")
	b.WriteString("\tend repeat\n")
	if loop {
		b.WriteString("\tend repeat\n")
	}
	b.WriteString("end tell\n")

	return b.String()
}
