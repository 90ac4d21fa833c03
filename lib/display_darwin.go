//go:build darwin

package slideshowlib

import (
	"fmt"
	"os/exec"
)

// DetectResolution asks system_profiler for display data and pulls the
// first Resolution field out of the report.
func DetectResolution() (Resolution, error) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: system_profiler: %s",
			ErrResolutionDetection, err)
	}

	return parseDisplayProfile(string(out))
}
