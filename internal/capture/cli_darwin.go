//go:build darwin

package capture

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// cliProvider shells out to the system screencapture utility.
type cliProvider struct{}

func newProvider() Provider {
	return cliProvider{}
}

// Capture runs `screencapture -x` (silenced shutter) against a uniquely
// named temp file and reads the result into memory. The temp file is
// removed on every exit path.
func (cliProvider) Capture() (*Result, error) {
	bin, err := exec.LookPath("screencapture")
	if err != nil {
		return nil, fmt.Errorf("%w: screencapture", ErrUtilityMissing)
	}

	return captureViaFile(tempPNGPath(), func(path string) error {
		out, err := exec.Command(bin, "-x", path).CombinedOutput()
		if err != nil {
			msg := strings.ToLower(string(bytes.TrimSpace(out)))
			if strings.Contains(msg, "not allowed") || strings.Contains(msg, "could not create image") {
				return fmt.Errorf("%w: %s", ErrPermissionDenied, msg)
			}
			return fmt.Errorf("screencapture failed: %v: %s", err, msg)
		}
		return nil
	})
}
