package capture

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
)

// captureViaFile drives a capture utility that can only write to disk:
// grab writes a PNG at path, the file is read back into memory, validated
// and removed. The temp file is gone when this returns, on every exit
// path. Untagged so the flow is testable off-platform with a fake grab.
func captureViaFile(path string, grab func(path string) error) (*Result, error) {
	defer os.Remove(path)

	if err := grab(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// The utility can exit zero yet write nothing when the user lacks
		// the screen-recording entitlement.
		return nil, fmt.Errorf("%w: no capture produced (%v)", ErrPermissionDenied, err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, ErrZeroDisplay
	}

	return &Result{PNG: data, Width: cfg.Width, Height: cfg.Height}, nil
}
