//go:build linux

package capture

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/kbinani/screenshot"
)

// nativeProvider captures the primary display through the display server.
type nativeProvider struct{}

func newProvider() Provider {
	return nativeProvider{}
}

func (nativeProvider) Capture() (*Result, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, ErrZeroDisplay
	}

	bounds := screenshot.GetDisplayBounds(0)
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrZeroDisplay
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture display: %w", err)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return &Result{PNG: out.Bytes(), Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
