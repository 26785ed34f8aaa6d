package capture

import (
	"fmt"
	"image"
)

// dibRowStride returns the byte stride of one DIB row. Device-independent
// bitmap rows are padded to 4-byte boundaries.
func dibRowStride(width, bitsPerPixel int) int {
	return ((width*bitsPerPixel + 31) / 32) * 4
}

// rgbaFromDIB converts a top-down 24bpp DIB, whose channel order is
// blue-green-red, into an RGBA image, dropping the row padding.
func rgbaFromDIB(dib []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid bitmap dimensions %dx%d", width, height)
	}
	stride := dibRowStride(width, 24)
	if len(dib) < stride*height {
		return nil, fmt.Errorf("bitmap buffer too short: %d bytes for %dx%d (stride %d)", len(dib), width, height, stride)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := dib[y*stride : y*stride+width*3]
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = row[x*3+2] // R
			img.Pix[i+1] = row[x*3+1] // G
			img.Pix[i+2] = row[x*3+0] // B
			img.Pix[i+3] = 0xFF
		}
	}
	return img, nil
}
