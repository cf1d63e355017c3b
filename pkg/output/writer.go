package output

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Writer stores a row-major grid of intensities
type Writer interface {
	Write(pixels []float64, width, height int) error
}

// ForPath returns the writer matching the file extension of path
func ForPath(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return NewPPMWriter(path), nil
	case ".png":
		return NewPNGWriter(path), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ToByte clamps an intensity to [0, 1] and scales it to 0..255. NaN maps to 0.
func ToByte(intensity float64) uint8 {
	if !(intensity > 0) {
		return 0
	}
	if intensity >= 1 {
		return 255
	}
	return uint8(intensity*255 + 0.5)
}

// ToGray converts intensities into an 8-bit grayscale image. Pixel (x, y) of
// the buffer becomes pixel (x, y) of the image.
func ToGray(pixels []float64, width, height int) (*image.Gray, error) {
	if err := checkSize(pixels, width, height); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x] = ToByte(pixels[y*width+x])
		}
	}
	return img, nil
}

func checkSize(pixels []float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("pixel buffer holds %d values, expected %dx%d", len(pixels), width, height)
	}
	return nil
}
