package output

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// PNGWriter writes 8-bit grayscale PNG files
type PNGWriter struct {
	Path string
}

// NewPNGWriter creates a writer for path
func NewPNGWriter(path string) *PNGWriter {
	return &PNGWriter{Path: path}
}

func (w *PNGWriter) Write(pixels []float64, width, height int) error {
	img, err := ToGray(pixels, width, height)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(w.Path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.Path, err)
	}
	return nil
}

// EncodePNG writes the intensities as a PNG to out
func EncodePNG(out io.Writer, pixels []float64, width, height int) error {
	img, err := ToGray(pixels, width, height)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(out)
}
