package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PPMWriter writes binary (P6) PPM files with the intensity in all three
// channels
type PPMWriter struct {
	Path string
}

// NewPPMWriter creates a writer for path
func NewPPMWriter(path string) *PPMWriter {
	return &PPMWriter{Path: path}
}

func (w *PPMWriter) Write(pixels []float64, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	file, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("failed to create PPM file: %w", err)
	}

	if err := EncodePPM(file, pixels, width, height); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", w.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", w.Path, err)
	}
	return nil
}

// EncodePPM writes the P6 header followed by three bytes per pixel
func EncodePPM(out io.Writer, pixels []float64, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	buf := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(buf, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, p := range pixels {
		v := ToByte(p)
		if _, err := buf.Write([]byte{v, v, v}); err != nil {
			return err
		}
	}
	return buf.Flush()
}
