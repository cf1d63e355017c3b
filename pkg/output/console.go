package output

import (
	"bufio"
	"io"
)

// asciiRamp orders characters from dark to bright
const asciiRamp = " .:-=+*#%@"

// DefaultConsoleColumns is the preview width used by NewConsoleWriter
const DefaultConsoleColumns = 80

// ConsoleWriter draws intensities as ASCII art. Images wider than Columns
// are sampled down; rows are sampled at twice the column step because
// terminal cells are about twice as tall as they are wide.
type ConsoleWriter struct {
	Out     io.Writer
	Columns int // 0 draws every pixel
}

// NewConsoleWriter creates an 80-column writer
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{Out: out, Columns: DefaultConsoleColumns}
}

func (w *ConsoleWriter) Write(pixels []float64, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	stepX, stepY := 1, 1
	if w.Columns > 0 && width > w.Columns {
		stepX = (width + w.Columns - 1) / w.Columns
		stepY = 2 * stepX
	}

	buf := bufio.NewWriter(w.Out)
	for y := 0; y < height; y += stepY {
		for x := 0; x < width; x += stepX {
			buf.WriteByte(ToASCII(pixels[y*width+x]))
		}
		buf.WriteByte('\n')
	}
	return buf.Flush()
}

// ToASCII maps an intensity to a character of the ramp
func ToASCII(intensity float64) byte {
	index := int(ToByte(intensity)) * len(asciiRamp) / 256
	return asciiRamp[index]
}
