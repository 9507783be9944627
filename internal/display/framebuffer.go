package display

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// Framebuffer drives the Sense HAT LED matrix through its Linux framebuffer
// device. Pixels are buffered and written as 64 little-endian RGB565 words.
type Framebuffer struct {
	path string
	px   pixels
}

// NewFramebuffer creates a matrix backed by the device at path, e.g. /dev/fb1.
func NewFramebuffer(path string) *Framebuffer {
	return &Framebuffer{path: filepath.Clean(path)}
}

// Clear fills the buffer.
func (f *Framebuffer) Clear(c Color) error {
	f.px.fill(c)

	return nil
}

// SetPixel sets one buffered pixel; out-of-range coordinates are clamped.
func (f *Framebuffer) SetPixel(row, col int, c Color) error {
	f.px[clamp(row)][clamp(col)] = c

	return nil
}

// Flush writes the buffer to the device, opening and closing it within the call.
func (f *Framebuffer) Flush() error {
	buf := make([]byte, 0, Size*Size*2)

	for row := range f.px {
		for col := range f.px[row] {
			buf = binary.LittleEndian.AppendUint16(buf, f.px[row][col].RGB565())
		}
	}

	dev, err := os.OpenFile(f.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}

	_, err = dev.Write(buf)
	if closeErr := dev.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write framebuffer: %w", err)
	}

	return nil
}
