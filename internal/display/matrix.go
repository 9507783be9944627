package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Matrix is an 8x8 pixel display. Changes become visible on Flush.
type Matrix interface {
	Clear(c Color) error
	SetPixel(row, col int, c Color) error
	Flush() error
}

// pixels is the shared 8x8 buffer.
type pixels [Size][Size]Color

// fill sets every pixel to c.
func (p *pixels) fill(c Color) {
	for row := range p {
		for col := range p[row] {
			p[row][col] = c
		}
	}
}

// Grid is an in-memory matrix. When created with a writer, Flush prints it.
type Grid struct {
	px pixels
	w  io.Writer
}

// NewGrid creates a grid that prints itself to w on Flush; w may be nil.
func NewGrid(w io.Writer) *Grid {
	return &Grid{w: w}
}

// Clear fills the grid.
func (g *Grid) Clear(c Color) error {
	g.px.fill(c)

	return nil
}

// SetPixel sets one pixel; out-of-range coordinates are clamped.
func (g *Grid) SetPixel(row, col int, c Color) error {
	g.px[clamp(row)][clamp(col)] = c

	return nil
}

// Pixel returns the color at row, col.
func (g *Grid) Pixel(row, col int) Color {
	return g.px[clamp(row)][clamp(col)]
}

// Flush prints the grid to the writer, if any.
func (g *Grid) Flush() error {
	if g.w == nil {
		return nil
	}

	if _, err := fmt.Fprintln(g.w, g.String()); err != nil {
		return fmt.Errorf("print matrix: %w", err)
	}

	return nil
}

// String renders the grid with the top row last, two cells per pixel.
func (g *Grid) String() string {
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("237"))

	var b strings.Builder

	for row := Size - 1; row >= 0; row-- {
		for col := range Size {
			c := g.px[row][col]
			if c == Black {
				b.WriteString(off.Render(".."))

				continue
			}

			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("##"))
		}

		if row > 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
