package dotmatrix

import (
	"bufio"
	"fmt"
	"io"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Canvas returns the size of the document for a width x height image: every
// pixel occupies a 2r x 2r cell.
func Canvas(radius, width, height int) (int, int) {
	return 2 * radius * width, 2 * radius * height
}

// Center returns the centre of the dot drawn for pixel (x, y). Dots are
// shifted one cell right and down, so the first dot sits at (2r, 2r).
func Center(x, y, radius int) (int, int) {
	return (x + 1) * (2 * radius), (y + 1) * (2 * radius)
}

// writeSVG streams the document for m. Each circle is preceded by a line
// feed and the closing tag has no trailing newline.
func writeSVG(w io.Writer, m *Mask, radius int) error {
	bw := bufio.NewWriter(w)
	width, height := Canvas(radius, m.Width, m.Height)
	fmt.Fprintf(bw, `<svg width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="%s">`,
		width, height, width, height, svgNamespace)

	err := m.Each(func(x, y int) error {
		cx, cy := Center(x, y, radius)
		_, err := fmt.Fprintf(bw, "\n"+`<circle cx="%d" cy="%d" r="%d" fill="white"/>`, cx, cy, radius)
		return err
	})
	if err != nil {
		return err
	}

	if _, err := bw.WriteString("\n</svg>"); err != nil {
		return err
	}
	return bw.Flush()
}
