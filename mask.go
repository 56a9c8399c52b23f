package dotmatrix

import "image"

// Mask records which pixels of an image passed the threshold test. Cells are
// addressed relative to the image's bounds, so (0, 0) is always Bounds().Min.
type Mask struct {
	Width, Height int
	cells         []bool // column-major
}

// NewMask tests every pixel of img: a pixel is filled when the sum of its
// channel samples is at least threshold.
func NewMask(img image.Image, layout Layout, threshold int) *Mask {
	bounds := img.Bounds()
	m := &Mask{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	m.cells = make([]bool, m.Width*m.Height)
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			sum := layout.Sum(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if sum < threshold {
				continue
			}
			m.cells[x*m.Height+y] = true
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is filled. Coordinates outside the
// mask are never filled.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.cells[x*m.Height+y]
}

// Count returns the number of filled pixels.
func (m *Mask) Count() int {
	var n int
	for _, filled := range m.cells {
		if filled {
			n++
		}
	}
	return n
}

// Each calls fn for every filled pixel, x-major then y, stopping at the first
// error.
func (m *Mask) Each(fn func(x, y int) error) error {
	for i, filled := range m.cells {
		if !filled {
			continue
		}
		if err := fn(i/m.Height, i%m.Height); err != nil {
			return err
		}
	}
	return nil
}
