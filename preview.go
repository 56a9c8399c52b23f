package dotmatrix

import (
	"fmt"
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// RenderPreview rasterizes the dots of m the way a browser would draw the
// SVG, on a black background so the white dots are visible.
func RenderPreview(m *Mask, radius int) (*image.RGBA, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	width, height := Canvas(radius, m.Width, m.Height)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetFillColor(color.Black)
	draw2dkit.Rectangle(gc, 0, 0, float64(width), float64(height))
	gc.Fill()

	gc.SetFillColor(color.White)
	err := m.Each(func(x, y int) error {
		cx, cy := Center(x, y, radius)
		draw2dkit.Circle(gc, float64(cx), float64(cy), float64(radius))
		return nil
	})
	if err != nil {
		return nil, err
	}
	gc.Fill()
	return dst, nil
}

// SavePreview renders m and writes it as a PNG file.
func SavePreview(path string, m *Mask, radius int) error {
	img, err := RenderPreview(m, radius)
	if err != nil {
		return err
	}
	if err := draw2dimg.SaveToPngFile(path, img); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}
