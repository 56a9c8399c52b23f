package dotmatrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrUnsupportedPixel is returned when an image's pixels are not a tuple of
// colour channels, eg. grayscale or alpha-only images.
var ErrUnsupportedPixel = errors.New("dotmatrix: unsupported pixel format")

// Layout describes the channel tuple a decoder reports for each pixel. The
// threshold test sums every channel in the tuple, alpha included.
type Layout int

const (
	LayoutRGB       Layout = iota + 1 // red, green, blue
	LayoutRGBA                        // red, green, blue, alpha (non-premultiplied)
	LayoutCMYK                        // cyan, magenta, yellow, black
	LayoutGrayAlpha                   // luminance, alpha (non-premultiplied)
)

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutRGBA:
		return "RGBA"
	case LayoutCMYK:
		return "CMYK"
	case LayoutGrayAlpha:
		return "GrayAlpha"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Channels returns the number of samples in each pixel tuple.
func (l Layout) Channels() int {
	switch l {
	case LayoutGrayAlpha:
		return 2
	case LayoutRGB:
		return 3
	case LayoutRGBA, LayoutCMYK:
		return 4
	}
	return 0
}

// DetectLayout returns the layout of img's pixels.
func DetectLayout(img image.Image) (Layout, error) {
	return LayoutOf(img.ColorModel())
}

// LayoutOf maps a colour model to the channel tuple its pixels decode to.
// Paletted models resolve through the palette: RGB when every entry is
// opaque, RGBA otherwise.
func LayoutOf(m color.Model) (Layout, error) {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return LayoutRGBA, nil
			}
		}
		return LayoutRGB, nil
	}
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return LayoutRGB, nil
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return LayoutRGBA, nil
	case color.CMYKModel:
		return LayoutCMYK, nil
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 0, fmt.Errorf("%w: single-channel pixels", ErrUnsupportedPixel)
	}
	return 0, fmt.Errorf("%w: colour model %T", ErrUnsupportedPixel, m)
}

// Samples returns the 8-bit channel samples of c in the order of l.
func (l Layout) Samples(c color.Color) []uint8 {
	switch l {
	case LayoutRGB:
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		return []uint8{rgba.R, rgba.G, rgba.B}
	case LayoutRGBA:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return []uint8{n.R, n.G, n.B, n.A}
	case LayoutCMYK:
		k := color.CMYKModel.Convert(c).(color.CMYK)
		return []uint8{k.C, k.M, k.Y, k.K}
	case LayoutGrayAlpha:
		// Gray+alpha decodes to NRGBA with R == G == B.
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return []uint8{n.R, n.A}
	}
	return nil
}

// Sum adds up the channel samples of c.
func (l Layout) Sum(c color.Color) int {
	var sum int
	for _, s := range l.Samples(c) {
		sum += int(s)
	}
	return sum
}
