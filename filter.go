package dotmatrix

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Filter alters an image before it is thresholded.
type Filter interface {
	Filter(image.Image) image.Image
}

// Filters applies each filter in order.
type Filters []Filter

func (fs Filters) Filter(img image.Image) image.Image {
	for _, f := range fs {
		img = f.Filter(img)
	}
	return img
}

// Adjustments tweak the tone of an image. The zero value leaves the image
// untouched.
type Adjustments struct {
	// Gamma of 1.0 gives the original image. Less than 1.0 darkens it and
	// greater than 1.0 lightens it. Zero is treated as unset.
	Gamma float64 `yaml:"gamma"`
	// Brightness in [-100, 100]. -100 gives solid black, 100 solid white.
	Brightness float64 `yaml:"brightness"`
	// Contrast in [-100, 100]. -100 gives solid grey.
	Contrast float64 `yaml:"contrast"`
	// Sharpen is the sigma of the sharpening kernel. Zero disables it.
	Sharpen float64 `yaml:"sharpen"`
	// SigmoidMidpoint in [0, 1] and SigmoidFactor adjust contrast along a
	// sigmoid curve. A zero factor disables it. DefaultConfig sets the
	// midpoint to 0.5.
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
	Invert          bool    `yaml:"invert"`
}

// IsZero reports whether a leaves images untouched.
func (a Adjustments) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) && a.Brightness == 0 && a.Contrast == 0 &&
		a.Sharpen == 0 && a.SigmoidFactor == 0 && !a.Invert
}

func (a Adjustments) Filter(img image.Image) image.Image {
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, a.SigmoidMidpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	Logger().Debug("dotmatrix: adjusted", "adjustments", fmt.Sprintf("%+v", a))
	return img
}

// Fit shrinks images to fit within Width x Height pixels, keeping the aspect
// ratio. Images already small enough are left alone. Fewer pixels means fewer,
// sparser dots.
type Fit struct {
	Width, Height int
}

// ParseFit parses "W,H" or "WxH".
func ParseFit(s string) (Fit, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == 'x' || r == 'X' })
	if len(parts) != 2 {
		return Fit{}, fmt.Errorf("fit %q: want WIDTH,HEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Fit{}, fmt.Errorf("fit %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Fit{}, fmt.Errorf("fit %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return Fit{}, fmt.Errorf("fit %q: dimensions must be positive", s)
	}
	return Fit{Width: w, Height: h}, nil
}

func (f Fit) Filter(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= f.Width && bounds.Dy() <= f.Height {
		return img
	}
	img = resize.Thumbnail(uint(f.Width), uint(f.Height), img, resize.NearestNeighbor)
	Logger().Debug("dotmatrix: resized", "from", bounds.Size(), "to", img.Bounds().Size())
	return img
}
