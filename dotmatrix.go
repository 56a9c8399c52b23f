// Package dotmatrix encodes images as SVG dot matrices. Every pixel whose
// channel samples add up to at least a threshold becomes a white circle on a
// transparent canvas; all other pixels are left empty.
package dotmatrix

import (
	"errors"
	"fmt"
	"image"
	"io"
)

const (
	DefaultRadius    = 2
	DefaultThreshold = 4
)

// ErrInvalidRadius is returned when the dot radius is not positive.
var ErrInvalidRadius = errors.New("dotmatrix: radius must be positive")

type Option func(enc *Encoder)

// WithRadius sets the radius of each dot, in output units.
func WithRadius(r int) Option {
	return func(enc *Encoder) {
		enc.radius = r
	}
}

// WithThreshold sets the minimum channel sum a pixel needs to become a dot.
func WithThreshold(t int) Option {
	return func(enc *Encoder) {
		enc.threshold = t
	}
}

// WithFilter preprocesses images before the threshold test.
func WithFilter(f Filter) Option {
	return func(enc *Encoder) {
		enc.filter = f
	}
}

// WithLayout skips layout detection. Use it when the layout is known from the
// decoder, eg. via Open.
func WithLayout(l Layout) Option {
	return func(enc *Encoder) {
		enc.layout = l
	}
}

type Encoder struct {
	w         io.Writer
	radius    int
	threshold int
	filter    Filter
	layout    Layout // zero means detect
}

// Encode writes img to w as an SVG document using the default radius and
// threshold.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		w:         w,
		radius:    DefaultRadius,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

/*
Encode tests each pixel of img against the threshold and writes the resulting
dot matrix to w as an SVG document. The canvas is 2r pixels per image pixel in
both directions, and each passing pixel (x, y) becomes

	<circle cx="(x+1)*2r" cy="(y+1)*2r" r="r" fill="white"/>

Circles are written column by column: all of x=0 top to bottom, then x=1 and
so on. A 1x1 white image with the default radius encodes as:

	<svg width="4" height="4" viewBox="0 0 4 4" fill="none" xmlns="http://www.w3.org/2000/svg">
	<circle cx="4" cy="4" r="2" fill="white"/>
	</svg>
*/
func (enc *Encoder) Encode(img image.Image) error {
	m, err := enc.Mask(img)
	if err != nil {
		return err
	}
	return enc.EncodeMask(m)
}

// Mask applies the encoder's filter and threshold to img. The layout is
// taken from img before filtering, since filters may change the colour model
// but not what the decoder reported.
func (enc *Encoder) Mask(img image.Image) (*Mask, error) {
	layout := enc.layout
	if layout == 0 {
		var err error
		if layout, err = DetectLayout(img); err != nil {
			return nil, err
		}
	}
	Logger().Debug("dotmatrix: layout", "layout", layout, "channels", layout.Channels())

	if enc.filter != nil {
		img = enc.filter.Filter(img)
	}
	return NewMask(img, layout, enc.threshold), nil
}

// EncodeMask writes an already thresholded mask.
func (enc *Encoder) EncodeMask(m *Mask) error {
	if enc.radius <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, enc.radius)
	}
	if err := writeSVG(enc.w, m, enc.radius); err != nil {
		return err
	}
	Logger().Info("dotmatrix: encoded", "dots", m.Count(), "width", m.Width, "height", m.Height)
	return nil
}
