package dotmatrix

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes the outcome of encoding one mask.
type Summary struct {
	Pixels       int
	Dots         int
	CanvasWidth  int
	CanvasHeight int
}

func Summarize(m *Mask, radius int) Summary {
	w, h := Canvas(radius, m.Width, m.Height)
	return Summary{
		Pixels:       m.Width * m.Height,
		Dots:         m.Count(),
		CanvasWidth:  w,
		CanvasHeight: h,
	}
}

// Format renders s as a sentence with numbers grouped for tag, eg.
// "rendered 1,234 of 5,000 pixels as dots on a 400x200 canvas".
func (s Summary) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("rendered %d of %d pixels as dots on a %dx%d canvas",
		s.Dots, s.Pixels, s.CanvasWidth, s.CanvasHeight)
}
