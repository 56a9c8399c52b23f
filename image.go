package dotmatrix

import (
	"fmt"
	"image"
	"io"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open decodes the image at path along with the layout of its pixels. The
// layout comes from the file header, so it describes the stored pixels even
// when autoOrient rotates them into a different colour model.
func Open(path string, autoOrient bool) (image.Image, Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	grayAlpha := format == "png" && isPNGGrayAlpha(f)
	f.Close()

	img, err := imaging.Open(path, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	// Fall back to the decoded image when the header has no colour model.
	model := cfg.ColorModel
	if model == nil {
		model = img.ColorModel()
	}
	layout, err := LayoutOf(model)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	// The PNG decoder widens gray+alpha to NRGBA; sum the two stored
	// channels rather than a tripled luminance.
	if grayAlpha {
		layout = LayoutGrayAlpha
	}
	Logger().Debug("dotmatrix: decoded", "path", path, "format", format,
		"width", cfg.Width, "height", cfg.Height, "layout", layout)
	return img, layout, nil
}

// pngColorTypeOffset is the position of the colour type byte in a PNG file:
// the 8 byte signature, the IHDR length and type, then width, height and bit
// depth.
const pngColorTypeOffset = 8 + 4 + 4 + 4 + 4 + 1

const pngColorTypeGrayAlpha = 4

// isPNGGrayAlpha reports whether the PNG read by r stores gray+alpha pixels.
func isPNGGrayAlpha(r io.ReaderAt) bool {
	var b [1]byte
	if _, err := r.ReadAt(b[:], pngColorTypeOffset); err != nil {
		return false
	}
	return b[0] == pngColorTypeGrayAlpha
}
