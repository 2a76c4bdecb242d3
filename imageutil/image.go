// Package imageutil provides the pixel buffers the filter engine operates
// on, together with pure Go helpers for loading, saving, scaling and
// comparing images.
package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrInvalidArgument is wrapped by every precondition failure in
	// imageutil and in the filter engine.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedPixel reports a channel value outside 0..255.
	ErrMalformedPixel = fmt.Errorf("%w: malformed pixel", ErrInvalidArgument)
)

// RGB represents a color in the RGB color space with 8-bit channels.
// It is the pixel value stored in every Raster cell; there is no alpha.
type RGB struct {
	R, G, B uint8
}

// NewRGB builds a pixel from untyped integer channels, rejecting any
// channel outside 0..255.
func NewRGB(r, g, b int) (RGB, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return RGB{}, fmt.Errorf("%w: (%d,%d,%d)", ErrMalformedPixel, r, g, b)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String formats the pixel as an (r,g,b) triple.
func (rgb RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// It implements Raster with row/column addressing on top of the x/y
// accessors of image.RGBA.
type RGBAImage struct {
	*image.RGBA
}

var _ Raster = (*RGBAImage)(nil)

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// Every pixel starts out opaque black.
func NewRGBAImage(width, height int) *RGBAImage {
	img := &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	img.opaque()
	return img
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return rgba
}

// RGBAImageFromRows builds an image from row-major pixel rows. All rows
// must have the same length.
func RGBAImageFromRows(rows [][]RGB) (*RGBAImage, error) {
	if len(rows) == 0 {
		return NewRGBAImage(0, 0), nil
	}
	width := len(rows[0])
	img := NewRGBAImage(width, len(rows))
	for row, pixels := range rows {
		if len(pixels) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d",
				ErrInvalidArgument, row, len(pixels), width)
		}
		for col, p := range pixels {
			img.SetPixel(row, col, p)
		}
	}
	return img, nil
}

// opaque sets every alpha byte so the buffer encodes as a normal image.
func (img *RGBAImage) opaque() {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y) in image coordinates.
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Pixel returns the pixel at (row, col). Rows and columns count from the
// top-left corner of the bounds, so sub-images index from 0 as well.
func (img *RGBAImage) Pixel(row, col int) RGB {
	return img.GetRGB(img.Rect.Min.X+col, img.Rect.Min.Y+row)
}

// SetPixel sets the pixel at (row, col).
func (img *RGBAImage) SetPixel(row, col int, c RGB) {
	img.SetRGB(img.Rect.Min.X+col, img.Rect.Min.Y+row, c)
}

// SwapPixels exchanges the pixels at (r1, c1) and (r2, c2).
func (img *RGBAImage) SwapPixels(r1, c1, r2, c2 int) {
	o := img.Rect.Min
	i := img.PixOffset(o.X+c1, o.Y+r1)
	j := img.PixOffset(o.X+c2, o.Y+r2)
	a := img.Pix[i : i+4 : i+4]
	b := img.Pix[j : j+4 : j+4]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// Copy returns an independent deep copy as a Raster.
func (img *RGBAImage) Copy() Raster {
	return img.Clone()
}

// Resize reallocates the pixel buffer at the new dimensions. The previous
// contents are discarded; callers must write every cell afterwards.
func (img *RGBAImage) Resize(width, height int) {
	img.RGBA = image.NewRGBA(image.Rect(0, 0, width, height))
	img.opaque()
}

// Clone creates a deep copy of the image. The copy always has its origin
// at (0, 0), even when img is a sub-image.
func (img *RGBAImage) Clone() *RGBAImage {
	w, h := img.Width(), img.Height()
	clone := &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	if w == 0 || h == 0 {
		return clone
	}
	for y := 0; y < h; y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(clone.Pix[y*clone.Stride:y*clone.Stride+4*w], img.Pix[src:src+4*w])
	}
	return clone
}

// Rows returns the pixels of any Raster as row-major slices.
func Rows(r Raster) [][]RGB {
	rows := make([][]RGB, r.Height())
	for row := range rows {
		rows[row] = make([]RGB, r.Width())
		for col := range rows[row] {
			rows[row][col] = r.Pixel(row, col)
		}
	}
	return rows
}

// ToRGBAImage copies any Raster into an RGBAImage. An RGBAImage is
// returned as is.
func ToRGBAImage(r Raster) *RGBAImage {
	if img, ok := r.(*RGBAImage); ok {
		return img
	}
	img := NewRGBAImage(r.Width(), r.Height())
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			img.SetPixel(row, col, r.Pixel(row, col))
		}
	}
	return img
}
