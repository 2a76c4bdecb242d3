// Package gocv_compare checks the pure Go filters against OpenCV through
// gocv. It requires OpenCV to be installed.
//
// Run with: cd imageutil/gocv_compare && go test -v
package gocv_compare

import (
	"github.com/wbrown/imager/imageutil"
	"gocv.io/x/gocv"
)

// MatRaster adapts a BGR gocv.Mat to the imageutil.Raster interface, so
// the filters can run directly on OpenCV buffers.
type MatRaster struct {
	Mat gocv.Mat
}

var _ imageutil.Raster = (*MatRaster)(nil)

// NewMatRaster allocates a width x height BGR raster.
func NewMatRaster(width, height int) *MatRaster {
	return &MatRaster{Mat: gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)}
}

// MatRasterFromRGBA copies an RGBAImage into a new BGR raster.
func MatRasterFromRGBA(img *imageutil.RGBAImage) *MatRaster {
	m := NewMatRaster(img.Width(), img.Height())
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			m.SetPixel(row, col, img.Pixel(row, col))
		}
	}
	return m
}

// Width returns the number of columns.
func (m *MatRaster) Width() int { return m.Mat.Cols() }

// Height returns the number of rows.
func (m *MatRaster) Height() int { return m.Mat.Rows() }

// Pixel returns the pixel at (row, col). gocv stores channels as BGR.
func (m *MatRaster) Pixel(row, col int) imageutil.RGB {
	vec := m.Mat.GetVecbAt(row, col)
	return imageutil.RGB{R: vec[2], G: vec[1], B: vec[0]}
}

// SetPixel sets the pixel at (row, col).
func (m *MatRaster) SetPixel(row, col int, p imageutil.RGB) {
	m.Mat.SetUCharAt(row, col*3, p.B)
	m.Mat.SetUCharAt(row, col*3+1, p.G)
	m.Mat.SetUCharAt(row, col*3+2, p.R)
}

// SwapPixels exchanges two cells.
func (m *MatRaster) SwapPixels(r1, c1, r2, c2 int) {
	a, b := m.Pixel(r1, c1), m.Pixel(r2, c2)
	m.SetPixel(r1, c1, b)
	m.SetPixel(r2, c2, a)
}

// Copy clones the underlying Mat.
func (m *MatRaster) Copy() imageutil.Raster {
	return &MatRaster{Mat: m.Mat.Clone()}
}

// Resize releases the current Mat and allocates a new one.
func (m *MatRaster) Resize(width, height int) {
	m.Mat.Close()
	m.Mat = gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
}

// Close releases the underlying Mat.
func (m *MatRaster) Close() error {
	return m.Mat.Close()
}
