package imageutil

// Raster is a mutable row-major grid of pixels, addressed by 0-indexed
// (row, col). Filters read and write images exclusively through it.
type Raster interface {
	Width() int
	Height() int

	// Pixel returns the pixel at (row, col).
	Pixel(row, col int) RGB
	// SetPixel overwrites the pixel at (row, col).
	SetPixel(row, col int, p RGB)
	// SwapPixels exchanges two cells.
	SwapPixels(r1, c1, r2, c2 int)

	// Copy returns a deep copy that shares no storage with the receiver.
	Copy() Raster
	// Resize reallocates the grid. Cell contents are unspecified until
	// each one is written again.
	Resize(width, height int)
}

// Snapshot is a frozen copy of a Raster's pixels. It has no setters, so
// it stays a stable read source while the live raster is overwritten or
// resized.
type Snapshot struct {
	width, height int
	pix           []RGB
}

// TakeSnapshot copies every pixel of r.
func TakeSnapshot(r Raster) Snapshot {
	s := Snapshot{
		width:  r.Width(),
		height: r.Height(),
		pix:    make([]RGB, r.Width()*r.Height()),
	}
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			s.pix[row*s.width+col] = r.Pixel(row, col)
		}
	}
	return s
}

// Width returns the snapshot width.
func (s Snapshot) Width() int { return s.width }

// Height returns the snapshot height.
func (s Snapshot) Height() int { return s.height }

// At returns the pixel at (row, col).
func (s Snapshot) At(row, col int) RGB {
	return s.pix[row*s.width+col]
}
