package imager

import (
	"fmt"
	"math"
)

const (
	hBarHeight = 3
	vBarWidth  = 4

	// interiorBarSpan is the number of columns per interior bar.
	interiorBarSpan = 50
)

// Jail draws a red cage over the image: 3-pixel bars across the top and
// bottom, 4-pixel bars down the left and right edges, and
// (width-8)/50 evenly spaced 4-pixel bars in between.
//
// The image must be at least 4 pixels wide and 3 pixels tall.
func Jail(r Raster) error {
	w, h := r.Width(), r.Height()
	if h < hBarHeight || w < vBarWidth {
		return fmt.Errorf("%w: jail needs at least %dx%d, got %dx%d",
			ErrRasterTooSmall, vBarWidth, hBarHeight, w, h)
	}

	cols := jailColumns(w)

	// Bounds are checked above, so the bars cannot fail.
	_ = DrawHBar(r, 0, Red)
	_ = DrawHBar(r, h-hBarHeight, Red)
	for _, c := range cols {
		_ = DrawVBar(r, c, Red)
	}
	return nil
}

// jailColumns returns the starting column of every vertical bar for an
// image of width w, outer bars included.
func jailColumns(w int) []int {
	n := (w - 2*vBarWidth) / interiorBarSpan
	if n < 0 {
		n = 0
	}
	spacing := float64(w-vBarWidth*(n+2)) / float64(n+1)

	cols := make([]int, 0, n+2)
	cols = append(cols, 0)
	for i := 1; i <= n; i++ {
		cols = append(cols, int(math.Floor(float64(vBarWidth*i)+spacing*float64(i))))
	}
	return append(cols, w-vBarWidth)
}

// DrawHBar paints rows row, row+1 and row+2 across the full width with p.
// It requires 0 <= row and row+2 < height.
func DrawHBar(r Raster, row int, p Pixel) error {
	if row < 0 || row+hBarHeight-1 >= r.Height() {
		return fmt.Errorf("%w: row %d for height %d", ErrBarOutOfBounds, row, r.Height())
	}
	for col := 0; col < r.Width(); col++ {
		for dy := 0; dy < hBarHeight; dy++ {
			r.SetPixel(row+dy, col, p)
		}
	}
	return nil
}

// DrawVBar paints columns col through col+3 down the full height with p.
// It requires 0 <= col and col+3 < width.
func DrawVBar(r Raster, col int, p Pixel) error {
	if col < 0 || col+vBarWidth-1 >= r.Width() {
		return fmt.Errorf("%w: col %d for width %d", ErrBarOutOfBounds, col, r.Width())
	}
	for row := 0; row < r.Height(); row++ {
		for dx := 0; dx < vBarWidth; dx++ {
			r.SetPixel(row, col+dx, p)
		}
	}
	return nil
}
