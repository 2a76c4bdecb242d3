package imager

import "github.com/wbrown/imager/imageutil"

// Invert replaces every channel c with its complement 255-c.
func Invert(r Raster) {
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			p := r.Pixel(row, col)
			r.SetPixel(row, col, Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B})
		}
	}
}

// remap resizes r to the transposed dimensions and fills each new cell
// from the source cell chosen by src. The snapshot is taken before the
// resize, since resizing discards the old contents.
func remap(r Raster, src func(s imageutil.Snapshot, row, col int) Pixel) {
	snap := imageutil.TakeSnapshot(r)
	r.Resize(snap.Height(), snap.Width())

	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			r.SetPixel(row, col, src(snap, row, col))
		}
	}
}

// Transpose swaps rows and columns: the new pixel at (row, col) is the
// old pixel at (col, row).
func Transpose(r Raster) {
	remap(r, func(s imageutil.Snapshot, row, col int) Pixel {
		return s.At(col, row)
	})
}

// RotateRight rotates the image 90 degrees clockwise.
func RotateRight(r Raster) {
	remap(r, func(s imageutil.Snapshot, row, col int) Pixel {
		return s.At(s.Height()-1-col, row)
	})
}

// RotateLeft rotates the image 90 degrees counter-clockwise.
func RotateLeft(r Raster) {
	remap(r, func(s imageutil.Snapshot, row, col int) Pixel {
		return s.At(col, s.Width()-1-row)
	})
}

// ReflectHorizontal mirrors the image left to right by swapping each
// column in the left half with its partner in the right half. A middle
// column of an odd width stays put.
func ReflectHorizontal(r Raster) {
	w := r.Width()
	for h := 0; h < w/2; h++ {
		k := w - 1 - h
		for row := 0; row < r.Height(); row++ {
			r.SwapPixels(row, h, row, k)
		}
	}
}

// ReflectVertical mirrors the image top to bottom.
func ReflectVertical(r Raster) {
	ht := r.Height()
	for h := 0; h < ht/2; h++ {
		k := ht - 1 - h
		for col := 0; col < r.Width(); col++ {
			r.SwapPixels(h, col, k, col)
		}
	}
}
