package imager

import "fmt"

// Pixellate gives the image a blocky look. It divides the image into
// step x step blocks from the top-left corner, and fills each block with
// the truncated mean of its pixels.
//
// When the dimensions are not multiples of step, the right strip, the
// bottom strip and the bottom-right corner become smaller blocks. Each
// one is averaged over its own pixel count.
func Pixellate(r Raster, step int) error {
	if step <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}

	w, h := r.Width(), r.Height()
	for r0 := 0; r0 < h; r0 += step {
		r1 := min(r0+step, h)
		for c0 := 0; c0 < w; c0 += step {
			c1 := min(c0+step, w)
			fillBlock(r, r0, c0, r1, c1, blockMean(r, r0, c0, r1, c1))
		}
	}
	return nil
}

// blockMean averages the half-open rectangle [r0,r1) x [c0,c1).
func blockMean(r Raster, r0, c0, r1, c1 int) Pixel {
	var sr, sg, sb int
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			p := r.Pixel(row, col)
			sr += int(p.R)
			sg += int(p.G)
			sb += int(p.B)
		}
	}
	n := (r1 - r0) * (c1 - c0)
	return Pixel{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n)}
}

func fillBlock(r Raster, r0, c0, r1, c1 int, p Pixel) {
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			r.SetPixel(row, col, p)
		}
	}
}
