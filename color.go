package imager

import "math"

// brightness is floor(0.3*R + 0.6*G + 0.1*B), computed in integers so the
// result is exact. Float evaluation lands just below the true value for
// many grey inputs, which would make greyscale drift on reapplication.
func brightness(p Pixel) int {
	return (3*int(p.R) + 6*int(p.G) + int(p.B)) / 10
}

// Monochrome converts the image to greyscale, or to sepia tone when sepia
// is true.
//
// Greyscale sets all three channels to the pixel brightness. Sepia keeps
// red at the brightness and sets green to floor(0.6*brightness) and blue
// to floor(0.4*brightness). Greyscale is idempotent.
func Monochrome(r Raster, sepia bool) {
	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			b := brightness(r.Pixel(row, col))
			p := Pixel{R: uint8(b), G: uint8(b), B: uint8(b)}
			if sepia {
				p.G = uint8(6 * b / 10)
				p.B = uint8(4 * b / 10)
			}
			r.SetPixel(row, col, p)
		}
	}
}

// Vignette darkens each pixel by the factor 1 - (d/hfD)^2, where d is the
// distance from the pixel to the image center and hfD is the distance from
// the center to the corner at (0, 0). Channels are truncated, not rounded.
//
// Distances use a plain square root of the summed squares. math.Hypot
// rounds differently and can land a factor such as 0.8 one ulp low, which
// truncation turns into a whole unit. The float64 conversions keep the
// compiler from fusing multiply-adds on architectures that have them.
//
// The factor is clamped to [0, 1], so pixels at or beyond the half
// diagonal go black instead of wrapping.
func Vignette(r Raster) {
	cy := float64(r.Height()) / 2
	cx := float64(r.Width()) / 2
	hfD := math.Sqrt(float64(cy*cy) + float64(cx*cx))
	if hfD == 0 {
		return
	}

	for row := 0; row < r.Height(); row++ {
		for col := 0; col < r.Width(); col++ {
			dy, dx := float64(row)-cy, float64(col)-cx
			d := math.Sqrt(float64(dy*dy) + float64(dx*dx))
			ratio := d / hfD
			darken := 1 - float64(ratio*ratio)
			darken = math.Max(0, math.Min(1, darken))

			p := r.Pixel(row, col)
			r.SetPixel(row, col, Pixel{
				R: uint8(float64(p.R) * darken),
				G: uint8(float64(p.G) * darken),
				B: uint8(float64(p.B) * darken),
			})
		}
	}
}
