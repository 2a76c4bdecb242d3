package imager

import (
	"testing"

	"github.com/wbrown/imager/imageutil"
)

func TestMonochromeGreyscale(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{{R: 100, G: 150, B: 200}, {R: 255, G: 255, B: 255}, {R: 0, G: 0, B: 0}, {R: 255, G: 0, B: 0}},
	})
	Monochrome(img, false)

	// (3*100 + 6*150 + 200) / 10 = 140; red alone is 0.3*255 = 76.5
	want := fromRows(t, [][]Pixel{
		{gray(140), gray(255), gray(0), gray(76)},
	})
	assertSameImage(t, want, img)
}

func TestMonochromeSepia(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{{R: 100, G: 150, B: 200}, {R: 255, G: 255, B: 255}},
	})
	Monochrome(img, true)

	want := fromRows(t, [][]Pixel{
		{{R: 140, G: 84, B: 56}, {R: 255, G: 153, B: 102}},
	})
	assertSameImage(t, want, img)
}

func TestMonochromeIsIdempotent(t *testing.T) {
	img := imageutil.CreateNoiseImage(32, 32, 5)
	Monochrome(img, false)
	once := img.Clone()
	Monochrome(img, false)
	assertSameImage(t, once, img)
}

func TestMonochromeKeepsEveryGreyLevel(t *testing.T) {
	img := imageutil.NewRGBAImage(256, 1)
	for v := 0; v < 256; v++ {
		img.SetPixel(0, v, gray(uint8(v)))
	}
	want := img.Clone()
	Monochrome(img, false)
	assertSameImage(t, want, img)
}

func TestVignettePreservesCenter(t *testing.T) {
	c := Pixel{R: 200, G: 100, B: 50}
	img := imageutil.CreateSolidImage(8, 6, c)
	Vignette(img)

	if got := img.Pixel(3, 4); got != c {
		t.Errorf("Expected center pixel %v unchanged, got %v", c, got)
	}
}

func TestVignetteDarkensTowardCorners(t *testing.T) {
	img := imageutil.CreateSolidImage(4, 4, Pixel{R: 100, G: 60, B: 9})
	Vignette(img)

	// (0,0) lies exactly on the half diagonal.
	if got := img.Pixel(0, 0); got != (Pixel{}) {
		t.Errorf("Expected corner (0,0) black, got %v", got)
	}
	// d = 1, hfD = sqrt(8): darken = 0.875, truncated.
	if got, want := img.Pixel(1, 2), (Pixel{R: 87, G: 52, B: 7}); got != want {
		t.Errorf("Expected %v at (1,2), got %v", want, got)
	}
	// Brightness falls off moving out from the center along a row.
	if center, next := img.Pixel(2, 2).R, img.Pixel(2, 3).R; next >= center {
		t.Errorf("Expected red to fall from %d at the center, got %d", center, next)
	}
}

func TestVignetteNeverWraps(t *testing.T) {
	img := imageutil.CreateSolidImage(7, 5, gray(255))
	Vignette(img)
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			if p := img.Pixel(row, col); p.R != p.G || p.G != p.B {
				t.Fatalf("Unexpected vignette pixel %v at (%d,%d)", p, row, col)
			}
		}
	}
	if got := img.Pixel(0, 0); got.R > 64 {
		t.Errorf("Expected the (0,0) corner to be dark, got %v", got)
	}
}

func TestVignetteOddSizes(t *testing.T) {
	src := Pixel{R: 255, G: 200, B: 7}

	// Three rows of five, checked pixel by pixel.
	img := imageutil.CreateSolidImage(5, 3, src)
	Vignette(img)
	want := [][]Pixel{
		{{R: 0, G: 0, B: 0}, {R: 120, G: 94, B: 3}, {R: 180, G: 141, B: 4}, {R: 180, G: 141, B: 4}, {R: 120, G: 94, B: 3}},
		{{R: 60, G: 47, B: 1}, {R: 180, G: 141, B: 4}, {R: 240, G: 188, B: 6}, {R: 240, G: 188, B: 6}, {R: 180, G: 141, B: 4}},
		{{R: 60, G: 47, B: 1}, {R: 180, G: 141, B: 4}, {R: 240, G: 188, B: 6}, {R: 240, G: 188, B: 6}, {R: 180, G: 141, B: 4}},
	}
	assertSameImage(t, fromRows(t, want), img)

	// Nine rows of seven: (2,3) has a factor of exactly 0.8.
	img = imageutil.CreateSolidImage(7, 9, src)
	Vignette(img)
	if got, want := img.Pixel(2, 3), (Pixel{R: 204, G: 160, B: 5}); got != want {
		t.Errorf("Expected %v at (2,3), got %v", want, got)
	}
}
