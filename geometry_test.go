package imager

import (
	"testing"

	"github.com/wbrown/imager/imageutil"
)

func TestInvert(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{{R: 0, G: 128, B: 255}, {R: 10, G: 20, B: 30}},
	})
	Invert(img)

	want := fromRows(t, [][]Pixel{
		{{R: 255, G: 127, B: 0}, {R: 245, G: 235, B: 225}},
	})
	assertSameImage(t, want, img)
}

func TestInvertIsInvolutive(t *testing.T) {
	orig := imageutil.CreateNoiseImage(17, 9, 1)
	img := orig.Clone()
	Invert(img)
	if imageutil.Equal(img, orig) {
		t.Fatal("Invert should change a noise image")
	}
	Invert(img)
	assertSameImage(t, orig, img)
}

func TestTransposeMapping(t *testing.T) {
	// 3 wide, 2 tall
	img := fromRows(t, [][]Pixel{
		{gray(1), gray(2), gray(3)},
		{gray(4), gray(5), gray(6)},
	})
	Transpose(img)

	if img.Width() != 2 || img.Height() != 3 {
		t.Fatalf("Expected 2x3 after transpose, got %dx%d", img.Width(), img.Height())
	}
	want := fromRows(t, [][]Pixel{
		{gray(1), gray(4)},
		{gray(2), gray(5)},
		{gray(3), gray(6)},
	})
	assertSameImage(t, want, img)
}

func TestTransposeIsInvolutiveOnSquares(t *testing.T) {
	orig := imageutil.CreateIndexImage(12, 12)
	img := orig.Clone()
	Transpose(img)
	Transpose(img)
	assertSameImage(t, orig, img)
}

func TestRotateRightMapping(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{gray(1), gray(2), gray(3)},
		{gray(4), gray(5), gray(6)},
	})
	RotateRight(img)

	want := fromRows(t, [][]Pixel{
		{gray(4), gray(1)},
		{gray(5), gray(2)},
		{gray(6), gray(3)},
	})
	assertSameImage(t, want, img)
}

func TestRotateLeftMapping(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{gray(1), gray(2), gray(3)},
		{gray(4), gray(5), gray(6)},
	})
	RotateLeft(img)

	want := fromRows(t, [][]Pixel{
		{gray(3), gray(6)},
		{gray(2), gray(5)},
		{gray(1), gray(4)},
	})
	assertSameImage(t, want, img)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tc := range []struct {
		name   string
		rotate func(Raster)
	}{
		{"right", RotateRight},
		{"left", RotateLeft},
	} {
		t.Run(tc.name, func(t *testing.T) {
			orig := imageutil.CreateIndexImage(13, 7)
			img := orig.Clone()
			for i := 0; i < 4; i++ {
				tc.rotate(img)
			}
			assertSameImage(t, orig, img)
		})
	}
}

func TestRotateLeftUndoesRotateRight(t *testing.T) {
	orig := imageutil.CreateNoiseImage(10, 6, 4)
	img := orig.Clone()
	RotateRight(img)
	RotateLeft(img)
	assertSameImage(t, orig, img)
}

func TestReflectHorizontal(t *testing.T) {
	img := fromRows(t, [][]Pixel{
		{gray(1), gray(2), gray(3)},
		{gray(4), gray(5), gray(6)},
	})
	ReflectHorizontal(img)

	want := fromRows(t, [][]Pixel{
		{gray(3), gray(2), gray(1)},
		{gray(6), gray(5), gray(4)},
	})
	assertSameImage(t, want, img)
}

func TestReflectVerticalNonSquare(t *testing.T) {
	// Wider than tall, so every column must be swapped.
	img := fromRows(t, [][]Pixel{
		{gray(1), gray(2), gray(3), gray(4)},
		{gray(5), gray(6), gray(7), gray(8)},
		{gray(9), gray(10), gray(11), gray(12)},
	})
	ReflectVertical(img)

	want := fromRows(t, [][]Pixel{
		{gray(9), gray(10), gray(11), gray(12)},
		{gray(5), gray(6), gray(7), gray(8)},
		{gray(1), gray(2), gray(3), gray(4)},
	})
	assertSameImage(t, want, img)
}

func TestReflectIsInvolutive(t *testing.T) {
	for _, tc := range []struct {
		name    string
		reflect func(Raster)
	}{
		{"horizontal", ReflectHorizontal},
		{"vertical", ReflectVertical},
	} {
		t.Run(tc.name, func(t *testing.T) {
			orig := imageutil.CreateNoiseImage(9, 8, 2)
			img := orig.Clone()
			tc.reflect(img)
			tc.reflect(img)
			assertSameImage(t, orig, img)
		})
	}
}

func TestGeometryPreservesPixels(t *testing.T) {
	// Every output pixel traces back to exactly one input pixel.
	for _, tc := range []struct {
		name string
		fn   func(Raster)
	}{
		{"transpose", Transpose},
		{"rotate-right", RotateRight},
		{"rotate-left", RotateLeft},
		{"reflect-h", ReflectHorizontal},
		{"reflect-v", ReflectVertical},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img := imageutil.CreateIndexImage(11, 5)
			tc.fn(img)

			if img.Width()*img.Height() != 55 {
				t.Fatalf("Expected 55 pixels, got %d", img.Width()*img.Height())
			}
			seen := make(map[Pixel]bool)
			for row := 0; row < img.Height(); row++ {
				for col := 0; col < img.Width(); col++ {
					seen[img.Pixel(row, col)] = true
				}
			}
			if len(seen) != 55 {
				t.Errorf("Expected 55 distinct source pixels, got %d", len(seen))
			}
		})
	}
}

func TestGeometryOnEmptyImage(t *testing.T) {
	img := imageutil.NewRGBAImage(0, 0)
	Invert(img)
	Transpose(img)
	RotateRight(img)
	RotateLeft(img)
	ReflectHorizontal(img)
	ReflectVertical(img)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Expected 0x0, got %dx%d", img.Width(), img.Height())
	}
}
