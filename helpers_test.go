package imager

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wbrown/imager/imageutil"
)

// assertSameImage fails the test with a row-by-row diff when the two
// rasters differ.
func assertSameImage(t *testing.T, want, got Raster) {
	t.Helper()
	if diff := cmp.Diff(imageutil.Rows(want), imageutil.Rows(got)); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}
}

func fromRows(t *testing.T, rows [][]Pixel) *imageutil.RGBAImage {
	t.Helper()
	img, err := imageutil.RGBAImageFromRows(rows)
	if err != nil {
		t.Fatalf("RGBAImageFromRows: %v", err)
	}
	return img
}

// gray is a shorthand for a pixel with equal channels.
func gray(v uint8) Pixel {
	return Pixel{R: v, G: v, B: v}
}
