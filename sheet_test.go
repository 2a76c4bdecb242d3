package imager

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/wbrown/imager/imageutil"
)

func TestContactSheetLayout(t *testing.T) {
	src := imageutil.CreateSolidImage(20, 10, Pixel{})
	filters, err := ParsePipeline("invert,rotate-right")
	if err != nil {
		t.Fatalf("ParsePipeline failed: %v", err)
	}
	bg := Pixel{R: 40, G: 40, B: 40}
	sheet, err := ContactSheet(src, filters,
		WithTileSize(32, 32),
		WithColumns(2),
		WithLabelColors(Pixel{R: 255, G: 255, B: 0}, bg))
	if err != nil {
		t.Fatalf("ContactSheet failed: %v", err)
	}

	// Three tiles (original included) in two columns: 2 x (32 + 8) + 8.
	if sheet.Width() != 88 {
		t.Errorf("Expected sheet width 88, got %d", sheet.Width())
	}
	cellH := (sheet.Height() - 8) / 2
	if cellH <= 40 || (sheet.Height()-8)%2 != 0 {
		t.Fatalf("Unexpected sheet height %d", sheet.Height())
	}

	// Thumbnails end at y = 40; everything below them in the first row of
	// cells is label space, so any non-background pixel there is text.
	text := 0
	for y := 40; y < 8+cellH; y++ {
		for x := 0; x < sheet.Width(); x++ {
			if sheet.Pixel(y, x) != bg {
				text++
			}
		}
	}
	if text == 0 {
		t.Error("Expected label text below the first row of tiles")
	}

	// The inverted tile is white where the source was black.
	if got := sheet.Pixel(8+16, 48+16); got != (Pixel{R: 255, G: 255, B: 255}) {
		t.Errorf("Expected white inverted thumbnail, got %v", got)
	}
	// The source is left untouched.
	if got := src.Pixel(0, 0); got != (Pixel{}) {
		t.Errorf("ContactSheet modified its source: %v", got)
	}
}

func TestContactSheetErrors(t *testing.T) {
	src := imageutil.CreateSolidImage(3, 2, Pixel{})
	if _, err := ContactSheet(src, nil, WithColumns(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected invalid-argument for zero columns, got %v", err)
	}
	if _, err := ContactSheet(src, nil, WithOriginal(false)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected invalid-argument for an empty sheet, got %v", err)
	}
	jail, _ := Lookup("jail")
	if _, err := ContactSheet(src, []Filter{jail}); !errors.Is(err, ErrRasterTooSmall) {
		t.Errorf("Expected ErrRasterTooSmall from the jail tile, got %v", err)
	}
}

func TestContactSheetSaves(t *testing.T) {
	src := imageutil.CreateColorBarsImage(64, 48)
	filters, err := ParsePipeline("sepia,vignette,pixellate=8,jail")
	if err != nil {
		t.Fatalf("ParsePipeline failed: %v", err)
	}
	sheet, err := ContactSheet(src, filters)
	if err != nil {
		t.Fatalf("ContactSheet failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := imageutil.SaveImage(sheet.RGBA, path); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	loaded, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if !imageutil.Equal(sheet, loaded) {
		t.Error("Contact sheet should survive a PNG round trip")
	}
}
