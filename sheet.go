package imager

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/imager/imageutil"
)

// SheetOptions controls contact sheet layout.
type SheetOptions struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Padding    int
	FontSize   float64
	Background Pixel
	LabelColor Pixel
	// IncludeOriginal prepends an unfiltered tile labelled "original".
	IncludeOriginal bool
	// Font is used for labels. Nil selects Go Regular.
	Font *truetype.Font
}

// SheetOption is a functional option for ContactSheet.
type SheetOption func(*SheetOptions)

// WithTileSize sets the box each thumbnail is scaled to fit.
func WithTileSize(width, height int) SheetOption {
	return func(o *SheetOptions) {
		o.TileWidth, o.TileHeight = width, height
	}
}

// WithColumns sets the number of tiles per row.
func WithColumns(n int) SheetOption {
	return func(o *SheetOptions) {
		o.Columns = n
	}
}

// WithLabelColors sets the label text and background colors.
func WithLabelColors(label, background Pixel) SheetOption {
	return func(o *SheetOptions) {
		o.LabelColor, o.Background = label, background
	}
}

// WithOriginal controls whether the unfiltered source gets a tile.
func WithOriginal(include bool) SheetOption {
	return func(o *SheetOptions) {
		o.IncludeOriginal = include
	}
}

// WithFont sets the label font and size.
func WithFont(f *truetype.Font, size float64) SheetOption {
	return func(o *SheetOptions) {
		o.Font, o.FontSize = f, size
	}
}

var defaultFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

type sheetTile struct {
	label string
	img   *imageutil.RGBAImage
}

// ContactSheet renders src once per filter and lays the results out in a
// labelled grid. Each filter runs on its own full-size copy of src before
// the result is scaled down, so src is left unchanged.
func ContactSheet(src Raster, filters []Filter, opts ...SheetOption) (*imageutil.RGBAImage, error) {
	o := SheetOptions{
		TileWidth:       160,
		TileHeight:      160,
		Columns:         4,
		Padding:         8,
		FontSize:        12,
		Background:      Pixel{R: 32, G: 32, B: 32},
		LabelColor:      Pixel{R: 230, G: 230, B: 230},
		IncludeOriginal: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.TileWidth <= 0 || o.TileHeight <= 0 || o.Columns <= 0 || o.Padding < 0 {
		return nil, fmt.Errorf("%w: sheet layout %dx%d, %d columns, padding %d",
			ErrInvalidArgument, o.TileWidth, o.TileHeight, o.Columns, o.Padding)
	}
	if o.Font == nil {
		f, err := defaultFont()
		if err != nil {
			return nil, fmt.Errorf("failed to parse label font: %w", err)
		}
		o.Font = f
	}

	var tiles []sheetTile
	if o.IncludeOriginal {
		tiles = append(tiles, sheetTile{label: "original", img: imageutil.ToRGBAImage(src.Copy())})
	}
	for _, f := range filters {
		work := src.Copy()
		if err := f.Apply(work); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		tiles = append(tiles, sheetTile{label: f.Name(), img: imageutil.ToRGBAImage(work)})
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: contact sheet has no tiles", ErrInvalidArgument)
	}

	face := truetype.NewFace(o.Font, &truetype.Options{
		Size:    o.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	metrics := face.Metrics()
	labelHeight := (metrics.Ascent + metrics.Descent).Ceil() + o.Padding/2

	cols := min(o.Columns, len(tiles))
	rows := (len(tiles) + cols - 1) / cols
	cellW := o.TileWidth + o.Padding
	cellH := o.TileHeight + labelHeight + o.Padding

	sheet := imageutil.CreateSolidImage(cols*cellW+o.Padding, rows*cellH+o.Padding, o.Background)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(o.Font)
	ctx.SetFontSize(o.FontSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet.RGBA)
	ctx.SetSrc(image.NewUniform(o.LabelColor.ToColor()))
	ctx.SetHinting(font.HintingFull)

	for i, t := range tiles {
		x0 := o.Padding + (i%cols)*cellW
		y0 := o.Padding + (i/cols)*cellH

		thumb := imageutil.ScaleToFit(t.img, o.TileWidth, o.TileHeight, imageutil.InterpolationNearest)
		// Center the thumbnail in its box.
		tx := x0 + (o.TileWidth-thumb.Width())/2
		ty := y0 + (o.TileHeight-thumb.Height())/2
		draw.Draw(sheet.RGBA, image.Rect(tx, ty, tx+thumb.Width(), ty+thumb.Height()),
			thumb.RGBA, image.Point{}, draw.Src)

		labelW := font.MeasureString(face, t.label).Ceil()
		pt := fixed.Point26_6{
			X: fixed.I(x0 + max(0, (o.TileWidth-labelW)/2)),
			Y: fixed.I(y0+o.TileHeight+o.Padding/2) + metrics.Ascent,
		}
		if _, err := ctx.DrawString(t.label, pt); err != nil {
			return nil, fmt.Errorf("failed to draw label %q: %w", t.label, err)
		}
	}

	Logger().Debug("contact sheet rendered",
		slog.Int("tiles", len(tiles)),
		slog.Int("width", sheet.Width()),
		slog.Int("height", sheet.Height()))
	return sheet, nil
}
