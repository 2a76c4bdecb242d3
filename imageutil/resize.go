package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for scaling.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest, and keeps pixellated blocks crisp.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Scale returns a new RGBA image of the specified dimensions, resampled
// from img with the given interpolation method. Unlike Raster.Resize,
// the contents are preserved.
func Scale(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaleToWidth scales an image to the specified width while maintaining
// aspect ratio. Images already narrower than width are returned unchanged.
func ScaleToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	if width <= 0 || img.Width() <= width {
		return img
	}
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Scale(img, width, height, interp)
}

// ScaleToFit scales an image so it fits in a box of the given size while
// maintaining aspect ratio.
func ScaleToFit(img *RGBAImage, maxWidth, maxHeight int, interp Interpolation) *RGBAImage {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return NewRGBAImage(0, 0)
	}
	sx := float64(maxWidth) / float64(w)
	sy := float64(maxHeight) / float64(h)
	s := sx
	if sy < s {
		s = sy
	}
	nw, nh := int(float64(w)*s), int(float64(h)*s)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return Scale(img, nw, nh, interp)
}
