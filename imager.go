// Package imager applies whole-image filters to a grid of RGB pixels.
//
// Every filter reads and writes through the imageutil.Raster interface.
// Color filters and overlays work in place. Transpose and the rotations
// take a Snapshot of the source pixels before resizing the raster, then
// repopulate every cell from it. Each filter validates its arguments
// before its first write, so a call that returns an error leaves the
// raster untouched.
package imager

import (
	"fmt"

	"github.com/wbrown/imager/imageutil"
)

// Pixel is an (R, G, B) triple with channels in 0..255.
type Pixel = imageutil.RGB

// Raster is the pixel grid filters operate on.
type Raster = imageutil.Raster

var (
	// ErrInvalidArgument is wrapped by every precondition failure.
	ErrInvalidArgument = imageutil.ErrInvalidArgument

	// ErrMalformedPixel reports a channel value outside 0..255.
	ErrMalformedPixel = imageutil.ErrMalformedPixel

	// ErrInvalidStep reports a pixellation step that is not positive.
	ErrInvalidStep = fmt.Errorf("%w: step must be > 0", ErrInvalidArgument)

	// ErrBarOutOfBounds reports a bar that would run off the image.
	ErrBarOutOfBounds = fmt.Errorf("%w: bar out of bounds", ErrInvalidArgument)

	// ErrRasterTooSmall reports an image too small for the jail cage.
	ErrRasterTooSmall = fmt.Errorf("%w: raster too small", ErrInvalidArgument)

	// ErrUnknownFilter reports a filter name missing from the registry.
	ErrUnknownFilter = fmt.Errorf("%w: unknown filter", ErrInvalidArgument)
)

// Red is the jail bar color.
var Red = Pixel{R: 255, G: 0, B: 0}
