package imager

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/wbrown/imager/imageutil"
)

// Filter is a named whole-image operation.
type Filter interface {
	Name() string
	Apply(r Raster) error
}

// namedFilter pairs a name with the function that implements it.
type namedFilter struct {
	name string
	fn   func(Raster) error
}

// NewFilter returns a Filter with the given name that runs fn.
func NewFilter(name string, fn func(Raster) error) Filter {
	return namedFilter{name: name, fn: fn}
}

func (f namedFilter) Name() string { return f.name }

func (f namedFilter) Apply(r Raster) error { return f.fn(r) }

// infallible wraps a filter that cannot fail.
func infallible(fn func(Raster)) func(Raster) error {
	return func(r Raster) error {
		fn(r)
		return nil
	}
}

// factory builds a filter from the text after '=' in a pipeline entry.
// hasArg reports whether an '=' was present.
type factory func(arg string, hasArg bool) (Filter, error)

type registration struct {
	name  string
	usage string
	make  factory
}

var registry []registration

func register(name, usage string, f factory) {
	registry = append(registry, registration{name: name, usage: usage, make: f})
}

// plain registers a filter that takes no argument.
func plain(name, usage string, fn func(Raster) error) {
	register(name, usage, func(_ string, hasArg bool) (Filter, error) {
		if hasArg {
			return nil, fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, name)
		}
		return NewFilter(name, fn), nil
	})
}

func init() {
	plain("invert", "replace each channel with its complement", infallible(Invert))
	plain("transpose", "swap rows and columns", infallible(Transpose))
	plain("rotate-right", "rotate 90 degrees clockwise", infallible(RotateRight))
	plain("rotate-left", "rotate 90 degrees counter-clockwise", infallible(RotateLeft))
	plain("reflect-h", "mirror left to right", infallible(ReflectHorizontal))
	plain("reflect-v", "mirror top to bottom", infallible(ReflectVertical))
	plain("greyscale", "convert to greyscale", infallible(func(r Raster) { Monochrome(r, false) }))
	plain("sepia", "convert to sepia tone", infallible(func(r Raster) { Monochrome(r, true) }))
	plain("vignette", "darken toward the corners", infallible(Vignette))
	plain("jail", "draw red jail bars", Jail)

	register("pixellate", "pixellate=<step>: average step x step blocks",
		func(arg string, hasArg bool) (Filter, error) {
			if !hasArg {
				return nil, fmt.Errorf("%w: pixellate needs a step", ErrInvalidStep)
			}
			step, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalidStep, arg)
			}
			if step <= 0 {
				return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
			}
			return NewFilter("pixellate="+arg, func(r Raster) error {
				return Pixellate(r, step)
			}), nil
		})
	register("hbar", "hbar=<row>[:<color>]: 3-pixel horizontal bar",
		barFactory("hbar", DrawHBar))
	register("vbar", "vbar=<col>[:<color>]: 4-pixel vertical bar",
		barFactory("vbar", DrawVBar))
}

func barFactory(name string, draw func(Raster, int, Pixel) error) factory {
	return func(arg string, hasArg bool) (Filter, error) {
		if !hasArg {
			return nil, fmt.Errorf("%w: %s needs a position", ErrInvalidArgument, name)
		}
		posText, colorText, hasColor := strings.Cut(arg, ":")
		pos, err := strconv.Atoi(posText)
		if err != nil {
			return nil, fmt.Errorf("%w: %s position %q", ErrInvalidArgument, name, posText)
		}
		p := Red
		if hasColor {
			if p, err = ParseColor(colorText); err != nil {
				return nil, err
			}
		}
		return NewFilter(name+"="+arg, func(r Raster) error {
			return draw(r, pos, p)
		}), nil
	}
}

// Lookup parses a single pipeline entry such as "sepia" or
// "pixellate=8" and returns the filter it names.
func Lookup(entry string) (Filter, error) {
	entry = strings.TrimSpace(entry)
	name, arg, hasArg := strings.Cut(entry, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	for _, reg := range registry {
		if reg.name == name {
			return reg.make(strings.TrimSpace(arg), hasArg)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Names lists the registered filter names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, reg := range registry {
		names[i] = reg.name
	}
	return names
}

// Usage returns a one-line description of the named filter.
func Usage(name string) string {
	for _, reg := range registry {
		if reg.name == name {
			return reg.usage
		}
	}
	return ""
}

// ParsePipeline parses a comma-separated list of filter entries, for
// example "rotate-right,pixellate=8,sepia". Empty entries are skipped.
func ParsePipeline(pipeline string) ([]Filter, error) {
	var filters []Filter
	for _, entry := range strings.Split(pipeline, ",") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		f, err := Lookup(entry)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// ApplyAll runs filters in order, stopping at the first error.
func ApplyAll(r Raster, filters []Filter) error {
	for _, f := range filters {
		if err := f.Apply(r); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb", "rrggbb" or a CSS color name such as
// "red" or "steelblue".
func ParseColor(s string) (Pixel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return imageutil.RGBFromColor(c), nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(b) != 3 {
		return Pixel{}, fmt.Errorf("%w: color %q", ErrMalformedPixel, s)
	}
	return Pixel{R: b[0], G: b[1], B: b[2]}, nil
}
