package imager

import (
	"errors"
	"log/slog"
)

// DefaultMaxHistory is the number of edits an Editor keeps by default,
// not counting the original image.
const DefaultMaxHistory = 20

// ErrNothingToUndo is returned by Undo when only the base version is
// left in the history.
var ErrNothingToUndo = errors.New("nothing to undo")

// Editor keeps a bounded history of edits to a raster. Each applied
// filter works on a fresh copy of the current image, so earlier versions
// stay intact for Undo. Once the history is full the oldest version is
// dropped and the next one becomes the base Undo stops at.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	MaxHistory int

	original Raster
	history  []Raster // history[0] is the base; never empty
}

// EditorOption is a functional option for configuring an Editor.
type EditorOption func(*Editor)

// WithMaxHistory sets the number of edits kept for undo. Values below 1
// are treated as 1.
func WithMaxHistory(n int) EditorOption {
	return func(e *Editor) {
		e.MaxHistory = n
	}
}

// NewEditor creates an Editor whose history starts with a copy of
// original. Later changes to original do not reach the editor.
func NewEditor(original Raster, opts ...EditorOption) *Editor {
	base := original.Copy()
	e := &Editor{
		MaxHistory: DefaultMaxHistory,
		original:   base,
		history:    []Raster{base},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.MaxHistory < 1 {
		e.MaxHistory = 1
	}
	return e
}

// Original returns the image the editor was created with. The raster
// belongs to the editor and must not be modified; Copy it first.
func (e *Editor) Original() Raster {
	return e.original
}

// Current returns the most recent version of the image. Like Original,
// it is the editor's own history entry, so modify a Copy instead.
func (e *Editor) Current() Raster {
	return e.history[len(e.history)-1]
}

// Len returns the number of versions held, the base included.
func (e *Editor) Len() int {
	return len(e.history)
}

// Apply runs f on a copy of the current image and records the result.
// If f fails, the history is left as it was.
func (e *Editor) Apply(f Filter) error {
	next := e.Current().Copy()
	if err := f.Apply(next); err != nil {
		Logger().Debug("filter failed", slog.String("filter", f.Name()), slog.Any("error", err))
		return err
	}

	e.history = append(e.history, next)
	if over := len(e.history) - (e.MaxHistory + 1); over > 0 {
		e.history = append(e.history[:0], e.history[over:]...)
	}
	Logger().Debug("filter applied",
		slog.String("filter", f.Name()),
		slog.Int("width", next.Width()),
		slog.Int("height", next.Height()),
		slog.Int("history", e.Len()))
	return nil
}

// ApplyAll applies filters in order. On the first failure it stops and
// returns the error; edits already applied stay in the history.
func (e *Editor) ApplyAll(filters []Filter) error {
	for _, f := range filters {
		if err := e.Apply(f); err != nil {
			return err
		}
	}
	return nil
}

// Undo discards the most recent edit. It returns ErrNothingToUndo once
// only the base version is left.
func (e *Editor) Undo() error {
	if len(e.history) == 1 {
		return ErrNothingToUndo
	}
	e.history[len(e.history)-1] = nil
	e.history = e.history[:len(e.history)-1]
	Logger().Debug("undo", slog.Int("history", e.Len()))
	return nil
}

// Reset discards every edit, returning to the original image.
func (e *Editor) Reset() {
	e.history = []Raster{e.original}
}
