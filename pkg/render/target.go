package render

import (
	"image"
	"io"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/internal/fs"
	"github.com/akeil/affinetool/internal/logging"
)

// ImageTarget displays polygons on an in-memory canvas.
//
// If Path is set, every Flush also writes the canvas to that file,
// in the format given by the file extension.
type ImageTarget struct {
	ctx   *Context
	shape affinetool.Polygon
	img   *image.RGBA
	Path  string
}

// NewImageTarget creates a target that draws with the given context.
func NewImageTarget(c *Context, path string) *ImageTarget {
	return &ImageTarget{ctx: c, Path: path}
}

// ClearAndAdd replaces the displayed polygon.
func (t *ImageTarget) ClearAndAdd(p affinetool.Polygon) error {
	t.shape = p.Copy()
	return nil
}

// Flush redraws the canvas and writes the output file, if any.
func (t *ImageTarget) Flush() error {
	t.img = t.ctx.Image(t.shape)
	if t.Path == "" {
		return nil
	}

	f, err := FormatForPath(t.Path)
	if err != nil {
		return err
	}

	logging.Debug("Write %v to %q", f, t.Path)
	return fs.WriteFile(t.Path, func(w io.Writer) error {
		return t.ctx.Render(w, f, t.shape)
	})
}

// Image returns the canvas as of the last Flush.
func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

// Shape returns the displayed polygon.
func (t *ImageTarget) Shape() affinetool.Polygon {
	return t.shape.Copy()
}
