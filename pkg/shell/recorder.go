package shell

import (
	"github.com/akeil/affinetool"
)

// Recorder is a Target that keeps the displayed shapes in memory.
type Recorder struct {
	// Shapes holds the currently displayed polygons.
	Shapes []affinetool.Polygon
	// Flushes counts the redraws.
	Flushes int
}

func (r *Recorder) ClearAndAdd(p affinetool.Polygon) error {
	r.Shapes = r.Shapes[:0]
	r.Shapes = append(r.Shapes, p.Copy())
	return nil
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}
