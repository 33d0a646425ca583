package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/akeil/affinetool"
)

// PNG paints the polygon on the coordinate system and writes the
// result as PNG data to the given writer.
func (c *Context) PNG(w io.Writer, p affinetool.Polygon) error {
	return png.Encode(w, c.Image(p))
}

// Image paints the polygon on the coordinate system.
func (c *Context) Image(p affinetool.Polygon) *image.RGBA {
	v := c.Viewport
	rect := image.Rect(0, 0, int(math.Round(v.Width)), int(math.Round(v.Height)))
	dst := image.NewRGBA(rect)

	renderBackground(dst, c.Style)

	gc := draw2dimg.NewGraphicContext(dst)
	renderAxes(gc, v, c.Style)
	renderPolygon(gc, v, c.Style, p)

	return dst
}

// renderBackground fills the complete destination image with the background color.
func renderBackground(dst draw.Image, s Style) {
	bg := image.NewUniform(s.Background)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}

// renderAxes paints the x and y axis through the origin, with tick marks.
func renderAxes(gc *draw2dimg.GraphicContext, v Viewport, s Style) {
	m := v.Matrix()
	line := func(x0, y0, x1, y1 float64) {
		pts := m.Apply(affinetool.Homogenize(affinetool.Polygon{{X: x0, Y: y0}, {X: x1, Y: y1}}))
		gc.BeginPath()
		gc.MoveTo(pts[0].X, pts[0].Y)
		gc.LineTo(pts[1].X, pts[1].Y)
		gc.Stroke()
	}

	gc.SetStrokeColor(s.Axis)
	gc.SetLineWidth(s.AxisWidth)

	line(v.XMin, 0, v.XMax, 0)
	line(0, v.YMin, 0, v.YMax)

	// tick length in world units, a few pixels on screen
	size := 4 / v.Scale()
	for _, t := range ticks(v.XMin, v.XMax) {
		line(t.pos, -size, t.pos, size)
	}
	for _, t := range ticks(v.YMin, v.YMax) {
		line(-size, t.pos, size, t.pos)
	}
}

// renderPolygon paints p as a closed, filled polygon.
func renderPolygon(gc *draw2dimg.GraphicContext, v Viewport, s Style, p affinetool.Polygon) {
	if len(p) == 0 {
		return
	}
	pts := v.ToDevice(p)

	gc.SetFillColor(s.fillColor())
	gc.SetStrokeColor(s.Edge)
	gc.SetLineWidth(s.EdgeWidth)

	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		gc.LineTo(pt.X, pt.Y)
	}
	gc.Close()
	gc.FillStroke()
}
