package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/akeil/affinetool"
)

// Viewport maps the visible part of the plane onto a device surface.
//
// Both axes use the same scale, the visible region is centered.
type Viewport struct {
	// XMin, XMax, YMin, YMax bound the visible region in world coordinates.
	XMin, XMax float64
	YMin, YMax float64
	// Width and Height of the device surface (pixels or points).
	Width, Height float64
}

// DefaultViewport shows x, y in [-4, 4] on a 600x500 surface.
func DefaultViewport() Viewport {
	return Viewport{
		XMin:   -4,
		XMax:   4,
		YMin:   -4,
		YMax:   4,
		Width:  600,
		Height: 500,
	}
}

// Scale returns the number of device units per world unit.
func (v Viewport) Scale() float64 {
	sx := v.Width / (v.XMax - v.XMin)
	sy := v.Height / (v.YMax - v.YMin)
	return math.Min(sx, sy)
}

// Matrix returns the transform from world to device coordinates.
//
// Device coordinates have their origin in the top left corner
// with y pointing down.
func (v Viewport) Matrix() affinetool.Matrix {
	s := v.Scale()
	cx := (v.XMin + v.XMax) / 2
	cy := (v.YMin + v.YMax) / 2

	center := affinetool.Translation(-cx, -cy)
	flip := affinetool.Scaling(s, -s)
	device := affinetool.Translation(v.Width/2, v.Height/2)

	return device.Multiply(flip.Multiply(center))
}

// ToDevice converts p to device coordinates.
func (v Viewport) ToDevice(p affinetool.Polygon) affinetool.Polygon {
	return v.Matrix().Apply(affinetool.Homogenize(p))
}

// Style holds the colors and line widths for a drawing.
type Style struct {
	Background color.Color
	Fill       color.Color
	// Alpha is the opacity (0.0..1.0) of the polygon fill.
	Alpha     float64
	Edge      color.Color
	EdgeWidth float64
	Axis      color.Color
	AxisWidth float64
	// TickSize is the font size for tick labels, 0 disables labels.
	TickSize float64
	// LabelSize is the font size for the axis names.
	LabelSize float64
}

// DefaultStyle returns a blue, semi-transparent fill with a black edge.
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Fill:       color.RGBA{31, 119, 180, 255},
		Alpha:      0.6,
		Edge:       color.Black,
		EdgeWidth:  1,
		Axis:       color.Black,
		AxisWidth:  0.5,
		TickSize:   8,
		LabelSize:  10,
	}
}

// fillColor returns the fill color with the style's opacity applied.
func (s Style) fillColor() color.NRGBA {
	r, g, b, _ := s.Fill.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(255 * clamp(s.Alpha))),
	}
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

// Context holds parameters for rendering operations.
//
// If multiple drawings are rendered, they can share the same Context.
type Context struct {
	Viewport Viewport
	Style    Style
	// Title is written to PDF metadata and above the drawing.
	Title string
}

// NewContext sets up a new rendering context.
func NewContext(v Viewport, s Style) *Context {
	return &Context{
		Viewport: v,
		Style:    s,
		Title:    "2D affine transformations",
	}
}

// DefaultContext uses the default viewport and style.
func DefaultContext() *Context {
	return NewContext(DefaultViewport(), DefaultStyle())
}

// tick is one labelled mark on an axis, in world coordinates.
type tick struct {
	pos   float64
	label string
}

// ticks returns the integer positions between lo and hi, excluding 0.
func ticks(lo, hi float64) []tick {
	var t []tick
	for i := math.Ceil(lo); i <= math.Floor(hi); i++ {
		if i == 0 {
			continue
		}
		t = append(t, tick{pos: i, label: strconv.FormatFloat(i, 'f', -1, 64)})
	}
	return t
}
