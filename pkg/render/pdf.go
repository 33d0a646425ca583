package render

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/internal/logging"
)

// PDF renders the polygon on the coordinate system to a single page PDF.
//
// The page has the size of the viewport in points.
// The resulting PDF document is written to the given writer.
func (c *Context) PDF(w io.Writer, p affinetool.Polygon) error {
	logging.Debug("Render PDF with %d vertices", len(p))
	pdf := c.setupPDF()

	pdf.AddPage()
	c.axesPDF(pdf)
	c.polygonPDF(pdf, p)

	return pdf.Output(w)
}

func (c *Context) setupPDF() *gofpdf.Fpdf {
	v := c.Viewport
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: v.Width, Ht: v.Height},
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("affinetool", true)
	if c.Title != "" {
		pdf.SetTitle(c.Title, true)
	}

	return pdf
}

func (c *Context) axesPDF(pdf *gofpdf.Fpdf) {
	v := c.Viewport
	s := c.Style
	m := v.Matrix()
	toDevice := func(x, y float64) (float64, float64) {
		pt := m.Apply(affinetool.Homogenize(affinetool.Polygon{{X: x, Y: y}}))[0]
		return pt.X, pt.Y
	}
	line := func(x0, y0, x1, y1 float64) {
		dx0, dy0 := toDevice(x0, y0)
		dx1, dy1 := toDevice(x1, y1)
		pdf.Line(dx0, dy0, dx1, dy1)
	}

	pdf.SetDrawColor(rgb(s.Axis))
	pdf.SetLineWidth(s.AxisWidth)
	line(v.XMin, 0, v.XMax, 0)
	line(0, v.YMin, 0, v.YMax)

	size := 4 / v.Scale()
	r, g, b := rgb(s.Axis)
	pdf.SetTextColor(r, g, b)

	if s.TickSize > 0 {
		pdf.SetFont("helvetica", "", s.TickSize)
	}
	for _, t := range ticks(v.XMin, v.XMax) {
		line(t.pos, -size, t.pos, size)
		if s.TickSize > 0 {
			x, y := toDevice(t.pos, -size)
			w := pdf.GetStringWidth(t.label)
			pdf.Text(x-w/2, y+s.TickSize, t.label)
		}
	}
	for _, t := range ticks(v.YMin, v.YMax) {
		line(-size, t.pos, size, t.pos)
		if s.TickSize > 0 {
			x, y := toDevice(-size, t.pos)
			w := pdf.GetStringWidth(t.label)
			pdf.Text(x-w-2, y+s.TickSize/3, t.label)
		}
	}

	if s.LabelSize > 0 {
		pdf.SetFont("helvetica", "", s.LabelSize)
		x, y := toDevice(v.XMax-0.1, 0.1)
		pdf.Text(x, y, "x")
		x, y = toDevice(0.1, v.YMax-0.1)
		pdf.Text(x, y+s.LabelSize, "y")
	}
}

func (c *Context) polygonPDF(pdf *gofpdf.Fpdf, p affinetool.Polygon) {
	if len(p) == 0 {
		return
	}
	s := c.Style
	pts := c.Viewport.ToDevice(p)

	points := make([]gofpdf.PointType, len(pts))
	for i, pt := range pts {
		points[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
	}

	pdf.SetFillColor(rgb(s.Fill))
	pdf.SetDrawColor(rgb(s.Edge))
	pdf.SetLineWidth(s.EdgeWidth)

	// fill with opacity, edge fully opaque
	pdf.SetAlpha(clamp(s.Alpha), "Normal")
	pdf.Polygon(points, "F")
	pdf.SetAlpha(1, "Normal")
	pdf.Polygon(points, "D")
}
