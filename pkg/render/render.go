package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/akeil/affinetool"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat looks up a format by name, e.g. "png" or ".PDF".
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	default:
		return PNG, affinetool.NewValidationError("unsupported format %q, choose one of 'png', 'pdf'", s)
	}
}

// FormatForPath determines the format from a file name.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Render writes p in the given format.
func (c *Context) Render(w io.Writer, f Format, p affinetool.Polygon) error {
	switch f {
	case PDF:
		return c.PDF(w, p)
	default:
		return c.PNG(w, p)
	}
}
