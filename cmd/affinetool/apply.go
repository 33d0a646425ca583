package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akeil/affinetool"
)

func doApply(s settings, name, format string) error {
	p, err := loadPolygon(s)
	if err != nil {
		return err
	}

	i, err := affinetool.ParseIntent(name)
	if err != nil {
		return err
	}

	hm := affinetool.Homogenize(p)
	return printVertices(os.Stdout, i.Apply(hm), format)
}

func printVertices(w io.Writer, p affinetool.Polygon, format string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(p)
	case "text":
		for _, v := range p {
			_, err := fmt.Fprintf(w, "%8s %8s\n", formatCoord(v.X), formatCoord(v.Y))
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format, choose one of 'text', 'json'")
	}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
