package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// separate file because  we want to import x/image/draw
// instead of image/draw.

func resize(i image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(r)
	s := draw.BiLinear
	s.Scale(dst, r, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Sheet arranges scaled down copies of the given images in a grid
// with the given number of columns.
//
// Each cell is width pixels wide; the cell height keeps the aspect ratio
// of the first image.
func Sheet(images []image.Image, cols, width int) *image.RGBA {
	if len(images) == 0 || cols < 1 || width < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	b := images[0].Bounds()
	height := width * b.Dy() / b.Dx()
	rows := (len(images) + cols - 1) / cols

	dst := image.NewRGBA(image.Rect(0, 0, cols*width, rows*height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, img := range images {
		x := (i % cols) * width
		y := (i / cols) * height
		cell := image.Rect(x, y, x+width, y+height)
		scaled := resize(img, image.Rect(0, 0, width, height))
		draw.Draw(dst, cell, scaled, image.Point{}, draw.Over)
	}

	return dst
}
