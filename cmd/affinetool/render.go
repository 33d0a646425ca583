package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/internal/fs"
	"github.com/akeil/affinetool/pkg/render"
	"github.com/akeil/affinetool/pkg/shell"
)

func doRender(s settings, name, out string) error {
	p, err := loadPolygon(s)
	if err != nil {
		return err
	}
	rc, err := renderContext(s)
	if err != nil {
		return err
	}
	i, err := affinetool.ParseIntent(name)
	if err != nil {
		return err
	}

	_, err = renderIntent(rc, p, i, out)
	if err != nil {
		fmt.Printf("%v Failed to render %v: %v\n", crossmark, i, err)
		return err
	}

	fmt.Printf("%v %v saved as %q.\n", checkmark, i, out)
	return nil
}

// renderIntent runs a fresh session for the intent and writes the result
// to out. Returns the rendered image.
func renderIntent(rc *render.Context, p affinetool.Polygon, i affinetool.Intent, out string) (image.Image, error) {
	target := render.NewImageTarget(rc, "")
	sess, err := shell.NewSession(p, target)
	if err != nil {
		return nil, err
	}

	// the file is written once, for the final state only
	target.Path = out
	err = sess.Handle(i)
	if err != nil {
		return nil, err
	}

	return target.Image(), nil
}

func doGallery(s settings, outDir, format string, sheet bool) error {
	p, err := loadPolygon(s)
	if err != nil {
		return err
	}
	rc, err := renderContext(s)
	if err != nil {
		return err
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	intents := affinetool.Intents()
	images := make([]image.Image, len(intents))
	var mx sync.Mutex

	var group errgroup.Group
	for idx, i := range intents {
		idx, i := idx, i
		group.Go(func() error {
			path := filepath.Join(outDir, i.String()+f.Ext())
			fmt.Printf("%v render %v\n", ellipsis, i)
			img, err := renderIntent(rc, p, i, path)
			if err != nil {
				fmt.Printf("%v Failed to render %v: %v\n", crossmark, i, err)
				return err
			}

			mx.Lock()
			images[idx] = img
			mx.Unlock()

			fmt.Printf("%v %v saved as %q.\n", checkmark, i, path)
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	if !sheet {
		return nil
	}

	path := filepath.Join(outDir, "sheet.png")
	err = fs.WriteFile(path, func(w io.Writer) error {
		return png.Encode(w, render.Sheet(images, 3, 200))
	})
	if err != nil {
		return err
	}
	fmt.Printf("%v contact sheet saved as %q.\n", checkmark, path)
	return nil
}
