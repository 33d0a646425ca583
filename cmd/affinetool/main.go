package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/pkg/render"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

// settings are shared by all commands.
type settings struct {
	logLevel    string
	polygonPath string
	size        int
}

func main() {
	app := kingpin.New("affinetool", "2D affine transformations")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error)").
		Envar("AFFINETOOL_LOG_LEVEL").Default("warning").StringVar(&s.logLevel)
	app.Flag("polygon", "JSON file with the polygon, e.g. [[0,0],[1,0],[0,1],[0,0]]").
		Envar("AFFINETOOL_POLYGON").ExistingFileVar(&s.polygonPath)
	app.Flag("size", "Width of rendered images; height is 5/6 of it").
		Envar("AFFINETOOL_SIZE").Default("600").IntVar(&s.size)

	apply := app.Command("apply", "Print the vertices after applying an intent").Default()
	var (
		applyIntent = apply.Arg("intent", "One of rotate, scale-up, scale-down, reflect, translate, reset").Default("reset").String()
		applyFormat = apply.Flag("format", "Output format (text, json)").Short('f').Default("text").Enum("text", "json")
	)

	rnd := app.Command("render", "Render the polygon after applying an intent")
	var (
		renderName = rnd.Arg("intent", "Intent to apply").Required().String()
		renderOut  = rnd.Flag("output", "Output file (.png or .pdf)").Short('o').Required().String()
	)

	gallery := app.Command("gallery", "Render every intent to its own file")
	var (
		galleryDir    = gallery.Flag("output", "Output directory").Short('o').Default(".").String()
		galleryFormat = gallery.Flag("format", "Output format (png, pdf)").Short('f').Default("png").Enum("png", "pdf")
		gallerySheet  = gallery.Flag("sheet", "Also write a contact sheet with all intents").Bool()
	)

	repl := app.Command("repl", "Read intents from stdin, one per line")
	var (
		replOut = repl.Flag("output", "Re-render to this file (.png or .pdf) after each intent").Short('o').String()
	)

	serve := app.Command("serve", "Serve interactive sessions over HTTP and websockets")
	var (
		serveAddr = serve.Flag("addr", "Listen address").Envar("AFFINETOOL_ADDR").Default("localhost:8080").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	affinetool.SetLogLevel(s.logLevel)

	var err error
	switch command {
	case apply.FullCommand():
		err = doApply(s, *applyIntent, *applyFormat)
	case rnd.FullCommand():
		err = doRender(s, *renderName, *renderOut)
	case gallery.FullCommand():
		err = doGallery(s, *galleryDir, *galleryFormat, *gallerySheet)
	case repl.FullCommand():
		err = doRepl(s, os.Stdin, os.Stdout, *replOut)
	case serve.FullCommand():
		err = doServe(s, *serveAddr)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// common ---------------------------------------------------------------------

// loadPolygon reads the polygon from the configured file,
// or returns the canonical polygon.
func loadPolygon(s settings) (affinetool.Polygon, error) {
	if s.polygonPath == "" {
		return affinetool.Canonical(), nil
	}

	f, err := os.Open(s.polygonPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := affinetool.ReadPolygon(f)
	if err != nil {
		return nil, affinetool.Wrap(err, "invalid polygon in %q", s.polygonPath)
	}
	return p, nil
}

func renderContext(s settings) (*render.Context, error) {
	if s.size < 16 {
		return nil, affinetool.NewValidationError("size must be at least 16, got %d", s.size)
	}
	v := render.DefaultViewport()
	v.Width = float64(s.size)
	v.Height = float64(s.size * 5 / 6)
	return render.NewContext(v, render.DefaultStyle()), nil
}
