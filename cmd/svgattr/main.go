package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgdom"
	"github.com/tdewolff/svgdom/document"
)

type Dump struct {
	Width   float64 `short:"W" default:"800" desc:"Window width"`
	Height  float64 `short:"H" default:"600" desc:"Window height"`
	Verbose bool    `short:"v" desc:"Log lenient parsing"`
	Input   string  `index:"0" desc:"Input SVG file, or - for stdin"`
}

type Number struct {
	Verbose bool   `short:"v" desc:"Log lenient parsing"`
	Value   string `index:"0" desc:"Number or list of numbers"`
}

type Length struct {
	Width     float64 `short:"W" default:"100" desc:"Viewport width"`
	Height    float64 `short:"H" default:"100" desc:"Viewport height"`
	FontSize  float64 `default:"16" desc:"Font size for em and ex"`
	Direction string  `short:"d" default:"horizontal" desc:"Percentage direction: horizontal, vertical or diagonal"`
	Unit      string  `short:"u" desc:"Convert to unit"`
	Verbose   bool    `short:"v" desc:"Log lenient parsing"`
	Value     string  `index:"0" desc:"Length"`
}

type Transform struct {
	Verbose bool   `short:"v" desc:"Log lenient parsing"`
	Value   string `index:"0" desc:"Transform list"`
}

type Fit struct {
	ViewBox string `short:"b" desc:"ViewBox as x y width height"`
	Align   string `short:"a" default:"xMidYMid meet" desc:"PreserveAspectRatio"`
	Verbose bool   `short:"v" desc:"Log lenient parsing"`
	Rect    string `index:"0" desc:"Viewport as x y width height"`
}

func main() {
	root := argp.NewCmd(&Dump{}, "SVG attribute toolkit: dump resolved document geometry")
	root.AddCmd(&Number{}, "number", "Parse numbers")
	root.AddCmd(&Length{}, "length", "Resolve a length against a viewport")
	root.AddCmd(&Transform{}, "transform", "Parse and consolidate a transform list")
	root.AddCmd(&Fit{}, "fit", "Fit a viewBox into a viewport")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	svgdom.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cmd *Dump) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := document.Parse(r, document.Options{WindowWidth: cmd.Width, WindowHeight: cmd.Height})
	if err != nil {
		return err
	}

	depth := map[*document.Element]int{}
	doc.Walk(func(el *document.Element) bool {
		if el.Parent() != nil {
			depth[el] = depth[el.Parent()] + 1
		}
		indent := fmt.Sprintf("%*s", 2*depth[el], "")
		name := el.Tag
		if id, ok := el.GetAttribute("id"); ok {
			name += "#" + id
		}

		ctm, err := el.CTM()
		if err != nil {
			slog.Warn("bad geometry", "element", name, "error", err)
			fmt.Printf("%s%s\n", indent, name)
			return true
		}
		fmt.Printf("%s%s ctm=%v aff3=%v\n", indent, name, ctm, ctm.Aff3())
		switch el.Tag {
		case "svg":
			vp, err := el.Viewport()
			if err != nil {
				slog.Warn("bad viewport", "element", name, "error", err)
				return true
			}
			device, err := el.DeviceBox()
			if err != nil {
				slog.Warn("bad viewport", "element", name, "error", err)
				return true
			}
			fmt.Printf("%s  viewport=%v viewBox=%v preserveAspectRatio=%v device=%v\n", indent, vp, el.ViewportBox(), el.PreserveAspectRatio(), device)
		case "marker":
			orient, fixedAngle, err := el.Orient()
			if err != nil {
				slog.Warn("bad orient", "element", name, "error", err)
			} else if !fixedAngle {
				fmt.Printf("%s  orient=auto\n", indent)
			} else {
				fmt.Printf("%s  orient=%vdeg\n", indent, orient.Value())
			}
		}
		return true
	})
	return nil
}

func (cmd *Number) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Value == "" {
		return argp.ShowUsage
	}

	l, err := svgdom.ParseNumberList(nil, cmd.Value)
	if err != nil {
		return err
	}
	for _, n := range l.Items() {
		fmt.Printf("%v scientific=%v decimal=%v\n", n, n.Scientific, svgdom.ScientificToDecimal(fmt.Sprint(n.Value)))
	}
	return nil
}

type viewport struct {
	box svgdom.Rect
}

func (vp viewport) ViewportBox() svgdom.Rect {
	return vp.box
}

// element is a detached element with a fixed viewport and font size.
type element struct {
	viewport viewport
	fontSize float64
}

func (el *element) GetAttribute(string) (string, bool) {
	return "", false
}

func (el *element) SetAttribute(string, string) {}

func (el *element) HasAttribute(string) bool {
	return false
}

func (el *element) ViewportElement() svgdom.ViewportElement {
	return el.viewport
}

func (el *element) Window() svgdom.Window {
	return nil
}

func (el *element) Capabilities() svgdom.Capability {
	return 0
}

func (el *element) OnAttributeChange(func(name, value string)) {}

func (el *element) ComputedStyle(name string) (string, bool) {
	if name == "font-size" {
		return fmt.Sprint(el.fontSize), true
	}
	return "", false
}

func (cmd *Length) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Value == "" {
		return argp.ShowUsage
	}

	var direction svgdom.Direction
	switch cmd.Direction {
	case "horizontal", "h":
		direction = svgdom.Horizontal
	case "vertical", "v":
		direction = svgdom.Vertical
	case "diagonal", "d":
		direction = svgdom.Diagonal
	default:
		fmt.Println("ERROR: unknown direction", cmd.Direction)
		return argp.ShowUsage
	}

	el := &element{
		viewport: viewport{svgdom.Rect{Width: cmd.Width, Height: cmd.Height}},
		fontSize: cmd.FontSize,
	}
	l, err := svgdom.ParseLength(el, cmd.Value, direction)
	if err != nil {
		return err
	}
	if cmd.Unit != "" {
		tmp, err := svgdom.ParseLength(nil, "0"+cmd.Unit, direction)
		if err != nil {
			return err
		}
		if err := l.ConvertToSpecifiedUnits(tmp.UnitType()); err != nil {
			return err
		}
	}
	v, err := l.Value()
	if err != nil {
		return err
	}
	fmt.Printf("%s = %v user units\n", l.ValueAsString(), v)
	return nil
}

func (cmd *Transform) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Value == "" {
		return argp.ShowUsage
	}

	l, err := svgdom.ParseTransformList(nil, cmd.Value)
	if err != nil {
		return err
	}
	for _, t := range l.Items() {
		fmt.Printf("%v: %v\n", t.Kind, t.Matrix)
	}
	if t := l.Consolidate(); t != nil {
		tx, ty, rot, sx, sy := t.Matrix.Decompose()
		fmt.Printf("total: %v\n", t.Matrix)
		fmt.Printf("translate=(%g,%g) rotate=%g scale=(%g,%g)\n", tx, ty, rot, sx, sy)
	}
	return nil
}

func (cmd *Fit) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Rect == "" || cmd.ViewBox == "" {
		return argp.ShowUsage
	}

	viewBox, err := svgdom.ParseRect(cmd.ViewBox)
	if err != nil {
		return err
	}
	rect, err := svgdom.ParseRect(cmd.Rect)
	if err != nil {
		return err
	}
	par := svgdom.ParsePreserveAspectRatio(cmd.Align)
	tx, ty, sx, sy := par.FitToViewBox(viewBox, rect)
	fmt.Printf("preserveAspectRatio=%v translate=(%g,%g) scale=(%g,%g)\n", par, tx, ty, sx, sy)
	fmt.Println(par.ViewBoxTransform(viewBox, rect))
	return nil
}
