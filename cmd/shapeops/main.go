package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/inkform/shapeops"
)

type Main struct {
	Op     string   `short:"b" default:"union" desc:"Boolean operation: union, intersection, difference, subtract-front, subtract-back"`
	Output string   `short:"o" default:"" desc:"Output SVG file, writes to stdout when empty"`
	Minify bool     `short:"m" desc:"Minify the SVG output"`
	Paths  []string `index:"*" desc:"SVG path data of the operand shapes, front to back"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean operations on closed vector shapes")
	root.Parse()
	root.PrintHelp()
}

func parseOp(s string) (shapeops.Op, error) {
	switch strings.ToLower(s) {
	case "union":
		return shapeops.Union, nil
	case "intersection":
		return shapeops.Intersection, nil
	case "difference":
		return shapeops.Difference, nil
	case "subtract-front":
		return shapeops.SubtractFront, nil
	case "subtract-back":
		return shapeops.SubtractBack, nil
	}
	return 0, fmt.Errorf("unknown operation: %s", s)
}

func (cmd *Main) Run() error {
	if len(cmd.Paths) < 2 {
		return argp.ShowUsage
	}
	op, err := parseOp(cmd.Op)
	if err != nil {
		return err
	}

	shapes := make([]*shapeops.Shape, 0, len(cmd.Paths))
	for i, d := range cmd.Paths {
		p, err := shapeops.ParseSVGPath(d)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, shapeops.NewShape(p, shapeops.DefaultStyle))
	}

	result, err := shapeops.CompositeBoolean(op, shapes)
	if err != nil {
		return err
	}

	bounds := shapeops.Rect{}
	for i, s := range result {
		if i == 0 {
			bounds = s.Path.Bounds()
		} else {
			bounds = bounds.Add(s.Path.Bounds())
		}
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`,
		bounds.X0, bounds.Y0, bounds.X1-bounds.X0, bounds.Y1-bounds.Y0)
	for _, s := range result {
		s.WriteSVG(buf)
	}
	buf.WriteString(`</svg>`)

	out := buf.Bytes()
	if cmd.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", svg.Minify)
		out, err = m.Bytes("image/svg+xml", out)
		if err != nil {
			return err
		}
	}

	if cmd.Output == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(cmd.Output, out, 0644)
}
