package shapeops

import (
	"encoding/hex"
	"image/color"
	"io"
	"strconv"
)

// Common fill colors, from https://www.w3.org/TR/css-color-4/#color-keywords.
var (
	Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}
	Black       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Red         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Lime        = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Blue        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Steelblue   = color.RGBA{0x46, 0x82, 0xb4, 0xff}
	Orangered   = color.RGBA{0xff, 0x45, 0x00, 0xff}
)

// Style holds the visual properties of a shape. The result of a boolean operation
// carries over the style of one of its operands.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

// DefaultStyle is a black fill without stroke.
var DefaultStyle = Style{Fill: Black, Stroke: Transparent, StrokeWidth: 1.0}

// Shape is a closed path with a style.
type Shape struct {
	Path  *Path
	Style Style
}

// NewShape returns a shape over path with the given style. The path's subpaths are
// closed if they are not already.
func NewShape(p *Path, style Style) *Shape {
	p.CloseAll()
	return &Shape{Path: p, Style: style}
}

// Copy returns a deep copy of the shape.
func (s *Shape) Copy() *Shape {
	return &Shape{Path: s.Path.Copy(), Style: s.Style}
}

// Area returns the signed area of the shape's path.
func (s *Shape) Area() float64 {
	return s.Path.Area()
}

func writeCSSColor(w io.Writer, c color.Color) {
	r, g, b, a := c.RGBA()
	rgba := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if rgba[3] == 0xff {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], rgba[:3])
		w.Write(buf)
	} else {
		buf := make([]byte, 0, 24)
		buf = append(buf, []byte("rgba(")...)
		buf = strconv.AppendInt(buf, int64(rgba[0]), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(rgba[1]), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(rgba[2]), 10)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, float64(rgba[3])/0xff, 'g', 4, 64)
		buf = append(buf, ')')
		w.Write(buf)
	}
}

// WriteSVG writes the shape as an SVG path element.
func (s *Shape) WriteSVG(w io.Writer) {
	w.Write([]byte("<path d=\""))
	w.Write([]byte(s.Path.ToSVG()))
	w.Write([]byte("\" fill=\""))
	writeCSSColor(w, s.Style.Fill)
	if s.Style.Stroke != Transparent {
		w.Write([]byte("\" stroke=\""))
		writeCSSColor(w, s.Style.Stroke)
		w.Write([]byte("\" stroke-width=\""))
		w.Write(strconv.AppendFloat(nil, s.Style.StrokeWidth, 'g', 4, 64))
	}
	w.Write([]byte("\"/>"))
}
