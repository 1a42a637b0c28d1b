package shapeops

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// ParseSVGPath parses an SVG path data string into a Path. It supports the
// M, L, H, V, Q, T, C, S and Z commands and their relative counterparts.
// Arcs are not supported and return an error.
func ParseSVGPath(sPath string) (*Path, error) {
	path := []byte(sPath)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // previous control point for S/T

	i := 0
	valid := true
	num := func() float64 {
		i += skipCommaWhitespace(path[i:])
		f, n := strconv.ParseFloat(path[i:])
		if n == 0 {
			valid = false
		}
		i += n
		return f
	}
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if i == len(path) {
			break
		}
		cmd := prevCmd
		if path[i] >= 'A' {
			cmd = path[i]
			i++
		}
		pos := p.Pos()
		x, y := pos.X, pos.Y
		switch cmd {
		case 'M', 'm':
			a, b := num(), num()
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := num(), num()
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := num()
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := num()
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b := num(), num()
			c, d := num(), num()
			e, f := num(), num()
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d := num(), num()
			e, f := num(), num()
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b := num(), num()
			c, d := num(), num()
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := num(), num()
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			return nil, fmt.Errorf("bad path: arc command not supported at position %d", i)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		if !valid {
			return nil, fmt.Errorf("bad path: expected number at position %d", i)
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics on error.
func MustParseSVGPath(sPath string) *Path {
	p, err := ParseSVGPath(sPath)
	if err != nil {
		panic(err)
	}
	return p
}
