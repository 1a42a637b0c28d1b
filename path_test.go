package shapeops

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5.0, 2.0)
	test.That(t, p.Empty())

	p.LineTo(6.0, 2.0)
	test.That(t, !p.Empty())
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Closed())
	test.That(t, MustParseSVGPath("M5 0L5 10L10 10z").Closed())
	test.That(t, !MustParseSVGPath("M5 0L5 10L10 10zM5 10L6 10").Closed())
	test.That(t, !(&Path{}).Closed())
}

func TestPathCloseMaterializesLine(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1z")
	segs := p.Segments()
	test.T(t, len(segs), 3)
	test.T(t, segs[2], Line(Point{1.0, 1.0}, Point{0.0, 0.0}))

	// no closing line when the path already ends at its start
	p = MustParseSVGPath("M0 0L1 0L1 1L0 0z")
	test.T(t, len(p.Segments()), 3)
}

func TestPathEquals(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10z")))
	test.That(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestPathArea(t *testing.T) {
	var tts = []struct {
		p    string
		area float64
	}{
		{"M0 0L1 0L1 1L0 1z", 1.0},
		{"M0 0L0 1L1 1L1 0z", -1.0},
		{"M0 0L2 0L2 1L0 1z", 2.0},
		{"M0 0L1 0L1 1", 0.5}, // open, closed by chord
		{"M0 0L1 0L1 1L0 1zM2 0L3 0L3 1L2 1z", 2.0},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			test.Float(t, MustParseSVGPath(tt.p).Area(), tt.area)
		})
	}
}

func TestPathCCW(t *testing.T) {
	test.That(t, MustParseSVGPath("M0 0L1 0L1 1L0 1z").CCW())
	test.That(t, !MustParseSVGPath("M0 0L0 1L1 1L1 0z").CCW())
}

func TestPathReverse(t *testing.T) {
	var tts = []struct {
		p string
		r string
	}{
		{"M5 5L10 10", "M10 10L5 5"},
		{"M0 0L1 0L1 1L0 1z", "M0 0L0 1L1 1L1 0z"},
		{"M0 0Q1 0 1 1", "M1 1Q1 0 0 0"},
		{"M0 0C0 1 1 1 1 0", "M1 0C1 1 0 1 0 0"},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			p := MustParseSVGPath(tt.p)
			test.That(t, p.Reverse().Equals(MustParseSVGPath(tt.r)))
		})
	}
}

func TestPathReverseArea(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1L0 1z")
	test.Float(t, p.Reverse().Area(), -p.Area())
}

func TestPathBounds(t *testing.T) {
	test.T(t, MustParseSVGPath("M0 0L1 0L1 1L0 1z").Bounds(), Rect{0.0, 0.0, 1.0, 1.0})
	test.T(t, MustParseSVGPath("M0 0Q1 1 2 0z").Bounds(), Rect{0.0, 0.0, 2.0, 0.5})
	test.T(t, (&Path{}).Bounds(), Rect{})
}

func TestPathCopy(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1z")
	q := p.Copy()
	q.subs[0].Segs[0] = Line(Point{0.0, 0.0}, Point{5.0, 0.0})
	test.T(t, p.subs[0].Segs[0], Line(Point{0.0, 0.0}, Point{1.0, 0.0}))
}

func TestPathAppend(t *testing.T) {
	p := MustParseSVGPath("M0 0L1 0L1 1z").Append(MustParseSVGPath("M2 0L3 0L3 1z"))
	test.T(t, len(p.subs), 2)
	test.Float(t, p.Area(), 1.0)
}

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"M10 0L20 10", "M10 0L20 10"},
		{"m10 0l10 10", "M10 0L20 10"},
		{"M10 0H20V10", "M10 0L20 0L20 10"},
		{"M10 0h10v10", "M10 0L20 0L20 10"},
		{"M0 0Q10 0 10 10", "M0 0Q10 0 10 10"},
		{"M0 0q10 0 10 10", "M0 0Q10 0 10 10"},
		{"M0 0Q10 0 10 10T20 20", "M0 0Q10 0 10 10Q10 20 20 20"},
		{"M0 0C0 10 10 10 10 0", "M0 0C0 10 10 10 10 0"},
		{"M0 0c0 10 10 10 10 0", "M0 0C0 10 10 10 10 0"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"M10 0 20 10", "M10 0L20 10"}, // implicit lineto after moveto
		{"M0,0 L10,0,10,10", "M0 0L10 0L10 10"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.That(t, p.Equals(MustParseSVGPath(tt.res)))
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	_, err := ParseSVGPath("M0 0A5 5 0 0 0 10 0")
	test.That(t, err != nil)

	_, err = ParseSVGPath("X0 0")
	test.That(t, err != nil)

	// a byte that is neither a command nor a number must not stall the parser
	_, err = ParseSVGPath("M0 0L@1 2")
	test.That(t, err != nil)

	_, err = ParseSVGPath("M0 0L1")
	test.That(t, err != nil)
}

func TestPathToSVG(t *testing.T) {
	var tts = []string{
		"M10 0L20 10",
		"M0 0L10 0L10 10L0 10z",
		"M0 0Q10 0 10 10",
		"M0 0C0 10 10 10 10 0z",
		"M0 0L10 0L10 10zM20 0L30 0L30 10z",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			test.String(t, MustParseSVGPath(tt).ToSVG(), tt)
		})
	}
}
