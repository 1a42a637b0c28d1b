package main

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/inkform/shapeops"
)

func TestParseOp(t *testing.T) {
	op, err := parseOp("union")
	test.Error(t, err)
	test.T(t, op, shapeops.Union)

	op, err = parseOp("Subtract-Back")
	test.Error(t, err)
	test.T(t, op, shapeops.SubtractBack)

	_, err = parseOp("xor")
	test.That(t, err != nil)
}

func TestRunSVGOutput(t *testing.T) {
	tmp := t.TempDir() + "/out.svg"
	cmd := &Main{
		Op:     "intersection",
		Output: tmp,
		Paths:  []string{"M0 0L1 0L1 1L0 1z", "M0.5 0.5L1.5 0.5L1.5 1.5L0.5 1.5z"},
	}
	test.Error(t, cmd.Run())
}
