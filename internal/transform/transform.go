// Package transform implements pure pixel transforms over ir.Raster values.
// No function here modifies its input; each returns a newly allocated raster
// of the same size.
package transform

import (
	"fmt"
	"strings"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/davesmith10/ppmtool/internal/ir"
)

// Op names a transform.
type Op string

// Supported transforms.
const (
	OpFlip      Op = "flip"
	OpInvert    Op = "invert"
	OpGrayscale Op = "grayscale"
	OpPixelate  Op = "pixelate"
)

// Ops lists every supported transform.
var Ops = []Op{OpFlip, OpInvert, OpGrayscale, OpPixelate}

// ParseOp converts a transform name to an Op.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flip", "vflip":
		return OpFlip, nil
	case "invert", "negate":
		return OpInvert, nil
	case "grayscale", "greyscale", "grayify", "gray", "grey":
		return OpGrayscale, nil
	case "pixelate":
		return OpPixelate, nil
	default:
		return "", fmt.Errorf("unknown transform: %q (use flip, invert, grayscale, pixelate)", s)
	}
}

// Apply runs ops on r from left to right. The result is always a new
// raster, even when ops is empty.
func Apply(r *ir.Raster, ops ...Op) (*ir.Raster, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := r
	for _, op := range ops {
		switch op {
		case OpFlip:
			out = Flip(out)
		case OpInvert:
			out = Invert(out)
		case OpGrayscale:
			out = Grayify(out)
		case OpPixelate:
			out = Pixelate(out)
		default:
			return nil, fmt.Errorf("unknown transform: %q", op)
		}
	}
	if out == r {
		out = r.Clone()
	}
	return out, nil
}

// mapRows builds a new raster whose row y is filled by fn. fn must read
// only from the source raster, which lets rows be computed in parallel.
func mapRows(src *ir.Raster, fn func(dst []byte, y int)) *ir.Raster {
	dst := ir.New(src.Width, src.Height)
	parallel.Line(src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			fn(dst.Row(y), y)
		}
	})
	return dst
}

// Flip mirrors r vertically: output row y is input row Height-1-y.
func Flip(r *ir.Raster) *ir.Raster {
	return mapRows(r, func(dst []byte, y int) {
		copy(dst, r.Row(r.Height-1-y))
	})
}

// Invert replaces every channel value v with 255-v.
func Invert(r *ir.Raster) *ir.Raster {
	return mapRows(r, func(dst []byte, y int) {
		for i, v := range r.Row(y) {
			dst[i] = ir.MaxVal - v
		}
	})
}
