package transform

import (
	"math/rand/v2"
	"testing"

	"github.com/anthonynsimon/bild/effect"
	bildtransform "github.com/anthonynsimon/bild/transform"
	"github.com/davesmith10/ppmtool/internal/ir"
	"github.com/google/go-cmp/cmp"
)

func randomRaster(rng *rand.Rand, w, h int) *ir.Raster {
	r := ir.New(w, h)
	for i := range r.Pixels {
		r.Pixels[i] = byte(rng.IntN(256))
	}
	return r
}

// rasterFrom builds a raster from rows of RGB triples.
func rasterFrom(rows [][][3]uint8) *ir.Raster {
	r := ir.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, p := range row {
			r.Set(x, y, p[0], p[1], p[2])
		}
	}
	return r
}

var testSizes = [][2]int{{1, 1}, {1, 6}, {6, 1}, {4, 4}, {5, 5}, {17, 11}, {64, 48}}

func TestInvertKnownPixels(t *testing.T) {
	tests := []struct{ in, want [3]uint8 }{
		{[3]uint8{255, 255, 255}, [3]uint8{0, 0, 0}},
		{[3]uint8{0, 0, 0}, [3]uint8{255, 255, 255}},
		{[3]uint8{255, 110, 63}, [3]uint8{0, 145, 192}},
		{[3]uint8{0, 145, 192}, [3]uint8{255, 110, 63}},
	}
	for _, tt := range tests {
		r := ir.New(1, 1)
		r.Set(0, 0, tt.in[0], tt.in[1], tt.in[2])
		got := Invert(r)
		red, green, blue := got.At(0, 0)
		if [3]uint8{red, green, blue} != tt.want {
			t.Errorf("Invert(%v) = %d,%d,%d, want %v", tt.in, red, green, blue, tt.want)
		}
	}
}

func TestGrayifyKnownPixels(t *testing.T) {
	tests := []struct {
		in   [3]uint8
		want uint8
	}{
		{[3]uint8{0, 255, 255}, 178},
		{[3]uint8{255, 0, 255}, 105},
		{[3]uint8{255, 255, 0}, 225},
		{[3]uint8{21, 11, 11}, 13},
		{[3]uint8{255, 255, 255}, 255},
		{[3]uint8{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		r := ir.New(1, 1)
		r.Set(0, 0, tt.in[0], tt.in[1], tt.in[2])
		red, green, blue := Grayify(r).At(0, 0)
		if red != tt.want || green != tt.want || blue != tt.want {
			t.Errorf("Grayify(%v) = %d,%d,%d, want %d", tt.in, red, green, blue, tt.want)
		}
	}
}

func TestGrayLevelsAreFixedPoints(t *testing.T) {
	for v := 0; v < 256; v++ {
		g := uint8(v)
		if got := Intensity(g, g, g); got != g {
			t.Errorf("Intensity(%d,%d,%d) = %d", g, g, g, got)
		}
	}
}

func TestInvolutions(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, sz := range testSizes {
		r := randomRaster(rng, sz[0], sz[1])
		if diff := cmp.Diff(r, Invert(Invert(r))); diff != "" {
			t.Errorf("%dx%d invert twice (-want +got):\n%s", sz[0], sz[1], diff)
		}
		if diff := cmp.Diff(r, Flip(Flip(r))); diff != "" {
			t.Errorf("%dx%d flip twice (-want +got):\n%s", sz[0], sz[1], diff)
		}
	}
}

func TestGrayifyIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, sz := range testSizes {
		once := Grayify(randomRaster(rng, sz[0], sz[1]))
		if diff := cmp.Diff(once, Grayify(once)); diff != "" {
			t.Errorf("%dx%d grayify twice (-want +got):\n%s", sz[0], sz[1], diff)
		}
		for i := 0; i < len(once.Pixels); i += 3 {
			if once.Pixels[i] != once.Pixels[i+1] || once.Pixels[i] != once.Pixels[i+2] {
				t.Fatalf("%dx%d pixel %d is not gray: %v", sz[0], sz[1], i/3, once.Pixels[i:i+3])
			}
		}
	}
}

func TestFlipRows(t *testing.T) {
	in := rasterFrom([][][3]uint8{
		{{1, 1, 1}, {2, 2, 2}},
		{{3, 3, 3}, {4, 4, 4}},
		{{5, 5, 5}, {6, 6, 6}},
	})
	want := rasterFrom([][][3]uint8{
		{{5, 5, 5}, {6, 6, 6}},
		{{3, 3, 3}, {4, 4, 4}},
		{{1, 1, 1}, {2, 2, 2}},
	})
	if diff := cmp.Diff(want, Flip(in)); diff != "" {
		t.Errorf("Flip mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchesBild(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for _, sz := range testSizes {
		r := randomRaster(rng, sz[0], sz[1])
		img := r.Image()

		if diff := cmp.Diff(effect.Invert(img).Pix, Invert(r).Image().Pix); diff != "" {
			t.Errorf("%dx%d Invert differs from bild (-bild +ours):\n%s", sz[0], sz[1], diff)
		}
		if diff := cmp.Diff(bildtransform.FlipV(img).Pix, Flip(r).Image().Pix); diff != "" {
			t.Errorf("%dx%d Flip differs from bild (-bild +ours):\n%s", sz[0], sz[1], diff)
		}
	}
}

func TestPixelateSingleBlock(t *testing.T) {
	z := [3]uint8{0, 0, 0}
	f := [3]uint8{5, 5, 5}
	c := [3]uint8{1, 2, 3}
	in := rasterFrom([][][3]uint8{
		{z, z, z, z, z},
		{z, f, f, f, z},
		{z, f, c, f, z},
		{z, f, f, f, z},
		{z, z, z, z, z},
	})
	got := Pixelate(in)
	for i := 0; i < len(got.Pixels); i += 3 {
		if got.Pixels[i] != 1 || got.Pixels[i+1] != 2 || got.Pixels[i+2] != 3 {
			t.Fatalf("pixel %d = %v, want [1 2 3]", i/3, got.Pixels[i:i+3])
		}
	}
}

func TestPixelateSmallRasterUnchanged(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for _, sz := range [][2]int{{1, 1}, {4, 4}, {4, 20}, {20, 4}, {3, 3}} {
		r := randomRaster(rng, sz[0], sz[1])
		if diff := cmp.Diff(r, Pixelate(r)); diff != "" {
			t.Errorf("%dx%d raster changed (-want +got):\n%s", sz[0], sz[1], diff)
		}
	}
}

func TestPixelatePartialBorder(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	r := randomRaster(rng, 13, 8)
	got := Pixelate(r)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			wantR, wantG, wantB := r.At(x, y)
			if x < 10 && y < 5 {
				wantR, wantG, wantB = r.At(x/5*5+2, 2)
			}
			gotR, gotG, gotB := got.At(x, y)
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Errorf("(%d,%d) = %d,%d,%d, want %d,%d,%d", x, y, gotR, gotG, gotB, wantR, wantG, wantB)
			}
		}
	}
}

func TestPixelateBlockSizes(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 18))
	r := randomRaster(rng, 6, 6)

	if diff := cmp.Diff(r, PixelateBlock(r, 1)); diff != "" {
		t.Errorf("block size 1 changed raster (-want +got):\n%s", diff)
	}

	got := PixelateBlock(r, 3)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			wantR, wantG, wantB := r.At(x/3*3+1, y/3*3+1)
			gotR, gotG, gotB := got.At(x, y)
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Errorf("(%d,%d) = %d,%d,%d, want %d,%d,%d", x, y, gotR, gotG, gotB, wantR, wantG, wantB)
			}
		}
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 20))
	r := randomRaster(rng, 12, 12)
	orig := r.Clone()

	for _, fn := range []func(*ir.Raster) *ir.Raster{Flip, Invert, Grayify, Pixelate} {
		out := fn(r)
		if &out.Pixels[0] == &r.Pixels[0] {
			t.Error("transform returned a raster sharing the input buffer")
		}
		if diff := cmp.Diff(orig, r); diff != "" {
			t.Fatalf("input mutated (-want +got):\n%s", diff)
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := map[string]Op{
		"flip":      OpFlip,
		"Invert":    OpInvert,
		"grayify":   OpGrayscale,
		"greyscale": OpGrayscale,
		" pixelate": OpPixelate,
	}
	for in, want := range tests {
		got, err := ParseOp(in)
		if err != nil {
			t.Errorf("ParseOp(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseOp(%q) = %q, want %q", in, got, want)
		}
	}
	for _, op := range Ops {
		if got, err := ParseOp(string(op)); err != nil || got != op {
			t.Errorf("ParseOp(%q) = %q, %v", op, got, err)
		}
	}
	if _, err := ParseOp("rotate"); err == nil {
		t.Error("expected error for unknown transform")
	}
}

func TestApply(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	r := randomRaster(rng, 10, 7)

	got, err := Apply(r, OpInvert, OpFlip, OpGrayscale)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := Grayify(Flip(Invert(r)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply order mismatch (-want +got):\n%s", diff)
	}

	same, err := Apply(r)
	if err != nil {
		t.Fatalf("Apply without ops: %v", err)
	}
	if same == r {
		t.Error("Apply without ops returned the input raster")
	}
	if diff := cmp.Diff(r, same); diff != "" {
		t.Errorf("Apply without ops changed pixels (-want +got):\n%s", diff)
	}

	if _, err := Apply(r, Op("rotate")); err == nil {
		t.Error("expected error for unknown op")
	}
	if _, err := Apply(&ir.Raster{Width: 1, Height: 1, MaxVal: 255}, OpFlip); err == nil {
		t.Error("expected error for invalid raster")
	}
}
