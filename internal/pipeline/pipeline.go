package pipeline

import (
	"fmt"

	"github.com/davesmith10/ppmtool/internal/ppm"
	"github.com/davesmith10/ppmtool/internal/transform"
)

// Options controls the full decode → transform → encode pipeline.
type Options struct {
	Ops     []transform.Op     // applied left to right
	Decoder ppm.DecoderOptions // strict unless Decoder.Lenient is set
	Comment string             // header comment for the output, empty for none
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded plain PPM
	SrcWidth  int
	SrcHeight int
	SrcMaxVal int // maxval declared by the input header
}

// Run executes the full pipeline: decode → transforms → encode.
func Run(ppmData []byte, opts Options) (*Result, error) {
	// 1. Read the header separately to report the source depth
	info, err := ppm.Info(ppmData)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Decode to a normalized raster
	raster, err := ppm.DecodeWithOptions(ppmData, opts.Decoder)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 3. Transform
	out, err := transform.Apply(raster, opts.Ops...)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	// 4. Encode
	encoded, err := ppm.Encode(out, ppm.EncoderOptions{Comment: opts.Comment})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:      encoded,
		SrcWidth:  raster.Width,
		SrcHeight: raster.Height,
		SrcMaxVal: info.MaxVal,
	}, nil
}
