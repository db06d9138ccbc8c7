package ppm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davesmith10/ppmtool/internal/ir"
)

// EncoderOptions controls plain PPM encoding.
type EncoderOptions struct {
	// Comment is written as a single "# " line after the magic number.
	// Empty omits the line. Newlines are replaced by spaces.
	Comment string
}

// Encode serializes a raster as plain PPM with maxval 255.
func Encode(r *ir.Raster, opts EncoderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if r != nil {
		// "255 255 255\n" is the widest pixel line.
		buf.Grow(32 + len(opts.Comment) + r.Width*r.Height*12)
	}
	if err := Write(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes a raster as plain PPM to w, one pixel per line.
func Write(w io.Writer, r *ir.Raster, opts EncoderOptions) error {
	if err := r.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(magic + "\n")
	if opts.Comment != "" {
		comment := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(opts.Comment)
		fmt.Fprintf(bw, "# %s\n", comment)
	}
	fmt.Fprintf(bw, "%d %d\n%d\n", r.Width, r.Height, ir.MaxVal)

	line := make([]byte, 0, 12)
	for i := 0; i < len(r.Pixels); i += 3 {
		line = strconv.AppendUint(line[:0], uint64(r.Pixels[i]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(r.Pixels[i+1]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(r.Pixels[i+2]), 10)
		line = append(line, '\n')
		bw.Write(line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing PPM data: %w", err)
	}
	return nil
}
