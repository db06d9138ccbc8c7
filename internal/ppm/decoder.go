package ppm

import (
	"errors"
	"fmt"
	"io"

	"github.com/davesmith10/ppmtool/internal/ir"
)

var (
	// ErrBadMagic is returned when the input does not start with "P3".
	ErrBadMagic = errors.New("not a plain PPM (P3) file")

	// ErrBadHeader is returned for a missing, malformed or zero width,
	// height or maxval, and for images larger than the decoder allows.
	ErrBadHeader = errors.New("invalid PPM header")

	// ErrBadPixelData is returned when the sample data is truncated,
	// contains a non-integer token or a value above maxval.
	ErrBadPixelData = errors.New("invalid PPM pixel data")
)

// DefaultMaxPixels bounds width*height when DecoderOptions.MaxPixels is 0.
const DefaultMaxPixels = 1 << 26

// DecoderOptions controls PPM decoding.
type DecoderOptions struct {
	// Lenient stops at the first malformed or missing sample instead of
	// failing, leaving the remaining pixels black. Samples above maxval
	// are clamped. Header errors are always fatal.
	Lenient bool

	// MaxPixels is the largest accepted width*height (0 = DefaultMaxPixels).
	MaxPixels int
}

// Decode decodes plain PPM data strictly.
func Decode(data []byte) (*ir.Raster, error) {
	return DecodeWithOptions(data, DecoderOptions{})
}

// DecodeWithOptions decodes plain PPM data into a raster normalized to 0-255.
func DecodeWithOptions(data []byte, opts DecoderOptions) (*ir.Raster, error) {
	s := newScanner(data)
	hdr, err := readHeader(s)
	if err != nil {
		return nil, err
	}

	limit := opts.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if uint64(hdr.Width)*uint64(hdr.Height) > uint64(limit) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrBadHeader, hdr.Width, hdr.Height, limit)
	}

	// Every sample takes at least one digit and one separator.
	n := hdr.Width * hdr.Height * 3
	if !opts.Lenient && s.remaining() < 2*n-1 {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d samples", ErrBadPixelData, s.remaining(), n)
	}

	r := ir.New(hdr.Width, hdr.Height)
	maxval := uint64(hdr.MaxVal)
	for i := 0; i < n; i++ {
		tok := s.next()
		if tok == nil {
			if opts.Lenient {
				break
			}
			return nil, fmt.Errorf("%w: expected %d samples, found %d", ErrBadPixelData, n, i)
		}
		v, ok := parseUint(tok, 1<<32)
		if !ok {
			if opts.Lenient {
				break
			}
			return nil, fmt.Errorf("%w: line %d: invalid sample %q", ErrBadPixelData, s.line, truncate(tok))
		}
		if v > maxval {
			if !opts.Lenient {
				return nil, fmt.Errorf("%w: line %d: sample %d exceeds maxval %d", ErrBadPixelData, s.line, v, maxval)
			}
			v = maxval
		}
		r.Pixels[i] = scale(v, maxval)
	}
	return r, nil
}

// Read decodes a plain PPM image from rd.
func Read(rd io.Reader, opts DecoderOptions) (*ir.Raster, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("reading PPM data: %w", err)
	}
	return DecodeWithOptions(data, opts)
}

// scale maps v in [0, maxval] to [0, 255], rounding half up.
func scale(v, maxval uint64) byte {
	if maxval == ir.MaxVal {
		return byte(v)
	}
	return byte((v*2*ir.MaxVal + maxval) / (2 * maxval))
}
