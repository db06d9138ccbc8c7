package ppm

import (
	"fmt"
	"math"
)

const magic = "P3"

// ImageInfo contains the header of a plain PPM file.
type ImageInfo struct {
	Width    int
	Height   int
	MaxVal   int
	Comments []string // header comments without the leading '#'
}

// readHeader consumes the magic number, dimensions and maxval.
func readHeader(s *scanner) (*ImageInfo, error) {
	s.keepComments = true
	defer func() { s.keepComments = false }()

	tok := s.next()
	if tok == nil {
		return nil, fmt.Errorf("%w: empty input", ErrBadMagic)
	}
	if string(tok) != magic {
		return nil, fmt.Errorf("%w: got %q, expected %q", ErrBadMagic, truncate(tok), magic)
	}

	var vals [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok := s.next()
		if tok == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrBadHeader, name)
		}
		v, ok := parseUint(tok, math.MaxUint32)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: invalid %s %q", ErrBadHeader, s.line, name, truncate(tok))
		}
		if v == 0 {
			return nil, fmt.Errorf("%w: %s must be positive", ErrBadHeader, name)
		}
		vals[i] = int(v)
	}

	return &ImageInfo{
		Width:    vals[0],
		Height:   vals[1],
		MaxVal:   vals[2],
		Comments: s.comments,
	}, nil
}

// Info reads PPM header metadata without decoding the pixel data.
func Info(data []byte) (*ImageInfo, error) {
	return readHeader(newScanner(data))
}

// truncate shortens a token for use in error messages.
func truncate(tok []byte) string {
	const limit = 16
	if len(tok) > limit {
		return string(tok[:limit]) + "..."
	}
	return string(tok)
}
