package ppm

// scanner splits plain PPM data into whitespace separated tokens, dropping
// '#' comments up to the end of their line.
type scanner struct {
	data []byte
	pos  int
	line int

	keepComments bool
	comments     []string
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data, line: 1}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// next returns the next token, or nil at end of input.
func (s *scanner) next() []byte {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case c == '#':
			start := s.pos + 1
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
			if s.keepComments {
				s.comments = append(s.comments, trimComment(s.data[start:s.pos]))
			}
		case isSpace(c):
			if c == '\n' {
				s.line++
			}
			s.pos++
		default:
			start := s.pos
			for s.pos < len(s.data) && !isSpace(s.data[s.pos]) && s.data[s.pos] != '#' {
				s.pos++
			}
			return s.data[start:s.pos]
		}
	}
	return nil
}

// remaining is the number of unread bytes.
func (s *scanner) remaining() int {
	return len(s.data) - s.pos
}

func trimComment(b []byte) string {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return string(b)
}

// parseUint parses an unsigned decimal token no larger than limit.
func parseUint(tok []byte, limit uint64) (uint64, bool) {
	if len(tok) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > limit {
			return 0, false
		}
	}
	return v, true
}
