package scanner

import "github.com/austincummings/mx/lang/token"

// scanNumber scans an INT or FLOAT literal starting at the current digit.
// It is split out from Scan into its own file: numeric literals have enough
// internal branching (the optional fractional part) to deserve it.
func (s *Scanner) scanNumber() (token.Token, string) {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}

	tok := token.INT
	if s.cur == '.' && isDigit(s.peek()) {
		tok = token.FLOAT
		s.advance() // consume '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}
	return tok, string(s.src[start:s.off])
}
