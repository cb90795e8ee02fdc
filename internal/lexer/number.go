package lexer

import "github.com/soniclang/sonic/pkg/token"

// scanUnsignedNumber is reached once the current character is already known
// to be a decimal digit, so a numeric literal must be produced or the scan
// fails with FailedParsingNumeric. In practice
// scanNumberBody cannot reject when a decimal digit is already present
// (radix literals fall back to decimal-or-float, which is infallible), so
// this error path exists for the closed error set's completeness rather
// than a reachable case.
func (s *Scanner) scanUnsignedNumber(pos token.Position) (token.Token, *Error) {
	tok, ok := s.scanNumberBody(pos, "")
	if !ok {
		return token.Token{}, &Error{Kind: ErrFailedParsingNumeric, Pos: pos}
	}
	return tok, nil
}

// scanSignedNumber handles a leading "-" in front of a numeric literal body:
// on success the "-" is prepended to content and the recursed kind is
// preserved; on rejection the cursor is restored to just after the "-" so
// root dispatch can retry it as an operator.
func (s *Scanner) scanSignedNumber(pos token.Position) (token.Token, bool) {
	afterSign := s.cur.mark()
	tok, ok := s.scanNumberBody(pos, "-")
	if !ok {
		s.cur.reset(afterSign)
		return token.Token{}, false
	}
	return tok, true
}

// scanNumberBody consumes one unsigned numeric literal body: binary/hex are
// tried first (only possible when the body starts with "0"), falling back
// to decimal-or-float. sign is prepended to content verbatim; it is "-" for
// the numeric-after-minus recursion and "" otherwise.
func (s *Scanner) scanNumberBody(pos token.Position, sign string) (token.Token, bool) {
	start := s.cur.mark()
	first := s.cur.next()
	if !isDecimalDigit(first) {
		s.cur.reset(start)
		return token.Token{}, false
	}

	if first == '0' {
		if tok, ok := s.scanRadixLiteral(pos, sign, start); ok {
			return tok, true
		}
		s.cur.reset(start)
		s.cur.next() // re-consume the leading "0" before falling through
	}

	return s.scanDecimalOrFloat(pos, sign, start), true
}

// scanRadixLiteral scans a binary or hex literal body. The leading "0" has
// already been consumed; start marks its position so the eventual content
// includes it.
func (s *Scanner) scanRadixLiteral(pos token.Position, sign string, start int) (token.Token, bool) {
	var kind token.Kind
	var isDigit, isLiteralChar func(rune) bool
	switch s.cur.next() {
	case 'b':
		kind, isDigit, isLiteralChar = token.KindBinaryLiteral, isBinaryDigit, isBinaryLiteralChar
	case 'x':
		kind, isDigit, isLiteralChar = token.KindHexadecimalLiteral, isHexDigit, isHexLiteralChar
	default:
		return token.Token{}, false
	}

	if !isDigit(s.cur.next()) {
		return token.Token{}, false
	}
	for {
		ch := s.cur.next()
		if isLiteralChar(ch) {
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}
	return token.New(kind, sign+s.text(start), pos), true
}

// scanDecimalOrFloat scans a decimal literal body, handing off to the float
// state machine on a trailing ".". The leading decimal digit has already
// been consumed; start marks its position. It is infallible: decimal digits
// are greedily consumed, and anything else yields a DecimalLiteral.
func (s *Scanner) scanDecimalOrFloat(pos token.Position, sign string, start int) token.Token {
	for {
		ch := s.cur.next()
		if isDecimalLiteralChar(ch) {
			continue
		}
		if ch != eof {
			s.cur.push(ch)
		}
		break
	}

	if s.cur.peek() == '.' {
		s.cur.next() // consume the "."
		return s.scanFloat(pos, sign, start)
	}
	return token.New(token.KindDecimalLiteral, sign+s.text(start), pos)
}

// float scanner states.
const (
	floatDigitAfterDot = iota
	floatFractionBody
	floatAfterExponentMarker
	floatAfterExponentSign
	floatExponentBody
)

// scanFloat runs the 5-state float machine. It is infallible: on any
// unexpected character it terminates and emits FloatLiteral with whatever
// has been consumed so far, even degenerate forms like "0.".
func (s *Scanner) scanFloat(pos token.Position, sign string, start int) token.Token {
	state := floatDigitAfterDot
loop:
	for {
		ch := s.cur.next()
		switch state {
		case floatDigitAfterDot:
			if isDecimalDigit(ch) {
				state = floatFractionBody
				continue
			}
			s.pushIfNotEOF(ch)
			break loop

		case floatFractionBody:
			if ch == '_' || isDecimalDigit(ch) {
				continue
			}
			if ch == 'e' || ch == 'E' {
				state = floatAfterExponentMarker
				continue
			}
			s.pushIfNotEOF(ch)
			break loop

		case floatAfterExponentMarker:
			if ch == '+' || ch == '-' {
				state = floatAfterExponentSign
				continue
			}
			if isDecimalDigit(ch) {
				state = floatExponentBody
				continue
			}
			s.pushIfNotEOF(ch)
			break loop

		case floatAfterExponentSign:
			if isDecimalDigit(ch) {
				state = floatExponentBody
				continue
			}
			s.pushIfNotEOF(ch)
			break loop

		case floatExponentBody:
			if ch == '_' || isDecimalDigit(ch) {
				continue
			}
			s.pushIfNotEOF(ch)
			break loop
		}
	}
	return token.New(token.KindFloatLiteral, sign+s.text(start), pos)
}

// pushIfNotEOF un-consumes ch unless it is the eof sentinel, which carries
// no cursor position to restore.
func (s *Scanner) pushIfNotEOF(ch rune) {
	if ch != eof {
		s.cur.push(ch)
	}
}
