package lexer

import "github.com/soniclang/sonic/pkg/token"

// string scanner states.
const (
	strBody = iota
	strAfterBackslash
	strAfterBackslashU
	strInsideUnicodeBraceEmpty
	strInsideUnicodeBraceDigits
	strAfterInterpolationOpen
	strInsideInterpolationIdent
)

// scanString implements the 7-state string-literal machine. The opening
// quote has already been consumed by root dispatch; pos is its position.
func (s *Scanner) scanString(pos token.Position) (token.Token, bool, *Error) {
	start := s.cur.mark() - 1 // include the opening quote in content
	interpolated := false
	state := strBody

	for {
		ch := s.cur.next()
		if ch == eof {
			return token.Token{}, false, &Error{Kind: ErrUnterminatedString, Pos: s.cur.position()}
		}

		switch state {
		case strBody:
			switch {
			case ch == '"':
				kind := token.KindStaticString
				if interpolated {
					kind = token.KindInterpolatedString
				}
				return token.New(kind, s.text(start), pos), false, nil
			case ch == '\\':
				state = strAfterBackslash
			case isNewline(ch):
				return token.Token{}, false, &Error{Kind: ErrNewlineWithinString, Pos: s.cur.position() - 1}
			}

		case strAfterBackslash:
			switch ch {
			case '0', '\\', 't', 'n', 'r', '"', '\'':
				state = strBody
			case 'u':
				state = strAfterBackslashU
			case '(':
				state = strAfterInterpolationOpen
			default:
				return token.Token{}, false, &Error{Kind: ErrUnexpectedStringEscape, Pos: s.cur.position() - 1}
			}

		case strAfterBackslashU:
			if ch == '{' {
				state = strInsideUnicodeBraceEmpty
			} else {
				return token.Token{}, false, &Error{Kind: ErrEscapedUnicodeMissingOpeningBrace, Pos: s.cur.position() - 1}
			}

		case strInsideUnicodeBraceEmpty:
			if isHexDigit(ch) {
				state = strInsideUnicodeBraceDigits
			} else {
				return token.Token{}, false, &Error{Kind: ErrEscapedUnicodeMissingHexValue, Pos: s.cur.position() - 1}
			}

		case strInsideUnicodeBraceDigits:
			switch {
			case isHexDigit(ch):
				// stay
			case ch == '}':
				state = strBody
			default:
				return token.Token{}, false, &Error{Kind: ErrEscapedUnicodeMissingHexValueOrBrace, Pos: s.cur.position() - 1}
			}

		case strAfterInterpolationOpen:
			if isIdentifierHead(ch) {
				state = strInsideInterpolationIdent
			} else {
				return token.Token{}, false, &Error{Kind: ErrExpectedIdentifierInStringInterpolation, Pos: s.cur.position() - 1}
			}

		case strInsideInterpolationIdent:
			switch {
			case isIdentifierBody(ch):
				// stay
			case ch == ')':
				interpolated = true
				state = strBody
			default:
				return token.Token{}, false, &Error{Kind: ErrExpectedIdentifierOrClosingBraceInStringInterpolation, Pos: s.cur.position() - 1}
			}
		}
	}
}
