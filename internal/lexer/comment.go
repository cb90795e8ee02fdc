package lexer

import "github.com/soniclang/sonic/pkg/token"

// scanComment handles line and block comments. The leading "/" has already
// been consumed by the caller; pos is its position.
// ok is false when the second character disqualifies this as a comment
// entirely, in which case the cursor is restored to just after the leading
// "/" so the caller can retry as an operator run. A line comment ("//")
// ends at the next newline or at EOF. Once a block comment opener ("/*")
// is recognised, failing to close it before EOF is a terminal error, not a
// rejection.
func (s *Scanner) scanComment(pos token.Position) (tok token.Token, ok bool, err *Error) {
	afterSlash := s.cur.mark()
	start := afterSlash - 1 // include the leading "/" in content

	switch second := s.cur.next(); second {
	case '/':
		for {
			ch := s.cur.next()
			if ch == eof || isNewline(ch) {
				break
			}
		}
		return token.New(token.KindComment, s.text(start), pos), true, nil

	case '*':
		// "previous was asterisk" flag, initialised true: "/*/" terminates
		// the comment immediately because the opening "*" already counts.
		prevWasAsterisk := true
		for {
			ch := s.cur.next()
			if ch == eof {
				return token.Token{}, false, &Error{Kind: ErrUnterminatedComment, Pos: s.cur.position()}
			}
			if ch == '/' && prevWasAsterisk {
				break
			}
			prevWasAsterisk = ch == '*'
		}
		return token.New(token.KindComment, s.text(start), pos), true, nil

	default:
		if second != eof {
			s.cur.push(second)
		}
		s.cur.reset(afterSlash)
		return token.Token{}, false, nil
	}
}
