package lexer

import "github.com/soniclang/sonic/pkg/token"

// scanDotRun handles a leading ".". "." sits in the punctuation class, not
// the operator class, so it never reaches scanOperatorOrPunctuation's greedy
// run — but the builtin operator table includes the two ellipsis spellings
// "..." and "..<", both dot-led. The leading "." has already been consumed;
// pos is its position.
func (s *Scanner) scanDotRun(pos token.Position) token.Token {
	mark := s.cur.mark()
	if s.cur.next() == '.' {
		switch s.cur.next() {
		case '.':
			if op, ok := token.LookupOperator("..."); ok {
				return token.NewOperator(op, "...", pos)
			}
		case '<':
			if op, ok := token.LookupOperator("..<"); ok {
				return token.NewOperator(op, "..<", pos)
			}
		}
	}
	s.cur.reset(mark)
	return s.singlePunct(pos, '.')
}

// scanOperatorOrPunctuation greedily consumes a maximal run of
// operator-class characters from the current cursor position, then
// classifies the result. Callers always invoke this with the cursor
// positioned just before an operator-class character, so the run is never
// empty.
func (s *Scanner) scanOperatorOrPunctuation(pos token.Position) token.Token {
	start := s.cur.mark()
	for {
		ch := s.cur.next()
		if isOperatorChar(ch) {
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}
	text := s.text(start)

	switch text {
	case "&":
		return token.New(token.KindAmpersand, text, pos)
	case "!":
		return token.New(token.KindExclamation, text, pos)
	case "->", "=", "?":
		p, _ := token.LookupPunct(text)
		return token.NewPunct(p, text, pos)
	}
	if op, ok := token.LookupOperator(text); ok {
		return token.NewOperator(op, text, pos)
	}
	return token.New(token.KindCustomOperator, text, pos)
}
