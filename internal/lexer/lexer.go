// Package lexer implements the Sonic lexical analyzer: character
// classification (classify.go) and token scanning (this file and its
// sub-scanners). A scan is a single synchronous pass over a fully resident
// source string; the Scanner holds no state across scans.
package lexer

import (
	"github.com/soniclang/sonic/pkg/token"
)

// Scanner is a one-shot token scanner over a single source string. Build a
// fresh Scanner (via New) for every scan.
type Scanner struct {
	cur     *cursor
	tracing bool
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithTracing sets the Scanner's tracing flag. No scanner path reads the
// flag, so it has no effect on a scan and produces no trace output.
func WithTracing(trace bool) Option {
	return func(s *Scanner) { s.tracing = trace }
}

// New creates a Scanner over source.
func New(source string, opts ...Option) *Scanner {
	s := &Scanner{cur: newCursor(source)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lex runs source through a freshly constructed Scanner to completion: it
// returns every token produced, in order, or the first lexical error
// encountered. A failed scan never returns a partial token sequence.
func Lex(source string, opts ...Option) ([]token.Token, error) {
	return New(source, opts...).Lex()
}

// Lex runs this Scanner to completion. Call it at most once per Scanner.
func (s *Scanner) Lex() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, atEOF, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		if atEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// scanToken performs the root dispatch for exactly one token. atEOF is true
// once the cursor is exhausted and there is nothing left to tokenize.
func (s *Scanner) scanToken() (tok token.Token, atEOF bool, err *Error) {
	pos := s.cur.position()
	ch := s.cur.next()

	switch {
	case ch == eof:
		return token.Token{}, true, nil

	case isWhitespace(ch):
		s.cur.push(ch)
		return s.scanWhitespace(pos), false, nil

	case ch == '/':
		if tok, ok, cerr := s.scanComment(pos); cerr != nil {
			return token.Token{}, false, cerr
		} else if ok {
			return tok, false, nil
		}
		// Not a comment after all: "/" is the head of an operator or
		// punctuation run instead.
		s.cur.push(ch)
		return s.scanOperatorOrPunctuation(pos), false, nil

	case isIdentifierHead(ch):
		s.cur.push(ch)
		return s.scanIdentifierOrKeyword(pos), false, nil

	case ch == '$':
		return s.scanDollar(pos)

	case ch == '-':
		if tok, ok := s.scanSignedNumber(pos); ok {
			return tok, false, nil
		}
		s.cur.push(ch)
		return s.scanOperatorOrPunctuation(pos), false, nil

	case isDecimalDigit(ch):
		s.cur.push(ch)
		lit, numErr := s.scanUnsignedNumber(pos)
		if numErr != nil {
			return token.Token{}, false, numErr
		}
		return lit, false, nil

	case ch == '"':
		return s.scanString(pos)

	case isOperatorChar(ch):
		s.cur.push(ch)
		return s.scanOperatorOrPunctuation(pos), false, nil

	case ch == '.':
		return s.scanDotRun(pos), false, nil

	case isPunctuationChar(ch):
		return s.singlePunct(pos, ch), false, nil

	default:
		return token.Token{}, false, &Error{Kind: ErrUnrecognisedCharacter, Pos: pos}
	}
}

// scanWhitespace extends greedily over a maximal run of whitespace
// characters. It always succeeds.
func (s *Scanner) scanWhitespace(pos token.Position) token.Token {
	start := s.cur.mark()
	for {
		ch := s.cur.next()
		if isWhitespace(ch) {
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}
	return token.New(token.KindWhitespace, s.text(start), pos)
}

// scanIdentifierOrKeyword extends greedily over identifier-body characters
// and resolves the result against the reserved-word table.
func (s *Scanner) scanIdentifierOrKeyword(pos token.Position) token.Token {
	start := s.cur.mark()
	s.cur.next() // the identifier head, already classified by the caller
	for {
		ch := s.cur.next()
		if isIdentifierBody(ch) {
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}

	text := s.text(start)
	if kw, ok := token.LookupKeyword(text); ok {
		return token.NewKeyword(kw, text, pos)
	}
	return token.New(token.KindIdentifier, text, pos)
}

// scanDollar handles a leading "$": implicit-parameter-name is tried before
// property-wrapper-projection.
func (s *Scanner) scanDollar(pos token.Position) (token.Token, bool, *Error) {
	if tok, ok := s.scanImplicitParameterName(pos); ok {
		return tok, false, nil
	}
	if tok, ok := s.scanPropertyWrapperProjection(pos); ok {
		return tok, false, nil
	}
	return token.Token{}, false, &Error{Kind: ErrUnexpectedCharacterAfterDollarSign, Pos: pos}
}

// scanImplicitParameterName implements "$" followed by one or more decimal
// digits. On rejection the cursor is restored to just after the leading "$"
// so scanPropertyWrapperProjection can retry from there.
func (s *Scanner) scanImplicitParameterName(pos token.Position) (token.Token, bool) {
	afterDollar := s.cur.mark()
	digits := 0
	for {
		ch := s.cur.next()
		if isDecimalDigit(ch) {
			digits++
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}
	if digits == 0 {
		s.cur.reset(afterDollar)
		return token.Token{}, false
	}
	return token.New(token.KindImplicitParameterName, s.text(afterDollar-1), pos), true
}

// scanPropertyWrapperProjection implements "$" followed by one or more
// identifier-body characters. Whether the identifier-body run ends on a
// non-identifier character or on EOF, the result is PropertyWrapperProjection
// either way; there is no separate EOF branch.
func (s *Scanner) scanPropertyWrapperProjection(pos token.Position) (token.Token, bool) {
	afterDollar := s.cur.mark()
	chars := 0
	for {
		ch := s.cur.next()
		if isIdentifierBody(ch) {
			chars++
			continue
		}
		s.pushIfNotEOF(ch)
		break
	}
	if chars == 0 {
		s.cur.reset(afterDollar)
		return token.Token{}, false
	}
	return token.New(token.KindPropertyWrapperProjection, s.text(afterDollar-1), pos), true
}

// singlePunct emits the single-character Punctuation token for ch. ch has
// already been consumed by the caller.
func (s *Scanner) singlePunct(pos token.Position, ch rune) token.Token {
	p, _ := token.LookupPunct(string(ch))
	return token.NewPunct(p, string(ch), pos)
}

// text returns the source slice consumed since the rune index mark, up to
// but not including the current cursor position.
func (s *Scanner) text(mark int) string {
	return string(s.cur.runes[mark:s.cur.idx])
}
