package lexer

import (
	"testing"

	"github.com/soniclang/sonic/pkg/token"
)

func TestLexStaticStrings(t *testing.T) {
	tests := []string{
		`""`,
		`"hello"`,
		`"line with \n escape"`,
		`"quote \" inside"`,
		`"unicode \u{1F600}"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens, err := Lex(input)
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", input, err)
			}
			if len(tokens) != 1 {
				t.Fatalf("Lex(%q) = %+v, want exactly one token", input, tokens)
			}
			if tokens[0].Kind != token.KindStaticString {
				t.Errorf("Lex(%q) kind = %v, want StaticStringLiteral", input, tokens[0].Kind)
			}
			if tokens[0].Content != input {
				t.Errorf("Lex(%q) content = %q, want %q", input, tokens[0].Content, input)
			}
		})
	}
}

func TestLexInterpolatedString(t *testing.T) {
	input := `"hi \(name) !"`
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", input, err)
	}
	if len(tokens) != 1 {
		t.Fatalf("Lex(%q) = %+v, want exactly one token", input, tokens)
	}
	if tokens[0].Kind != token.KindInterpolatedString {
		t.Fatalf("Lex(%q) kind = %v, want InterpolatedStringLiteral", input, tokens[0].Kind)
	}
	if tokens[0].Content != input {
		t.Fatalf("Lex(%q) content = %q, want %q", input, tokens[0].Content, input)
	}
}

func TestLexStringErrors(t *testing.T) {
	tests := []struct {
		input    string
		wantKind ErrorKind
	}{
		{`"unterminated`, ErrUnterminatedString},
		{"\"has\nnewline\"", ErrNewlineWithinString},
		{`"bad \q escape"`, ErrUnexpectedStringEscape},
		{`"\u missing brace"`, ErrEscapedUnicodeMissingOpeningBrace},
		{`"\u{ missing hex"`, ErrEscapedUnicodeMissingHexValue},
		{`"\u{1 missing close"`, ErrEscapedUnicodeMissingHexValueOrBrace},
		{`"\(1bad)"`, ErrExpectedIdentifierInStringInterpolation},
		{`"\(bad identifier)"`, ErrExpectedIdentifierOrClosingBraceInStringInterpolation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Lex(tt.input)
			if err == nil {
				t.Fatalf("Lex(%q) succeeded, want %v", tt.input, tt.wantKind)
			}
			lexErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("Lex(%q) returned %T, want *Error", tt.input, err)
			}
			if lexErr.Kind != tt.wantKind {
				t.Fatalf("Lex(%q) error kind = %v, want %v", tt.input, lexErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestLexUnterminatedStringPosition(t *testing.T) {
	// `"oops` with no closing quote fails at position 5.
	_, err := Lex(`"oops`)
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Lex(`\"oops`) returned %T, want *Error", err)
	}
	if lexErr.Kind != ErrUnterminatedString || lexErr.Pos != 5 {
		t.Fatalf("Lex(`\"oops`) = %+v, want UnterminatedString at position 5", lexErr)
	}
}
