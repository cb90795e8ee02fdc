package lexer

import (
	"testing"

	"github.com/soniclang/sonic/pkg/token"
)

func TestLexLineComment(t *testing.T) {
	input := "// a comment\nlet x = 1"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", input, err)
	}
	if tokens[0].Kind != token.KindComment || tokens[0].Content != "// a comment\n" {
		t.Fatalf("tokens[0] = %+v, want Comment(\"// a comment\\n\")", tokens[0])
	}
}

func TestLexLineCommentAtEOF(t *testing.T) {
	input := "// trailing, no newline"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", input, err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.KindComment || tokens[0].Content != input {
		t.Fatalf("Lex(%q) = %+v, want a single Comment spanning the whole input", input, tokens)
	}
}

func TestLexBlockComment(t *testing.T) {
	input := "/* block\nspanning lines */x"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) returned error: %v", input, err)
	}
	if tokens[0].Kind != token.KindComment || tokens[0].Content != "/* block\nspanning lines */" {
		t.Fatalf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Kind != token.KindIdentifier || tokens[1].Content != "x" {
		t.Fatalf("tokens[1] = %+v, want Identifier(x)", tokens[1])
	}
}

func TestLexSlashStarSlashTerminatesImmediately(t *testing.T) {
	// "/*/" at EOF is one Comment, because the opening "*" already counts
	// as "previous was asterisk".
	tokens, err := Lex("/*/")
	if err != nil {
		t.Fatalf("Lex(\"/*/\") returned error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.KindComment || tokens[0].Content != "/*/" {
		t.Fatalf("Lex(\"/*/\") = %+v, want a single Comment(\"/*/\")", tokens)
	}
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	_, err := Lex("/* never closes")
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Lex(\"/* never closes\") returned %T, want *Error", err)
	}
	if lexErr.Kind != ErrUnterminatedComment {
		t.Fatalf("Lex(\"/* never closes\") error kind = %v, want UnterminatedComment", lexErr.Kind)
	}
}

func TestLexSlashFallsBackToOperatorWhenNotAComment(t *testing.T) {
	tokens, err := Lex("/=")
	if err != nil {
		t.Fatalf("Lex(\"/=\") returned error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.KindBuiltinOperator || tokens[0].Content != "/=" {
		t.Fatalf("Lex(\"/=\") = %+v, want BuiltinOperator(\"/=\")", tokens)
	}
}
