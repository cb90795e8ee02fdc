package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text     string
		expected Keyword
	}{
		{"let", KwLet},
		{"class", KwClass},
		{"_", KwUnderscore},
		{"Self", KwSelfType},
		{"self", KwSelf},
		{"Protocol", KwProtocolType},
		{"protocol", KwProtocol},
		{"Type", KwTypeType},
		{"willSet", KwWillSet},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := LookupKeyword(tt.text)
			if !ok {
				t.Fatalf("LookupKeyword(%q) = not found, want %v", tt.text, tt.expected)
			}
			if got != tt.expected {
				t.Fatalf("LookupKeyword(%q) = %v, want %v", tt.text, got, tt.expected)
			}
			if got.String() != tt.text {
				t.Fatalf("Keyword(%v).String() = %q, want %q", got, got.String(), tt.text)
			}
		})
	}
}

func TestLookupKeywordRejectsNonKeywords(t *testing.T) {
	for _, text := range []string{"letter", "Classify", "myVar", "", "Selfish"} {
		if _, ok := LookupKeyword(text); ok {
			t.Fatalf("LookupKeyword(%q) unexpectedly matched a keyword", text)
		}
	}
}

func TestKeywordTableHasNoDuplicateSpellings(t *testing.T) {
	seen := make(map[string]Keyword, len(keywordSpellings))
	for k, s := range keywordSpellings {
		if prev, ok := seen[s]; ok {
			t.Fatalf("keyword spelling %q used by both %v and %v", s, prev, Keyword(k))
		}
		seen[s] = Keyword(k)
	}
}

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		text     string
		expected Operator
	}{
		{"+", OpPlus},
		{"+=", OpPlusEq},
		{"??", OpNilCoalesce},
		{"...", OpEllipsis},
		{"..<", OpHalfOpenRange},
		{"===", OpEqEqEq},
		{"!==", OpNotEqEq},
		{"&+", OpOverflowAdd},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := LookupOperator(tt.text)
			if !ok || got != tt.expected {
				t.Fatalf("LookupOperator(%q) = (%v, %v), want (%v, true)", tt.text, got, ok, tt.expected)
			}
		})
	}
}

func TestLookupOperatorRejectsBareAmpersandAndBang(t *testing.T) {
	// "&" and "!" are operator-class characters but must never be looked up
	// as builtin operators on their own; the scanner special-cases them
	// before consulting this table.
	for _, text := range []string{"&", "!"} {
		if _, ok := LookupOperator(text); ok {
			t.Fatalf("LookupOperator(%q) unexpectedly matched a builtin operator", text)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	tests := []struct {
		text     string
		expected Punct
	}{
		{"(", PunctLParen},
		{")", PunctRParen},
		{"->", PunctArrow},
		{"=", PunctEq},
		{"?", PunctQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := LookupPunct(tt.text)
			if !ok || got != tt.expected {
				t.Fatalf("LookupPunct(%q) = (%v, %v), want (%v, true)", tt.text, got, ok, tt.expected)
			}
		})
	}
}

func TestLookupPunctRejectsBareAmpersandAndBang(t *testing.T) {
	for _, text := range []string{"&", "!"} {
		if _, ok := LookupPunct(text); ok {
			t.Fatalf("LookupPunct(%q) unexpectedly matched a punctuation symbol", text)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KindKeyword.String(); got != "Keyword" {
		t.Fatalf("KindKeyword.String() = %q, want %q", got, "Keyword")
	}
	if got := Kind(999).String(); got != "UNKNOWN" {
		t.Fatalf("Kind(999).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestNewConstructorsSetPayload(t *testing.T) {
	kw := NewKeyword(KwVar, "var", 0)
	if kw.Kind != KindKeyword || kw.Keyword != KwVar {
		t.Fatalf("NewKeyword produced %+v", kw)
	}

	op := NewOperator(OpPlusEq, "+=", 4)
	if op.Kind != KindBuiltinOperator || op.Operator != OpPlusEq {
		t.Fatalf("NewOperator produced %+v", op)
	}

	p := NewPunct(PunctArrow, "->", 7)
	if p.Kind != KindPunctuation || p.Punct != PunctArrow {
		t.Fatalf("NewPunct produced %+v", p)
	}
}
