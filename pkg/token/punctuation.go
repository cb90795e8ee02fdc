package token

// Punct identifies one of Sonic's punctuation symbols. Like Operator, it
// never carries "&" or "!": those are always KindAmpersand/KindExclamation.
// "->", "=", and "?" belong here rather than to Operator because the
// punctuation-and-operator overlap rule prefers punctuation when the whole
// operator run equals one of those three spellings.
type Punct int

const (
	PunctLParen Punct = iota
	PunctRParen
	PunctLBrace
	PunctRBrace
	PunctLBrack
	PunctRBrack
	PunctDot
	PunctComma
	PunctColon
	PunctSemicolon
	PunctEq
	PunctAt
	PunctHash
	PunctArrow
	PunctBacktick
	PunctQuestion

	punctCount
)

var punctSpellings = [...]string{
	PunctLParen:    "(",
	PunctRParen:    ")",
	PunctLBrace:    "{",
	PunctRBrace:    "}",
	PunctLBrack:    "[",
	PunctRBrack:    "]",
	PunctDot:       ".",
	PunctComma:     ",",
	PunctColon:     ":",
	PunctSemicolon: ";",
	PunctEq:        "=",
	PunctAt:        "@",
	PunctHash:      "#",
	PunctArrow:     "->",
	PunctBacktick:  "`",
	PunctQuestion:  "?",
}

var punctByText = func() map[string]Punct {
	m := make(map[string]Punct, len(punctSpellings))
	for p, s := range punctSpellings {
		m[s] = Punct(p)
	}
	return m
}()

// String returns the punctuation symbol's spelling.
func (p Punct) String() string {
	if p >= 0 && int(p) < len(punctSpellings) {
		return punctSpellings[p]
	}
	return "<invalid punctuation>"
}

// LookupPunct reports whether text exactly matches one of the single- or
// two-character punctuation spellings reachable outside the Ampersand /
// Exclamation special cases.
func LookupPunct(text string) (Punct, bool) {
	p, ok := punctByText[text]
	return p, ok
}
