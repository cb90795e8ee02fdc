// Package token defines the lexical vocabulary produced by the Sonic
// scanner: source positions, the closed set of token kinds, and the
// reserved-word, operator, and punctuation tables a scan consults.
package token

import "fmt"

// Position is the count of characters consumed from the start of the
// source, 0-based. The scanner maintains exactly one cursor: pulling a
// character forward increments it, pushing one back decrements it, so an
// error position always names the character that offended rather than the
// one after it.
type Position int

// String renders the offset for debugging; human-facing line:column
// rendering belongs to the diagnostic package, which has the source text
// needed to compute it.
func (p Position) String() string {
	return fmt.Sprintf("offset %d", int(p))
}
