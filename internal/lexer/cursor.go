package lexer

import "github.com/soniclang/sonic/pkg/token"

// eof is the sentinel rune returned once the cursor is exhausted.
const eof rune = -1

// cursor is a single-character forward reader with pushback, implemented as
// an index into a fully-decoded rune slice rather than a literal LIFO stack
// of runes — the two are observationally equivalent (push(c) restores the
// exact position a matching next() had just advanced past), and the index
// form makes the save/restore discipline sub-scanners rely on (mark/reset)
// trivial and allocation-free.
//
// The whole source is decoded up front: the input is always a fully
// resident string, never a stream, so there is no benefit to lazy UTF-8
// decoding and every position can be a plain rune count.
type cursor struct {
	runes []rune
	idx   int
}

func newCursor(src string) *cursor {
	return &cursor{runes: []rune(src)}
}

// next returns the rune at the cursor and advances past it; it returns eof
// without advancing once input is exhausted.
func (c *cursor) next() rune {
	if c.idx >= len(c.runes) {
		return eof
	}
	r := c.runes[c.idx]
	c.idx++
	return r
}

// push returns ch to the front of input; position decrements symmetrically
// with next's increment. Each call rewinds one position regardless of ch,
// so a sub-scanner that read several characters before rejecting calls
// push once per character (or resets to a mark), and the next dispatch
// re-observes the earliest of them first.
func (c *cursor) push(ch rune) {
	_ = ch // accepted for interface symmetry with next(); the index rewind is order-independent.
	c.idx--
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() rune {
	r := c.next()
	if r != eof {
		c.push(r)
	}
	return r
}

// position is the current count of characters consumed.
func (c *cursor) position() token.Position {
	return token.Position(c.idx)
}

// mark snapshots the cursor for a multi-character lookahead a sub-scanner
// may need to fully unwind on rejection.
func (c *cursor) mark() int {
	return c.idx
}

// reset rewinds the cursor to a previously taken mark.
func (c *cursor) reset(m int) {
	c.idx = m
}
