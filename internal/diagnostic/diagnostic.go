// Package diagnostic turns a lexer.Error plus the source it was raised
// against into a human-readable report: a "near:" context excerpt and a
// line/column pretty-printer in the style of a compiler front-end.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/soniclang/sonic/internal/lexer"
	"github.com/soniclang/sonic/pkg/token"
)

// LineCol resolves a character offset into source into a 1-based line and
// column, counting a line break only at "\n"; a lone "\r" advances the
// column like any other character. Useful for
// rendering any token.Position, not just an error's.
func LineCol(source string, pos token.Position) (line, col int) {
	runes := []rune(source)
	offset := clamp(int(pos), 0, len(runes))

	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Diagnostic pairs a lexical error with the source text needed to resolve
// its offset position into line:column and surrounding context.
type Diagnostic struct {
	Err    *lexer.Error
	Source string
	File   string
}

// New builds a Diagnostic for err against source. file is optional; an
// empty string renders a position-only header.
func New(err *lexer.Error, source, file string) *Diagnostic {
	return &Diagnostic{Err: err, Source: source, File: file}
}

// Near extracts the "near:" context line: the slice of Source from the
// error position up to, but not including, the next newline or EOF. This
// end-exclusive contract is load-bearing — callers must not extend it to
// include the terminating newline.
func (d *Diagnostic) Near() string {
	runes := []rune(d.Source)
	start := clamp(int(d.Err.Pos), 0, len(runes))
	end := start
	for end < len(runes) && runes[end] != '\n' && runes[end] != '\r' {
		end++
	}
	return string(runes[start:end])
}

// LineCol resolves the error's character offset into a 1-based line and
// column.
func (d *Diagnostic) LineCol() (line, col int) {
	return LineCol(d.Source, d.Err.Pos)
}

// Format renders a full diagnostic: a file:line:col header, the offending
// source line with a caret under the error position, and the error message
// followed by its "near:" excerpt. Color enables ANSI highlighting for
// terminal output.
func (d *Diagnostic) Format(color bool) string {
	line, col := d.LineCol()

	var sb strings.Builder
	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.File, line, col)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", line, col)
	}

	if src := d.sourceLine(line); src != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(src)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Err.Kind.String())
	if color {
		sb.WriteString("\033[0m")
	}
	fmt.Fprintf(&sb, " (near: %q)", d.Near())

	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[lineNum-1], "\r")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
