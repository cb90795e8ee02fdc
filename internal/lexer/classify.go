package lexer

// Pure, ASCII-only predicates partitioning the character set the scanner
// dispatches on. Non-ASCII input is never whitespace and never an identifier
// character; outside a string or comment body it falls through to
// UnrecognisedCharacter.

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isNewline(ch rune) bool {
	return ch == '\r' || ch == '\n'
}

func isDecimalDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isIdentifierHead(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierBody(ch rune) bool {
	return isIdentifierHead(ch) || isDecimalDigit(ch)
}

// operatorChars is the exact operator character class.
const operatorChars = "/=-+!*%<>&|^~?"

func isOperatorChar(ch rune) bool {
	for _, c := range operatorChars {
		if c == ch {
			return true
		}
	}
	return false
}

// punctuationChars is the exact punctuation character class. "=", "!", "&",
// "?" are deliberately members of both this set and operatorChars; root
// dispatch order (operator class checked before punctuation class) and the
// operator/punctuation post-processing rules resolve the overlap.
const punctuationChars = "(){}[].,:;@#`=!&?"

func isPunctuationChar(ch rune) bool {
	for _, c := range punctuationChars {
		if c == ch {
			return true
		}
	}
	return false
}

func isDecimalLiteralChar(ch rune) bool {
	return isDecimalDigit(ch) || ch == '_'
}

func isHexLiteralChar(ch rune) bool {
	return isHexDigit(ch) || ch == '_'
}

func isBinaryLiteralChar(ch rune) bool {
	return isBinaryDigit(ch) || ch == '_'
}
