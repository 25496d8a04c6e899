package routepattern

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Token is one element of a parsed route pattern.
type Token struct {
	Type TokenType
	// Text is the literal of a TokenMatch.
	Text string
	// Capture describes a TokenCapture.
	Capture Capture
	// Tokens are the children of a TokenOptional. They always start with a separator.
	Tokens []Token
}

// TokenType identifies the kind of a Token.
type TokenType uint8

const (
	// TokenSeparator represents a U+002F (/) code point.
	TokenSeparator TokenType = iota
	// TokenMatch represents a literal that must appear verbatim in a path segment.
	TokenMatch
	// TokenCapture represents a placeholder consuming part of a path segment, or several segments.
	TokenCapture
	// TokenOptional represents a parenthesized group of tokens that may be absent from a matched path.
	TokenOptional
)

func (t TokenType) String() string {
	switch t {
	case TokenSeparator:
		return "separator"
	case TokenMatch:
		return "match"
	case TokenCapture:
		return "capture"
	case TokenOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// SeparatorToken returns a "/" token.
func SeparatorToken() Token {
	return Token{Type: TokenSeparator}
}

// MatchToken returns a token matching text literally.
func MatchToken(text string) Token {
	return Token{Type: TokenMatch, Text: text}
}

// CaptureToken returns a token extracting what c describes.
func CaptureToken(c Capture) Token {
	return Token{Type: TokenCapture, Capture: c}
}

// OptionalToken returns a group of tokens that may be absent from a path.
func OptionalToken(tokens ...Token) Token {
	return Token{Type: TokenOptional, Tokens: tokens}
}

// Equal reports whether t and o describe the same token, children included.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}

	switch t.Type {
	case TokenMatch:
		return t.Text == o.Text
	case TokenCapture:
		return t.Capture == o.Capture
	case TokenOptional:
		return slices.EqualFunc(t.Tokens, o.Tokens, Token.Equal)
	default:
		return true
	}
}

// String returns the pattern syntax of the token.
func (t Token) String() string {
	var b strings.Builder
	t.writeTo(&b)

	return b.String()
}

func (t Token) writeTo(b *strings.Builder) {
	switch t.Type {
	case TokenSeparator:
		b.WriteByte('/')

	case TokenMatch:
		b.WriteString(t.Text)

	case TokenCapture:
		t.Capture.writeTo(b)

	case TokenOptional:
		b.WriteByte('(')
		for _, c := range t.Tokens {
			c.writeTo(b)
		}
		b.WriteByte(')')
	}
}
