package routepattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Adapted from the regexp package: https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// forbiddenIdentChars can never appear in an identifier or in the text of a match.
const forbiddenIdentChars = " -*/+#?&^@~`;,.|\\{}[]()=\t\n"

// Bitmap used by func forbiddenIdent to check whether a character ends an identifier.
var forbiddenIdentBytes [16]byte

func init() {
	for _, b := range []byte(forbiddenIdentChars) {
		forbiddenIdentBytes[b%16] |= 1 << (b / 16)
	}
}

// forbiddenIdent reports whether c can't be part of an identifier.
// Every forbidden character is ASCII, any other code point is allowed.
func forbiddenIdent(c rune) bool {
	return c < utf8.RuneSelf && forbiddenIdentBytes[byte(c)%16]&(1<<(byte(c)/16)) != 0
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// ValidIdentifier consumes the longest run of allowed characters at the start of input.
// It returns the unconsumed remainder and the identifier.
//
// The identifier must not start with a digit, so that numbered captures
// like "{5}" can't be mistaken for named ones.
func ValidIdentifier(input string) (rest string, ident string, err error) {
	p := newParser(input, nil)

	next, ident, perr := p.identifier(0)
	if perr != nil {
		return "", "", perr
	}

	return p.rest(next), ident, nil
}

func (p *parser) identifier(pos int) (int, string, *ParseError) {
	c, ok := p.at(pos)
	if ok && isDigit(c) {
		return pos, "", p.errorAt(pos, ErrInvalidLeadingDigit).within("identifier")
	}

	end := pos
	for end < p.length && !forbiddenIdent(p.input.At(end)) {
		end++
	}

	if end == pos {
		return pos, "", p.errorAt(pos, ErrEmptyIdentifier).within("identifier")
	}

	return end, p.input.Slice(pos, end), nil
}

// match consumes the literal text of a section.
func (p *parser) match(pos int) (int, string, *ParseError) {
	next, text, err := p.identifier(pos)
	if err != nil {
		return pos, "", err.within("match")
	}

	if p.encodingCallback == nil {
		return next, text, nil
	}

	encoded, cbErr := p.encodingCallback(text)
	if cbErr != nil {
		return pos, "", p.errorAt(pos, fmt.Errorf("%w: %w", ErrEncoding, cbErr)).within("match")
	}

	// The encoded text must still parse back as a match.
	if encoded == "" || isDigit(rune(encoded[0])) || strings.ContainsFunc(encoded, forbiddenIdent) {
		return pos, "", p.errorAt(pos, fmt.Errorf("%w: %q is not a valid match", ErrEncoding, encoded)).within("match")
	}

	return next, encoded, nil
}
