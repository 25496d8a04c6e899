package routepattern

import (
	"fmt"

	"golang.org/x/exp/utf8string"
)

// parser walks a pattern rune by rune. Rules take the position to start at and
// return the position following what they consumed; a parser is never reused
// across patterns.
type parser struct {
	input            *utf8string.String
	length           int
	encodingCallback EncodingCallback
}

func newParser(input string, encodingCallback EncodingCallback) *parser {
	s := utf8string.NewString(input)

	return &parser{
		input:            s,
		length:           s.RuneCount(),
		encodingCallback: encodingCallback,
	}
}

func (p *parser) at(pos int) (rune, bool) {
	if pos >= p.length {
		return 0, false
	}

	return p.input.At(pos), true
}

func (p *parser) rest(pos int) string {
	return p.input.Slice(pos, p.length)
}

func (p *parser) errorAt(pos int, err error) *ParseError {
	return &ParseError{
		Err:       err,
		Input:     p.input.String(),
		Offset:    pos,
		Remaining: p.rest(pos),
	}
}

// literal consumes the code point want.
func (p *parser) literal(pos int, want rune) *ParseError {
	if c, ok := p.at(pos); ok && c == want {
		return nil
	}

	return p.errorAt(pos, fmt.Errorf("%w, want %q", ErrUnexpectedInput, want)).within(string(want))
}

// furthest returns the failure that got deepest into the input.
// On ties, the one with the longest context wins, then the first one.
func furthest(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Offset > a.Offset:
		return b
	case b.Offset == a.Offset && len(b.Context) > len(a.Context):
		return b
	default:
		return a
	}
}

// ParseSection parses the matches and captures between two separators.
//
// Matches and captures must alternate: two literals have no boundary between
// them, and two captures can't agree on where one ends. Parsing stops without
// failing at the first token breaking that rule, and the rest of the input is
// returned for the caller to deal with.
func ParseSection(input string) (rest string, tokens []Token, err error) {
	p := newParser(input, nil)

	next, tokens, _, perr := p.section(0)
	if perr != nil {
		return "", nil, perr
	}

	return p.rest(next), tokens, nil
}

// section returns the tokens it consumed and, as stop, the failure that ended the run.
func (p *parser) section(pos int) (next int, tokens []Token, stop, err *ParseError) {
	next, first, err := p.matchOrCapture(pos)
	if err != nil {
		return pos, nil, nil, err.within("section matchers")
	}

	tokens = []Token{first}

	for {
		var (
			token Token
			after int
		)

		if tokens[len(tokens)-1].Type == TokenMatch {
			var c Capture
			after, c, stop = p.capture(next)
			token = CaptureToken(c)
		} else {
			var text string
			after, text, stop = p.match(next)
			token = MatchToken(text)
		}

		if stop != nil {
			return next, tokens, stop.within("section matchers"), nil
		}

		tokens = append(tokens, token)
		next = after
	}
}

// segment parses a separator followed by a section.
func (p *parser) segment(pos int) (next int, tokens []Token, stop, err *ParseError) {
	if err := p.literal(pos, '/'); err != nil {
		return pos, nil, nil, err.within("segment")
	}

	next, section, stop, err := p.section(pos + 1)
	if err != nil {
		return pos, nil, nil, err.within("segment")
	}

	tokens = make([]Token, 0, len(section)+1)
	tokens = append(tokens, SeparatorToken())
	tokens = append(tokens, section...)

	return next, tokens, stop.within("segment"), nil
}

// optionalSegment parses a segment wrapped in parentheses.
func (p *parser) optionalSegment(pos int) (next int, token Token, stop, err *ParseError) {
	if err := p.literal(pos, '('); err != nil {
		return pos, Token{}, nil, err.within("optional segment")
	}

	next, tokens, stop, err := p.segment(pos + 1)
	if err != nil {
		return pos, Token{}, nil, err.within("optional segment")
	}

	// The missing ")" is reported unless the section failed further in.
	if err := p.literal(next, ')'); err != nil {
		if stop != nil && stop.Offset > err.Offset {
			err = stop
		}

		return pos, Token{}, nil, err.within("optional segment")
	}

	return next + 1, OptionalToken(tokens...), stop.within("optional segment"), nil
}

// ParsePath parses as much of input as forms a route pattern and returns the rest.
//
// The grammar is, in order:
//
//	zero or more segments         /item
//	zero or more optional groups  (/item)
//	an optional trailing "/", ending the input
//
// A segment may not follow an optional group: "/a(/b)/c" stops before "/c".
func ParsePath(input string) (rest string, pattern Pattern) {
	p := newParser(input, nil)

	next, pattern, _ := p.path(0)

	return p.rest(next), pattern
}

// path never fails. The returned failure is the one that stopped it, to be reported
// by callers requiring the whole input to be consumed.
func (p *parser) path(pos int) (int, Pattern, *ParseError) {
	var (
		pattern Pattern
		stop    *ParseError
	)

	for {
		next, tokens, s, err := p.segment(pos)
		stop = furthest(stop, s)
		if err != nil {
			stop = furthest(stop, err)

			break
		}

		pattern = append(pattern, tokens...)
		pos = next
	}

	for {
		next, token, s, err := p.optionalSegment(pos)
		stop = furthest(stop, s)
		if err != nil {
			stop = furthest(stop, err)

			break
		}

		pattern = append(pattern, token)
		pos = next
	}

	// The trailing separator must end the pattern. A lone "/" is accepted here too.
	if err := p.literal(pos, '/'); err != nil {
		stop = furthest(stop, err)
	} else if pos+1 == p.length {
		pattern = append(pattern, SeparatorToken())
		pos++
	}

	if stop != nil {
		stop.within("path parser")
	}

	return pos, pattern, stop
}
