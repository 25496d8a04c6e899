package routepattern

import (
	"fmt"
	"strconv"
	"strings"
)

// CaptureKind selects how much of a path a capture consumes and whether it binds a name.
type CaptureKind uint8

const (
	// CaptureUnnamed is written "{}". It matches exactly one path segment and discards it.
	CaptureUnnamed CaptureKind = iota
	// CaptureManyUnnamed is written "{*}". It matches zero or more remaining segments and discards them.
	CaptureManyUnnamed
	// CaptureNamed is written "{name}". It matches exactly one segment and binds it to name.
	CaptureNamed
	// CaptureManyNamed is written "{*:name}". It matches zero or more segments and binds them to name.
	CaptureManyNamed
	// CaptureNumberedUnnamed is written "{5}". It matches exactly Sections segments and discards them.
	CaptureNumberedUnnamed
	// CaptureNumberedNamed is written "{5:name}". It matches exactly Sections segments and binds them to name.
	CaptureNumberedNamed
)

func (k CaptureKind) String() string {
	switch k {
	case CaptureUnnamed:
		return "unnamed"
	case CaptureManyUnnamed:
		return "many unnamed"
	case CaptureNamed:
		return "named"
	case CaptureManyNamed:
		return "many named"
	case CaptureNumberedUnnamed:
		return "numbered unnamed"
	case CaptureNumberedNamed:
		return "numbered named"
	default:
		return "unknown"
	}
}

// Capture describes what a capture token extracts from a path.
type Capture struct {
	Kind CaptureKind
	// Name is set for the named kinds.
	Name string
	// Sections is set for the numbered kinds.
	Sections uint
}

// Named reports whether the capture binds its value to a name.
func (c Capture) Named() bool {
	return c.Kind == CaptureNamed || c.Kind == CaptureManyNamed || c.Kind == CaptureNumberedNamed
}

func (c Capture) String() string {
	var b strings.Builder
	c.writeTo(&b)

	return b.String()
}

func (c Capture) writeTo(b *strings.Builder) {
	b.WriteByte('{')

	switch c.Kind {
	case CaptureManyUnnamed:
		b.WriteByte('*')
	case CaptureNamed:
		b.WriteString(c.Name)
	case CaptureManyNamed:
		b.WriteString("*:")
		b.WriteString(c.Name)
	case CaptureNumberedUnnamed:
		b.WriteString(strconv.FormatUint(uint64(c.Sections), 10))
	case CaptureNumberedNamed:
		b.WriteString(strconv.FormatUint(uint64(c.Sections), 10))
		b.WriteByte(':')
		b.WriteString(c.Name)
	}

	b.WriteByte('}')
}

// ParseCapture parses a capture at the start of input and returns the unconsumed remainder.
//
// When several shapes could apply, the first one in this list wins:
//
//	{}        CaptureUnnamed
//	{*:name}  CaptureManyNamed
//	{*}       CaptureManyUnnamed
//	{name}    CaptureNamed
//	{5:name}  CaptureNumberedNamed
//	{5}       CaptureNumberedUnnamed
func ParseCapture(input string) (rest string, c Capture, err error) {
	p := newParser(input, nil)

	next, c, perr := p.capture(0)
	if perr != nil {
		return "", Capture{}, perr
	}

	return p.rest(next), c, nil
}

// ParseMatchOrCapture parses a capture if input starts with "{", and the literal text of a match otherwise.
func ParseMatchOrCapture(input string) (rest string, t Token, err error) {
	p := newParser(input, nil)

	next, t, perr := p.matchOrCapture(0)
	if perr != nil {
		return "", Token{}, perr
	}

	return p.rest(next), t, nil
}

func (p *parser) matchOrCapture(pos int) (int, Token, *ParseError) {
	if c, ok := p.at(pos); ok && c == '{' {
		next, c, err := p.capture(pos)
		if err != nil {
			return pos, Token{}, err.within("capture or match")
		}

		return next, CaptureToken(c), nil
	}

	next, text, err := p.match(pos)
	if err != nil {
		return pos, Token{}, err.within("capture or match")
	}

	return next, MatchToken(text), nil
}

func (p *parser) capture(pos int) (int, Capture, *ParseError) {
	next, c, err := p.captureBody(pos)
	if err != nil {
		return pos, Capture{}, err.within("capture")
	}

	return next, c, nil
}

func (p *parser) captureBody(pos int) (int, Capture, *ParseError) {
	if err := p.literal(pos, '{'); err != nil {
		return pos, Capture{}, err
	}

	start := pos + 1
	end := -1

Loop:
	for i := start; i < p.length; i++ {
		switch p.input.At(i) {
		case '}':
			end = i
			break Loop

		case '{':
			return pos, Capture{}, p.errorAt(i, ErrMalformedCapture)
		}
	}

	if end < 0 {
		return pos, Capture{}, p.errorAt(pos, ErrUnterminatedCapture)
	}

	c, err := p.captureContent(start, end)
	if err != nil {
		return pos, Capture{}, err
	}

	return end + 1, c, nil
}

// captureContent resolves the runes between the braces of a capture, [start, end).
func (p *parser) captureContent(start, end int) (Capture, *ParseError) {
	if start == end {
		return Capture{Kind: CaptureUnnamed}, nil
	}

	first := p.input.At(start)

	switch {
	case first == '*':
		if start+1 == end {
			return Capture{Kind: CaptureManyUnnamed}, nil
		}

		if p.input.At(start+1) != ':' {
			return Capture{}, p.errorAt(start+1, ErrMalformedCapture)
		}

		name, err := p.captureName(start+2, end)
		if err != nil {
			return Capture{}, err
		}

		return Capture{Kind: CaptureManyNamed, Name: name}, nil

	case isDigit(first):
		digitsEnd := start
		for digitsEnd < end && isDigit(p.input.At(digitsEnd)) {
			digitsEnd++
		}

		sections, err := strconv.ParseUint(p.input.Slice(start, digitsEnd), 10, strconv.IntSize)
		if err != nil {
			return Capture{}, p.errorAt(start, fmt.Errorf("%w: %w", ErrInvalidSectionCount, err))
		}

		if digitsEnd == end {
			return Capture{Kind: CaptureNumberedUnnamed, Sections: uint(sections)}, nil
		}

		if p.input.At(digitsEnd) != ':' {
			return Capture{}, p.errorAt(digitsEnd, ErrMalformedCapture)
		}

		name, perr := p.captureName(digitsEnd+1, end)
		if perr != nil {
			return Capture{}, perr
		}

		return Capture{Kind: CaptureNumberedNamed, Sections: uint(sections), Name: name}, nil

	default:
		name, err := p.captureName(start, end)
		if err != nil {
			return Capture{}, err
		}

		return Capture{Kind: CaptureNamed, Name: name}, nil
	}
}

// captureName parses an identifier that must span exactly [start, end).
func (p *parser) captureName(start, end int) (string, *ParseError) {
	next, name, err := p.identifier(start)
	if err != nil {
		err.Err = fmt.Errorf("%w: %w", ErrMalformedCapture, err.Err)

		return "", err
	}

	if next != end {
		return "", p.errorAt(next, ErrMalformedCapture)
	}

	return name, nil
}
