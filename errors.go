package routepattern

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLeadingDigit is returned when an identifier starts with a decimal digit.
	ErrInvalidLeadingDigit = errors.New("identifier must not start with a digit")
	// ErrEmptyIdentifier is returned when an identifier was required but no valid character was found.
	ErrEmptyIdentifier = errors.New("expected identifier")
	// ErrUnterminatedCapture is returned when a capture has no closing brace.
	ErrUnterminatedCapture = errors.New("unterminated capture")
	// ErrMalformedCapture is returned when the content of a capture matches none of the capture shapes.
	ErrMalformedCapture = errors.New("malformed capture")
	// ErrInvalidSectionCount is returned when the digits of a numbered capture do not fit in a uint.
	ErrInvalidSectionCount = errors.New("invalid section count")
	// ErrUnparsedTrailingInput is returned when the grammar stopped before consuming the whole pattern.
	ErrUnparsedTrailingInput = errors.New("unparsed trailing input")
	// ErrUnexpectedInput is returned when a required "/", "(", ")" or "{" is missing.
	ErrUnexpectedInput = errors.New("unexpected input")
	// ErrEncoding is returned when the encoding callback rejects the text of a match.
	ErrEncoding = errors.New("encoding failed")
)

// ParseError describes where and why a pattern could not be parsed.
type ParseError struct {
	// Err is the error kind, one of the Err* variables, possibly wrapped.
	Err error
	// Input is the string handed to the parsing function.
	Input string
	// Offset is the rune offset in Input at which parsing failed.
	Offset int
	// Remaining is the unconsumed input starting at Offset.
	Remaining string
	// Context lists the grammar rules active at failure time, outermost first.
	Context []string
	// Cause is the failure that stopped the grammar, only set for ErrUnparsedTrailingInput.
	Cause *ParseError
}

func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())
	b.WriteString(" at offset ")
	b.WriteString(strconv.Itoa(e.Offset))
	b.WriteString(": ")
	b.WriteString(strconv.Quote(e.Remaining))

	if len(e.Context) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Context, " > "))
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Err.Error())

		if e.Cause.Offset != e.Offset {
			b.WriteString(" at offset ")
			b.WriteString(strconv.Itoa(e.Cause.Offset))
		}
	}

	return b.String()
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// within records that the failure happened while the named rule was active.
// Rules call it while the error unwinds, so the outermost rule ends up first.
func (e *ParseError) within(rule string) *ParseError {
	if e == nil {
		return nil
	}

	e.Context = append([]string{rule}, e.Context...)

	return e
}
