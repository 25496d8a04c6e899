// Package routepattern parses route patterns into the tokens a router matches paths against.
//
// A pattern is a sequence of segments, each made of a separator followed by
// alternating literals and captures, optionally followed by parenthesized
// optional segments:
//
//	/user/{id}/posts(/archived)
//	/files/{*:path}
//	/v{}/docs(/{lang})(/{2:version})/
//
// Captures come in six shapes: {}, {*}, {name}, {*:name}, {5} and {5:name}.
package routepattern

import "strconv"

// Parse parses a whole route pattern.
//
// Input left over by the grammar, for instance a pattern not starting with "/",
// two captures in a row or a segment following an optional group, is reported
// as ErrUnparsedTrailingInput. The returned *ParseError also wraps the failure
// that stopped the grammar.
func Parse(pattern string) (Pattern, error) {
	return ParseWithOptions(pattern, Options{})
}

// ParseWithOptions is like Parse but applies options while parsing.
func ParseWithOptions(pattern string, options Options) (Pattern, error) {
	p := newParser(pattern, options.EncodingCallback)

	next, tokens, stop := p.path(0)
	if next == p.length {
		return tokens, nil
	}

	err := p.errorAt(next, ErrUnparsedTrailingInput)
	if stop != nil {
		err.Context = append([]string(nil), stop.Context...)
		err.Cause = stop
	}

	return nil, err
}

// MustParse is like Parse but panics if the pattern can't be parsed.
// It simplifies safe initialization of global variables holding patterns.
func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(`routepattern: Parse(` + strconv.Quote(pattern) + `): ` + err.Error())
	}

	return p
}
