package routepattern

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Pattern is the ordered token sequence of a parsed route pattern.
type Pattern []Token

// String reconstructs the textual pattern. Parsing it again yields an equal Pattern.
func (p Pattern) String() string {
	var b strings.Builder
	for _, t := range p {
		t.writeTo(&b)
	}

	return b.String()
}

// Equal reports whether p and o hold equal tokens in the same order.
func (p Pattern) Equal(o Pattern) bool {
	return slices.EqualFunc(p, o, Token.Equal)
}

// Names returns the names bound by the captures of the pattern, in order,
// including the ones in optional groups.
func (p Pattern) Names() []string {
	var names []string
	for _, t := range p {
		switch {
		case t.Type == TokenCapture && t.Capture.Named():
			names = append(names, t.Capture.Name)

		case t.Type == TokenOptional:
			names = append(names, Pattern(t.Tokens).Names()...)
		}
	}

	return names
}
