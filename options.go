package routepattern

// EncodingCallback turns the literal text of a match into the form it takes in a path.
type EncodingCallback func(string) (string, error)

// Options configures ParseWithOptions. The zero value parses patterns as written.
type Options struct {
	// EncodingCallback, if set, is applied to the text of every match token.
	// CanonicalizePathname is the usual choice when patterns are compared
	// against raw request paths.
	EncodingCallback EncodingCallback
}
