package routepattern

import "github.com/dunglas/whatwg-url/url"

var urlParser = url.NewParser()

// CanonicalizePathname percent-encodes value the way a URL parser encodes a path.
// It is meant to be used as an EncodingCallback, so that the text of matches
// can be compared with the path of a parsed request URL:
//
//	CanonicalizePathname("café") // "caf%C3%A9"
//
// https://urlpattern.spec.whatwg.org/#canonicalize-a-pathname
func CanonicalizePathname(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	leadingSlash := value[0] == '/'

	modifiedValue := value
	if !leadingSlash {
		modifiedValue = "/-" + value
	}

	u, err := urlParser.BasicParser(modifiedValue, nil, urlParser.NewUrl(), url.StatePathStart)
	if err != nil {
		return "", err
	}

	result := u.Pathname()

	if !leadingSlash {
		result = result[2:]
	}

	return result, nil
}
