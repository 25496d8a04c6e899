package routepattern_test

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/dunglas/go-routepattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Entry struct {
	Pattern   string       `json:"pattern"`
	Tokens    []EntryToken `json:"tokens"`
	Error     string       `json:"error"`
	Offset    int          `json:"offset"`
	Remaining string       `json:"remaining"`
	Cause     string       `json:"cause"`
}

type EntryToken struct {
	Type     string       `json:"type"`
	Text     string       `json:"text"`
	Kind     string       `json:"kind"`
	Name     string       `json:"name"`
	Sections uint         `json:"sections"`
	Tokens   []EntryToken `json:"tokens"`
}

var errorsByName = map[string]error{
	"ErrInvalidLeadingDigit":   routepattern.ErrInvalidLeadingDigit,
	"ErrEmptyIdentifier":       routepattern.ErrEmptyIdentifier,
	"ErrUnterminatedCapture":   routepattern.ErrUnterminatedCapture,
	"ErrMalformedCapture":      routepattern.ErrMalformedCapture,
	"ErrInvalidSectionCount":   routepattern.ErrInvalidSectionCount,
	"ErrUnparsedTrailingInput": routepattern.ErrUnparsedTrailingInput,
	"ErrUnexpectedInput":       routepattern.ErrUnexpectedInput,
}

var kindsByName = map[string]routepattern.CaptureKind{
	"unnamed":          routepattern.CaptureUnnamed,
	"many unnamed":     routepattern.CaptureManyUnnamed,
	"named":            routepattern.CaptureNamed,
	"many named":       routepattern.CaptureManyNamed,
	"numbered unnamed": routepattern.CaptureNumberedUnnamed,
	"numbered named":   routepattern.CaptureNumberedNamed,
}

func TestParse(t *testing.T) {
	content, err := os.ReadFile("testdata/patterns.json")
	require.NoError(t, err)

	var data []Entry
	require.NoError(t, json.Unmarshal(content, &data))

	for _, entry := range data {
		t.Run(entry.Pattern, func(t *testing.T) {
			pattern, err := routepattern.Parse(entry.Pattern)

			if entry.Error != "" {
				require.Error(t, err)
				assert.Nil(t, pattern)
				assertParseError(t, entry, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, newPattern(t, entry.Tokens).Equal(pattern), "got %#v", pattern)

			assert.Equal(t, entry.Pattern, pattern.String())
			assertOptionalsStartWithSeparator(t, pattern)

			reparsed, err := routepattern.Parse(pattern.String())
			require.NoError(t, err)
			assert.True(t, pattern.Equal(reparsed))
		})
	}
}

func assertParseError(t *testing.T, entry Entry, err error) {
	t.Helper()

	kind, ok := errorsByName[entry.Error]
	require.True(t, ok, "unknown error %q", entry.Error)
	assert.ErrorIs(t, err, kind)

	if entry.Cause != "" {
		cause, ok := errorsByName[entry.Cause]
		require.True(t, ok, "unknown error %q", entry.Cause)
		assert.ErrorIs(t, err, cause)
	}

	var perr *routepattern.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, entry.Pattern, perr.Input)
	assert.Equal(t, entry.Offset, perr.Offset)
	assert.Equal(t, entry.Remaining, perr.Remaining)
	assert.NotEmpty(t, perr.Context)
	assert.Equal(t, "path parser", perr.Context[0])
}

func assertOptionalsStartWithSeparator(t *testing.T, pattern routepattern.Pattern) {
	t.Helper()

	for _, token := range pattern {
		if token.Type != routepattern.TokenOptional {
			continue
		}

		require.NotEmpty(t, token.Tokens)
		assert.Equal(t, routepattern.TokenSeparator, token.Tokens[0].Type, "in %s", token)
	}
}

func newPattern(t *testing.T, tokens []EntryToken) routepattern.Pattern {
	t.Helper()

	pattern := make(routepattern.Pattern, 0, len(tokens))
	for _, et := range tokens {
		pattern = append(pattern, newToken(t, et))
	}

	return pattern
}

func newToken(t *testing.T, et EntryToken) routepattern.Token {
	t.Helper()

	switch et.Type {
	case "separator":
		return routepattern.SeparatorToken()

	case "match":
		return routepattern.MatchToken(et.Text)

	case "capture":
		kind, ok := kindsByName[et.Kind]
		require.True(t, ok, "unknown capture kind %q", et.Kind)

		return routepattern.CaptureToken(routepattern.Capture{Kind: kind, Name: et.Name, Sections: et.Sections})

	case "optional":
		return routepattern.OptionalToken(newPattern(t, et.Tokens)...)
	}

	t.Fatalf("unknown token type %q", et.Type)

	return routepattern.Token{}
}

func TestParseWithOptions(t *testing.T) {
	pattern, err := routepattern.ParseWithOptions("/café/{id}(/ñ)", routepattern.Options{EncodingCallback: routepattern.CanonicalizePathname})
	require.NoError(t, err)

	want := routepattern.Pattern{
		routepattern.SeparatorToken(),
		routepattern.MatchToken("caf%C3%A9"),
		routepattern.SeparatorToken(),
		routepattern.CaptureToken(routepattern.Capture{Kind: routepattern.CaptureNamed, Name: "id"}),
		routepattern.OptionalToken(routepattern.SeparatorToken(), routepattern.MatchToken("%C3%B1")),
	}
	assert.True(t, want.Equal(pattern), "got %s", pattern)
}

func TestParseWithOptionsEncodingError(t *testing.T) {
	fail := errors.New("boom")

	_, err := routepattern.ParseWithOptions("/hello", routepattern.Options{EncodingCallback: func(string) (string, error) {
		return "", fail
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, routepattern.ErrUnparsedTrailingInput)
	assert.ErrorIs(t, err, routepattern.ErrEncoding)
	assert.ErrorIs(t, err, fail)
}

func TestParseWithOptionsInvalidEncodedMatch(t *testing.T) {
	for _, encoded := range []string{"", "a/b", "x{y}", "a b", "5a"} {
		t.Run(encoded, func(t *testing.T) {
			pattern, err := routepattern.ParseWithOptions("/hello", routepattern.Options{EncodingCallback: func(string) (string, error) {
				return encoded, nil
			}})
			require.Error(t, err)
			assert.Nil(t, pattern)
			assert.ErrorIs(t, err, routepattern.ErrUnparsedTrailingInput)
			assert.ErrorIs(t, err, routepattern.ErrEncoding)
		})
	}
}

func TestParseWithOptionsRoundTrip(t *testing.T) {
	pattern, err := routepattern.ParseWithOptions("/café/{id}(/ñ)", routepattern.Options{EncodingCallback: routepattern.CanonicalizePathname})
	require.NoError(t, err)

	reparsed, err := routepattern.Parse(pattern.String())
	require.NoError(t, err)
	assert.True(t, pattern.Equal(reparsed), "got %s", reparsed)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := routepattern.Parse("/abc{oops")
	require.Error(t, err)

	assert.Equal(
		t,
		`unparsed trailing input at offset 4: "{oops" (path parser > segment > section matchers > capture): unterminated capture`,
		err.Error(),
	)
}

func TestParseErrorMessageCauseOffset(t *testing.T) {
	_, err := routepattern.Parse("/{aoeu")
	require.Error(t, err)

	assert.Equal(
		t,
		`unparsed trailing input at offset 0: "/{aoeu" (path parser > segment > section matchers > capture or match > capture): unterminated capture at offset 1`,
		err.Error(),
	)
}

func TestParseErrorMessageUnclosedOptional(t *testing.T) {
	_, err := routepattern.Parse("(/a/b)")
	require.Error(t, err)

	assert.Equal(
		t,
		`unparsed trailing input at offset 0: "(/a/b)" (path parser > optional segment > )): unexpected input, want ')' at offset 3`,
		err.Error(),
	)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "/user/{id}", routepattern.MustParse("/user/{id}").String())
	assert.PanicsWithValue(t, `routepattern: Parse("hello"): unparsed trailing input at offset 0: "hello" (path parser > segment > /): unexpected input, want '/'`, func() {
		routepattern.MustParse("hello")
	})
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input    string
		rest     string
		expected string
	}{
		{"/hello(/hello)/hello", "/hello", "/hello(/hello)"},
		{"/path{}{match}", "{match}", "/path{}"},
		{"hello", "hello", ""},
		{"//)", "//)", ""},
		{"/a/b/", "", "/a/b/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rest, pattern := routepattern.ParsePath(tt.input)
			assert.Equal(t, tt.rest, rest)
			assert.Equal(t, tt.expected, pattern.String())
		})
	}
}

func TestPatternNames(t *testing.T) {
	pattern := routepattern.MustParse("/{}/{org}/{*}/{2:rev}x{x}(/{*:rest})")

	assert.Equal(t, []string{"org", "rev", "x", "rest"}, pattern.Names())
	assert.Nil(t, routepattern.MustParse("/static/{}").Names())
}
