package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingColonIndex(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected int
	}{
		{name: "colon space", line: "key: value", expected: 3},
		{name: "colon at end of line", line: "key:", expected: 3},
		{name: "colon without space is not a delimiter", line: "http://example.com", expected: -1},
		{name: "no colon", line: "plain text", expected: -1},
		{name: "colon inside double quotes", line: `"a: b" x`, expected: -1},
		{name: "colon inside single quotes", line: "'a: b' x", expected: -1},
		{name: "colon after quoted span", line: `"a: b": v`, expected: 6},
		{name: "escaped double quote does not close span", line: `"a\": b" x`, expected: -1},
		{name: "doubled single quote does not close span", line: "'a'': b' x", expected: -1},
		{name: "first matching colon wins", line: "a: b: c", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mappingColonIndex(tc.line))
		})
	}
}

func TestInlineCommentIndex(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected int
	}{
		{name: "plain comment", line: "value # note", expected: 5},
		{name: "hash without space is not a comment", line: "value#note", expected: -1},
		{name: "hash at start has no preceding space", line: "# note", expected: -1},
		{name: "comment marker inside quotes", line: `"a # b"`, expected: -1},
		{name: "no comment", line: "value", expected: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, inlineCommentIndex(tc.line))
		})
	}
}

func TestNormalizeScalar(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "hello", expected: "hello"},
		{name: "trailing whitespace trimmed", input: "hello \t", expected: "hello"},
		{name: "double quotes stripped", input: `"hello"`, expected: "hello"},
		{name: "single quotes stripped", input: "'hello'", expected: "hello"},
		{name: "no interior unescaping", input: `"a\nb"`, expected: `a\nb`},
		{name: "quoted hash survives", input: `"a # b"`, expected: "a # b"},
		{name: "inline comment truncated", input: "value # note", expected: "value"},
		{name: "quoted then comment keeps quotes", input: `"v" # note`, expected: `"v"`},
		{name: "mismatched quotes kept", input: `"hello'`, expected: `"hello'`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeScalar(tc.input))
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty", input: "", expected: true},
		{name: "boolean stays bare", input: "true", expected: false},
		{name: "integer stays bare", input: "42", expected: false},
		{name: "null stays bare", input: "null", expected: false},
		{name: "plain word", input: "zuxi", expected: false},
		{name: "leading bracket", input: "[a]", expected: true},
		{name: "leading brace", input: "{a}", expected: true},
		{name: "leading ampersand", input: "&anchor", expected: true},
		{name: "leading pipe", input: "|text", expected: true},
		{name: "leading quote", input: `"x`, expected: true},
		{name: "contains colon space", input: "a: b", expected: true},
		{name: "colon without space", input: "a:b", expected: false},
		{name: "trailing colon", input: "ab:", expected: false},
		{name: "contains comment marker", input: "a # b", expected: true},
		{name: "contains newline", input: "a\nb", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, needsQuoting(tc.input))
		})
	}
}

func TestNeedsKeyQuoting(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain key", input: "name", expected: false},
		{name: "empty", input: "", expected: true},
		{name: "contains space", input: "a b", expected: true},
		{name: "contains colon", input: "a:b", expected: true},
		{name: "contains hash", input: "a#b", expected: true},
		{name: "contains comma", input: "a,b", expected: true},
		{name: "contains bracket", input: "a[0]", expected: true},
		{name: "boolean-like token", input: "true", expected: true},
		{name: "null-like token any case", input: "Null", expected: true},
		{name: "tilde", input: "~", expected: true},
		{name: "number keys stay bare", input: "42", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, needsKeyQuoting(tc.input))
		})
	}
}

func TestQuoteValueAndKey(t *testing.T) {
	assert.Equal(t, "zuxi", quoteValue("zuxi"))
	assert.Equal(t, `""`, quoteValue(""))
	assert.Equal(t, `"a: b"`, quoteValue("a: b"))
	assert.Equal(t, "name", quoteKey("name"))
	assert.Equal(t, `"true"`, quoteKey("true"))
	assert.Equal(t, `"a b"`, quoteKey("a b"))
}
