package yaml

import "fmt"

// A SyntaxError reports malformed flow-collection syntax: an unterminated
// bracket or brace, or a flow-mapping entry with no key/value separator.
// These are the only hard errors the parser produces; everything else in the
// block grammar ends the enclosing construct and returns the partial result.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "yaml: " + e.Msg
}

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
