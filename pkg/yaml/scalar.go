package yaml

import "strings"

// valueLeadChars force quoting when they begin a serialized value: they
// would otherwise be read back as structure, an indicator, or a directive.
const valueLeadChars = "{[&*!|>'\"%@`"

// keySpecialChars force quoting anywhere inside a serialized key.
const keySpecialChars = ":#[]{},\"' \n"

// mappingColonIndex scans a line for the colon that delimits a mapping key:
// a ':' outside any quoted span that either ends the line or is immediately
// followed by a space. Inside double quotes a backslash escapes the next
// character; inside single quotes a doubled quote is an escaped quote and no
// backslash escapes are recognized. Returns -1 when the line has no such
// colon. This one scan backs both the mapping-vs-scalar dispatch and the
// key/value split.
func mappingColonIndex(s string) int {
	var inSingle, inDouble bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inDouble:
			if c == '\\' {
				i++
			} else if c == '"' {
				inDouble = false
			}
		case inSingle:
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
				} else {
					inSingle = false
				}
			}
		case c == '"':
			inDouble = true
		case c == '\'':
			inSingle = true
		case c == ':':
			if i == len(s)-1 || s[i+1] == ' ' {
				return i
			}
		}
	}
	return -1
}

// inlineCommentIndex returns the position of the first unquoted " #" in s,
// or -1. The quote-tracking rules match mappingColonIndex.
func inlineCommentIndex(s string) int {
	var inSingle, inDouble bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inDouble:
			if c == '\\' {
				i++
			} else if c == '"' {
				inDouble = false
			}
		case inSingle:
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
				} else {
					inSingle = false
				}
			}
		case c == '"':
			inDouble = true
		case c == '\'':
			inSingle = true
		case c == ' ':
			if i+1 < len(s) && s[i+1] == '#' {
				return i
			}
		}
	}
	return -1
}

// isWrapped reports whether s is fully enclosed in one matching pair of
// single or double quotes.
func isWrapped(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

// dequote strips surrounding whitespace and, when present, one matching pair
// of wrapping quotes. No interior unescaping is performed.
func dequote(s string) string {
	s = strings.TrimSpace(s)
	if isWrapped(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// normalizeScalar turns raw scalar text into its stored form: trailing
// space/tab is trimmed; a fully quoted scalar is dequoted as-is; otherwise
// an unquoted inline comment is cut off and the remainder re-trimmed.
func normalizeScalar(s string) string {
	s = strings.TrimRight(s, " \t")
	if isWrapped(s) {
		return s[1 : len(s)-1]
	}
	if i := inlineCommentIndex(s); i >= 0 {
		s = strings.TrimRight(s[:i], " \t")
	}
	return s
}

// needsQuoting reports whether a serialized value must be wrapped in quotes
// to read back as the same scalar. Native-looking tokens (true, null, bare
// numbers) are intentionally left unquoted so a value round-tripped through
// the JSON bridge keeps its inferred type.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.IndexByte(valueLeadChars, s[0]) >= 0 {
		return true
	}
	if strings.ContainsRune(s, '\n') {
		return true
	}
	if i := mappingColonIndex(s); i >= 0 && i+1 < len(s) && s[i+1] == ' ' {
		return true
	}
	return inlineCommentIndex(s) >= 0
}

// needsKeyQuoting is the stricter policy for serialized mapping keys: any
// structural character forces quotes, and so does a key that would read back
// as a boolean or null token. The asymmetry versus needsQuoting is
// intentional.
func needsKeyQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, keySpecialChars) {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "null", "~":
		return true
	}
	return false
}

// quoted wraps s in double quotes verbatim. The normalizer performs no
// interior unescaping, so none is introduced here either.
func quoted(s string) string {
	return `"` + s + `"`
}

// quoteValue applies the value quoting policy.
func quoteValue(s string) string {
	if needsQuoting(s) {
		return quoted(s)
	}
	return s
}

// quoteKey applies the key quoting policy.
func quoteKey(s string) string {
	if needsKeyQuoting(s) {
		return quoted(s)
	}
	return s
}
