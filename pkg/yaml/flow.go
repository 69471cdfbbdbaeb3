package yaml

import "strings"

// parseFlow parses an inline collection whose text begins with '[' or '{'.
// Text past the matching close bracket (typically an inline comment) is
// ignored.
func parseFlow(s string) (Value, error) {
	if strings.HasPrefix(s, "[") {
		return parseFlowSequence(s)
	}
	return parseFlowMapping(s)
}

// matchingBracket returns the index of the bracket that closes s[0],
// counting nested brackets and braces of either kind.
func matchingBracket(s string) (int, error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, syntaxErrorf("unterminated flow collection: %q", s)
}

// splitFlowItems splits the interior of a flow collection on top-level
// commas. Commas nested inside brackets or braces are not split points.
func splitFlowItems(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func parseFlowSequence(s string) (Value, error) {
	end, err := matchingBracket(s)
	if err != nil {
		return nil, err
	}
	seq := &Sequence{}
	interior := strings.TrimSpace(s[1:end])
	if interior == "" {
		return seq, nil
	}
	for _, part := range splitFlowItems(interior) {
		part = strings.TrimSpace(part)
		var (
			item Value
			err  error
		)
		switch {
		case strings.HasPrefix(part, "["):
			item, err = parseFlowSequence(part)
		case strings.HasPrefix(part, "{"):
			item, err = parseFlowMapping(part)
		default:
			item = &Scalar{Text: normalizeScalar(part)}
		}
		if err != nil {
			return nil, err
		}
		seq.Items = append(seq.Items, item)
	}
	return seq, nil
}

// parseFlowMapping parses an inline {...} mapping. Entry values are scalars
// only; nested flow collections are not recursed into here.
func parseFlowMapping(s string) (Value, error) {
	end, err := matchingBracket(s)
	if err != nil {
		return nil, err
	}
	m := &Mapping{}
	interior := strings.TrimSpace(s[1:end])
	if interior == "" {
		return m, nil
	}
	for _, part := range splitFlowItems(interior) {
		part = strings.TrimSpace(part)
		key, rest, ok := splitFlowEntry(part)
		if !ok {
			return nil, syntaxErrorf("malformed flow mapping entry: %q", part)
		}
		m.Pairs = append(m.Pairs, Pair{Key: dequote(key), Value: &Scalar{Text: normalizeScalar(rest)}})
	}
	return m, nil
}

// splitFlowEntry splits a flow-mapping entry on the first ": " when present,
// else on the first bare ':'.
func splitFlowEntry(s string) (key, value string, ok bool) {
	if i := strings.Index(s, ": "); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+2:]), true
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:]), true
	}
	return "", "", false
}
