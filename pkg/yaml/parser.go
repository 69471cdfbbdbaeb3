package yaml

import "strings"

// Parse builds a Document from source text.
//
// The grammar is permissive by design: content that does not match any
// recognized shape ends the enclosing construct, and the construct returns
// whatever it accumulated. The only errors Parse reports are *SyntaxError
// values from flow collections.
func Parse(text string) (*Document, error) {
	p := &parser{s: newScanner(text)}
	root, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// parser performs one linear left-to-right sweep over the source lines,
// recursing only to descend into nested structure. The sole lookahead is a
// one-line peek when classifying scalar vs. mapping vs. sequence.
type parser struct {
	s *scanner
}

// parseValue parses the next value whose content is indented at least
// minIndent. A position with no content at that depth yields an empty
// scalar; this is how "no inline value" is represented before nested
// content (if any) is discovered.
func (p *parser) parseValue(minIndent int) (Value, error) {
	p.s.skipBlanksAndComments()
	if p.s.eof() {
		return &Scalar{}, nil
	}
	line := p.s.peek()
	indent := indentOf(line)
	if indent < minIndent {
		return &Scalar{}, nil
	}
	content := strings.TrimSpace(line)
	switch {
	case content == "-" || strings.HasPrefix(content, "- "):
		return p.parseSequence(indent)
	case mappingColonIndex(content) >= 0:
		return p.parseMapping(indent)
	}
	p.s.next()
	return &Scalar{Text: normalizeScalar(content)}, nil
}

// parseSequence consumes items while the next line sits at exactly the base
// indentation and carries a leading dash.
func (p *parser) parseSequence(base int) (Value, error) {
	seq := &Sequence{}
	for {
		p.s.skipBlanksAndComments()
		if p.s.eof() {
			return seq, nil
		}
		line := p.s.peek()
		if indentOf(line) != base {
			return seq, nil
		}
		content := strings.TrimSpace(line)
		var item Value
		switch {
		case content == "-":
			// No inline value; the item is whatever nests below.
			p.s.next()
			nested, err := p.parseValue(base + 2)
			if err != nil {
				return nil, err
			}
			item = nested
		case strings.HasPrefix(content, "- "):
			rest := strings.TrimSpace(content[2:])
			switch {
			case isBlockIndicator(rest):
				p.s.next()
				item = p.parseBlockScalar(base+2, rest[0] == '>')
			case mappingColonIndex(rest) >= 0:
				// The dash line opens an inline mapping; the split entry is
				// its first pair and further entries follow two deeper.
				p.s.next()
				nested, err := p.parseInlineMapping(rest, base+2)
				if err != nil {
					return nil, err
				}
				item = nested
			default:
				p.s.next()
				item = &Scalar{Text: normalizeScalar(rest)}
			}
		default:
			return seq, nil
		}
		seq.Items = append(seq.Items, item)
	}
}

// parseMapping consumes entries while the next line sits at exactly the base
// indentation and contains an unquoted colon.
func (p *parser) parseMapping(base int) (Value, error) {
	m := &Mapping{}
	for {
		p.s.skipBlanksAndComments()
		if p.s.eof() {
			return m, nil
		}
		line := p.s.peek()
		if indentOf(line) != base {
			return m, nil
		}
		content := strings.TrimSpace(line)
		if mappingColonIndex(content) < 0 {
			return m, nil
		}
		p.s.next()
		if err := p.appendMappingEntry(m, content, base); err != nil {
			return nil, err
		}
	}
}

// parseInlineMapping builds the mapping opened on a sequence dash line.
// first is the already-consumed dash remainder holding the first entry;
// subsequent entries are consumed at exactly the given indentation until a
// line without an unquoted colon, or at another depth, ends the mapping.
func (p *parser) parseInlineMapping(first string, base int) (Value, error) {
	m := &Mapping{}
	if err := p.appendMappingEntry(m, first, base); err != nil {
		return nil, err
	}
	for {
		p.s.skipBlanksAndComments()
		if p.s.eof() {
			return m, nil
		}
		line := p.s.peek()
		if indentOf(line) != base {
			return m, nil
		}
		content := strings.TrimSpace(line)
		if mappingColonIndex(content) < 0 {
			return m, nil
		}
		p.s.next()
		if err := p.appendMappingEntry(m, content, base); err != nil {
			return nil, err
		}
	}
}

// appendMappingEntry splits one already-consumed mapping line on its colon
// and parses the entry's value.
func (p *parser) appendMappingEntry(m *Mapping, content string, base int) error {
	i := mappingColonIndex(content)
	key := dequote(content[:i])
	rest := strings.TrimSpace(content[i+1:])
	value, err := p.parseMappingValue(rest, base)
	if err != nil {
		return err
	}
	m.Pairs = append(m.Pairs, Pair{Key: key, Value: value})
	return nil
}

// parseMappingValue parses the remainder of a mapping line: a block scalar
// indicator, a flow collection, an inline scalar, or nothing (in which case
// nested content is discovered at whatever deeper indentation it uses).
func (p *parser) parseMappingValue(rest string, base int) (Value, error) {
	switch {
	case isBlockIndicator(rest):
		return p.parseBlockScalar(base+1, rest[0] == '>'), nil
	case strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "{"):
		return parseFlow(rest)
	case rest != "":
		return &Scalar{Text: normalizeScalar(rest)}, nil
	}
	return p.parseValue(base + 1)
}

// isBlockIndicator reports whether a mapping remainder or dash remainder
// introduces a block scalar. Chomping indicators are not part of the
// grammar.
func isBlockIndicator(s string) bool {
	return len(s) > 0 && (s[0] == '|' || s[0] == '>')
}

// parseBlockScalar consumes a literal or folded block scalar. The first
// non-blank line at or beyond minIndent fixes the block's base indentation;
// a later line indented less than that ends the block without being
// consumed. Blank lines inside the block contribute a line break, and
// trailing blank lines are dropped.
func (p *parser) parseBlockScalar(minIndent int, folded bool) *Scalar {
	var lines []string
	base := -1
	for !p.s.eof() {
		line := p.s.peek()
		if strings.TrimSpace(line) == "" {
			if base >= 0 {
				lines = append(lines, "")
			}
			p.s.next()
			continue
		}
		indent := indentOf(line)
		if base < 0 {
			if indent < minIndent {
				break
			}
			base = indent
		} else if indent < base {
			break
		}
		lines = append(lines, strings.TrimRight(line[base:], " \t\r"))
		p.s.next()
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if !folded {
		return &Scalar{Text: strings.Join(lines, "\n")}
	}
	var b strings.Builder
	afterBreak := true
	for _, line := range lines {
		if line == "" {
			b.WriteByte('\n')
			afterBreak = true
			continue
		}
		if !afterBreak {
			b.WriteByte(' ')
		}
		b.WriteString(line)
		afterBreak = false
	}
	return &Scalar{Text: b.String()}
}
