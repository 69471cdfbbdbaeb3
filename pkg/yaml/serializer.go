package yaml

import "strings"

// Serialize renders a value tree as canonical indented text with two spaces
// per nesting level. The rendering is deterministic: the same tree always
// produces the same bytes.
func Serialize(v Value) string {
	var b strings.Builder
	switch n := v.(type) {
	case *Scalar:
		b.WriteString(quoteValue(n.Text))
		b.WriteByte('\n')
	case *Mapping:
		writeMapping(&b, n, 0, false)
	case *Sequence:
		writeSequence(&b, n, 0)
	}
	return b.String()
}

// writeMapping renders the entries of a mapping at the given indentation.
// When inline is set the first entry continues a sequence dash line, so its
// indentation is omitted.
func writeMapping(b *strings.Builder, m *Mapping, indent int, inline bool) {
	if inline && len(m.Pairs) == 0 {
		b.WriteByte('\n')
		return
	}
	for i, pair := range m.Pairs {
		if i > 0 || !inline {
			writeIndent(b, indent)
		}
		b.WriteString(quoteKey(pair.Key))
		b.WriteByte(':')
		switch v := pair.Value.(type) {
		case *Scalar:
			b.WriteByte(' ')
			b.WriteString(quoteValue(v.Text))
			b.WriteByte('\n')
		case *Mapping:
			b.WriteByte('\n')
			writeMapping(b, v, indent+2, false)
		case *Sequence:
			b.WriteByte('\n')
			writeSequence(b, v, indent+2)
		}
	}
}

// writeSequence renders the items of a sequence at the given indentation.
// A nested mapping inlines its first entry on the dash line; a nested
// sequence starts on its own line two deeper.
func writeSequence(b *strings.Builder, q *Sequence, indent int) {
	for _, item := range q.Items {
		writeIndent(b, indent)
		switch v := item.(type) {
		case *Scalar:
			b.WriteString("- ")
			b.WriteString(quoteValue(v.Text))
			b.WriteByte('\n')
		case *Mapping:
			b.WriteString("- ")
			writeMapping(b, v, indent+2, true)
		case *Sequence:
			b.WriteString("-\n")
			writeSequence(b, v, indent+2)
		}
	}
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteByte(' ')
	}
}
