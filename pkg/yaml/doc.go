/*
Package yaml implements parsing and serialization for the indentation-sensitive
configuration language used across the zuxi toolkit, plus a bidirectional
bridge to generic JSON-shaped Go values.

The grammar is a deliberately bounded, practical subset of YAML: block
mappings and sequences, inline flow collections, literal (|) and folded (>)
block scalars, quoting and inline comments. Anchors, aliases, multi-document
streams, tag directives and block-scalar chomping indicators are not
supported.

The package offers two workflows:

1. Tree-Level Parsing and Serialization

Parse produces an immutable Value tree owned by a Document; Serialize renders
a tree back into canonical two-space-indented text. ToJSON and FromJSON
convert between the tree and generic JSON values (nil, bool, int64, float64,
string, []any, map[string]any), inferring scalar types on the way out.

	doc, err := yaml.Parse("name: zuxi\nversion: 1")
	if err != nil {
		// handle error
	}
	v := yaml.ToJSON(doc.Root())
	// v is map[string]any{"name": "zuxi", "version": int64(1)}

2. Data-Oriented Decoding and Encoding

For callers that just want generic Go values, Marshal and Unmarshal (and the
Encoder/Decoder stream types) compose the two workflows, mirroring the shape
of the standard encoding packages.

The parser is deliberately forgiving: a construct that does not match any
recognized shape simply ends the enclosing construct, and the partial result
is returned. The only hard parse errors are malformed or unterminated flow
collections, reported as *SyntaxError.
*/
package yaml
