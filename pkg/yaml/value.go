package yaml

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindScalar is a leaf text value.
	KindScalar Kind = iota
	// KindMapping is an ordered list of key/value pairs.
	KindMapping
	// KindSequence is an ordered list of values.
	KindSequence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	}
	return "unknown"
}

// Value is the base interface for all nodes in a parsed tree. A Value is one
// of *Scalar, *Mapping or *Sequence, and is immutable after construction:
// conversions read it but never mutate it, so any number of goroutines may
// traverse the same tree concurrently.
type Value interface {
	// Kind reports which variant the value holds.
	Kind() Kind
	valueNode()
}

// Scalar is a leaf text value. The text is stored exactly as it appeared in
// the source after normalization (dequoting and comment stripping); type
// inference happens only at the JSON bridge.
type Scalar struct {
	Text string
}

func (s *Scalar) Kind() Kind { return KindScalar }
func (s *Scalar) valueNode() {}

// Pair is a single entry of a Mapping.
type Pair struct {
	Key   string
	Value Value
}

// Mapping is an ordered list of key/value pairs. Source order is preserved
// and duplicate keys are kept as-is; the model never deduplicates.
type Mapping struct {
	Pairs []Pair
}

func (m *Mapping) Kind() Kind { return KindMapping }
func (m *Mapping) valueNode() {}

// Sequence is an ordered list of values.
type Sequence struct {
	Items []Value
}

func (q *Sequence) Kind() Kind { return KindSequence }
func (q *Sequence) valueNode() {}

// Document owns a parsed value tree as a single unit. Every Value produced
// by one Parse call belongs to its Document and must not outlive it; the
// whole tree is released together when the Document itself is discarded.
// There is no per-node lifetime management.
type Document struct {
	root Value
}

// Root returns the root value of the document.
func (d *Document) Root() Value { return d.root }
