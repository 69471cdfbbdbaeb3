package yaml

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ToJSON converts a value tree into a generic JSON value: nil, bool, int64,
// float64, string, []any or map[string]any. Scalar text is type-inferred;
// mapping entry order is not carried into the resulting map (Go maps are
// unordered), and a duplicated key keeps its last value.
func ToJSON(v Value) any {
	switch n := v.(type) {
	case *Scalar:
		return inferScalar(n.Text)
	case *Mapping:
		obj := make(map[string]any, len(n.Pairs))
		for _, pair := range n.Pairs {
			obj[pair.Key] = ToJSON(pair.Value)
		}
		return obj
	case *Sequence:
		arr := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			arr = append(arr, ToJSON(item))
		}
		return arr
	}
	return nil
}

// inferScalar applies the type-inference ladder: empty and null-like text
// become nil, boolean literals become bool, then integer, then float — a
// float only when the original text carries a '.', 'e' or 'E' — and
// everything else stays a string verbatim.
func inferScalar(text string) any {
	if text == "" {
		return nil
	}
	switch strings.ToLower(text) {
	case "null", "~":
		return nil
	case "true", "yes":
		return true
	case "false", "no":
		return false
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(text, ".eE") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}
	return text
}

// FromJSON converts a generic JSON value into a value tree. Scalar text is
// produced verbatim for strings and in canonical decimal form for numbers;
// quoting decisions are deferred to the serializer. Object keys are emitted
// in sorted order, since Go map iteration order is unspecified.
func FromJSON(v any) Value {
	switch n := v.(type) {
	case nil:
		return &Scalar{Text: "null"}
	case bool:
		if n {
			return &Scalar{Text: "true"}
		}
		return &Scalar{Text: "false"}
	case string:
		return &Scalar{Text: n}
	case json.Number:
		return &Scalar{Text: n.String()}
	case int:
		return &Scalar{Text: strconv.Itoa(n)}
	case int64:
		return &Scalar{Text: strconv.FormatInt(n, 10)}
	case float64:
		return &Scalar{Text: formatFloat(n)}
	case []any:
		seq := &Sequence{Items: make([]Value, 0, len(n))}
		for _, item := range n {
			seq.Items = append(seq.Items, FromJSON(item))
		}
		return seq
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := &Mapping{Pairs: make([]Pair, 0, len(n))}
		for _, k := range keys {
			m.Pairs = append(m.Pairs, Pair{Key: k, Value: FromJSON(n[k])})
		}
		return m
	}
	return &Scalar{Text: fmt.Sprint(v)}
}

// formatFloat renders a float so that it still reads back as one: the text
// must keep a decimal point or exponent for inferScalar to accept it.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
