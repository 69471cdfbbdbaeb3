// Package generator renders Go type definitions from generic JSON-shaped
// values, backing the toolkit's struct-generation command.
package generator

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
)

// Generate returns Go source text declaring a struct type named typeName
// that matches the shape of root. Nested objects become their own named
// types, declared ahead of the types that reference them. A root that is
// not an object gets a single non-struct type declaration.
func Generate(root any, typeName string) string {
	g := &generator{}
	rootType := g.typeFor(root, typeName)

	if len(g.decls) == 0 {
		return "type " + typeName + " " + rootType + "\n"
	}
	return strings.Join(g.decls, "\n")
}

type generator struct {
	decls []string
}

// typeFor returns the Go type expression for v, declaring named struct
// types for objects as a side effect. name seeds the declared type name.
func (g *generator) typeFor(v any, name string) string {
	switch n := v.(type) {
	case bool:
		return "bool"
	case int, int64:
		return "int64"
	case float64:
		return "float64"
	case json.Number:
		if strings.ContainsAny(n.String(), ".eE") {
			return "float64"
		}
		return "int64"
	case string:
		return "string"
	case []any:
		return "[]" + g.elemTypeFor(n, name)
	case map[string]any:
		g.declareStruct(n, name)
		return name
	}
	return "any"
}

// elemTypeFor unifies the element types of an array; mixed or empty arrays
// fall back to any.
func (g *generator) elemTypeFor(items []any, name string) string {
	if len(items) == 0 {
		return "any"
	}
	probe := &generator{}
	first := probe.typeFor(items[0], singular(name))
	for _, item := range items[1:] {
		other := &generator{}
		if other.typeFor(item, singular(name)) != first {
			return "any"
		}
	}
	g.decls = append(g.decls, probe.decls...)
	return first
}

func (g *generator) declareStruct(obj map[string]any, name string) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("type " + name + " struct {\n")
	for _, k := range keys {
		field := exportName(k)
		b.WriteString("\t" + field + " " + g.typeFor(obj[k], name+field))
		b.WriteString(" `yaml:\"" + k + "\" json:\"" + k + "\"`\n")
	}
	b.WriteString("}\n")
	g.decls = append(g.decls, b.String())
}

// exportName converts a key like "api-version" or "db_host" into an
// exported Go identifier.
func exportName(key string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "Field" + name
	}
	return name
}

// singular trims a plural-ish suffix so []Items elements declare type Item.
func singular(name string) string {
	if strings.HasSuffix(name, "ses") || len(name) < 2 {
		return name
	}
	if strings.HasSuffix(name, "ies") {
		return name[:len(name)-3] + "y"
	}
	if strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}
