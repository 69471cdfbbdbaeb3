//go:build go1.18

package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zuxi-dev/zuxi/pkg/yaml"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"name: zuxi\nversion: 1",
		"- apple\n- banana\n- cherry",
		"tags: [dev, test, prod]",
		"meta: {owner: ops, tier: 1}",
		"description: |\n  line one\n  line two",
		"description: >\n  first part\n  second part",
		"- name: web\n  port: 80",
		"server:\n  host: localhost\n  ports:\n    - 80\n    - 443",
		"# comment\nkey: value # trailing",
		"'a: b': \"c: d\"",
		"a:\n  b:\n    c:",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The fuzz engine detects panics; the parser must never panic, and
		// its hard errors are limited to flow-collection syntax.
		doc, err := yaml.Parse(input)
		if err != nil {
			require.Nil(t, doc)
			return
		}
		require.NotNil(t, doc.Root())

		// Serialization and the JSON bridge must handle anything the parser
		// itself produced.
		text := yaml.Serialize(doc.Root())
		_ = yaml.ToJSON(doc.Root())

		// Reparsing our own output must not panic either. It may legally
		// fail: a scalar containing a newline is emitted inside quotes that
		// span physical lines, and those lines can re-read as flow syntax.
		if doc2, err2 := yaml.Parse(text); err2 == nil {
			_ = yaml.Serialize(doc2.Root())
		}
	})
}
