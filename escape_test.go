// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"errors"
	"testing"
)

func TestEscapeCollapsesGenericArrays(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Array.<string>":           "string[]",
		"Array<number>":            "number[]",
		"Array.<Array.<number>>":   "number[][]",
		"Array.< string >":         "string[]",
		"Object.<string, number>":  "Object.&lt;string, number&gt;",
		"Promise.<Array.<string>>": "Promise.&lt;string[]&gt;",
	}

	escaper := Escaper{Set: EscapeSetMarkdown}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if got := escaper.Escape(input); got != want {
				t.Fatalf("Escape(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestEscapeSets(t *testing.T) {
	t.Parallel()

	const input = "a*b_c`d<e>&f"
	cases := []struct {
		set  EscapeSet
		want string
	}{
		{set: EscapeSetHTML, want: "a*b_c`d&lt;e&gt;&amp;f"},
		{set: EscapeSetMarkdown, want: `a\*b_c` + "`" + `d&lt;e&gt;&amp;f`},
		{set: EscapeSetStrict, want: `a\*b\_c\` + "`" + `d&lt;e&gt;&amp;f`},
		{set: "", want: `a\*b_c` + "`" + `d&lt;e&gt;&amp;f`},
	}

	for _, tc := range cases {
		t.Run(string(tc.set), func(t *testing.T) {
			t.Parallel()

			got := Escaper{Set: tc.set}.Escape(input)
			if got != tc.want {
				t.Fatalf("Escape with %q set = %q, want %q", tc.set, got, tc.want)
			}
		})
	}
}

func TestEscapeLinksCapitalizedTypeNames(t *testing.T) {
	t.Parallel()

	escaper := Escaper{Set: EscapeSetMarkdown, Linking: true}
	cases := map[string]string{
		"Tree":                 `<a href="#tree">Tree</a>`,
		"HTMLElement":          `<a href="#htmlelement">HTMLElement</a>`,
		"string":               "string",
		"Array.<Tree>":         `<a href="#tree">Tree</a>[]`,
		"Promise.<Node>":       `<a href="#promise">Promise</a>.&lt;<a href="#node">Node</a>&gt;`,
		"number | TreeOptions": `number | <a href="#treeoptions">TreeOptions</a>`,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if got := escaper.Escape(input); got != want {
				t.Fatalf("Escape(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestEscapeEmptyInput(t *testing.T) {
	t.Parallel()

	if got := (Escaper{Linking: true}).Escape(""); got != "" {
		t.Fatalf("Escape(\"\") = %q, want empty", got)
	}
}

func TestAnchorID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Tree":          "tree",
		"module:utils":  "moduleutils",
		"Tree#insert":   "treeinsert",
		"options.Store": "optionsstore",
		"":              "",
	}

	for input, want := range cases {
		if got := anchorID(input); got != want {
			t.Fatalf("anchorID(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeEscapeSet(t *testing.T) {
	t.Parallel()

	got, err := normalizeEscapeSet(" Strict ")
	if err != nil || got != EscapeSetStrict {
		t.Fatalf("normalizeEscapeSet = %q, %v; want strict", got, err)
	}

	if _, err := normalizeEscapeSet("latex"); !errors.Is(err, ErrUnknownEscapeSet) {
		t.Fatalf("normalizeEscapeSet(latex) error = %v, want ErrUnknownEscapeSet", err)
	}
}
