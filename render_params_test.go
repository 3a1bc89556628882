// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"strings"
	"testing"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

func TestRenderParamsDeepNameListAndTable(t *testing.T) {
	t.Parallel()

	params := []Parameter{
		{Name: "options", Type: TextAtom("Object"), Description: "Store options."},
		{Name: "options.prefix", Type: TextAtom("string"), Optional: true, Description: "Key prefix."},
	}

	list := renderParams(params, MarkdownStyle(), ParamLayoutList)
	wantList := "* `options` (Object) — Store options.\n  * `prefix` (string, optional) — Key prefix."
	if list != wantList {
		t.Fatalf("list layout:\n%s\nwant:\n%s", list, wantList)
	}

	table := renderParams(params, MarkdownStyle(), ParamLayoutTable)
	assertContains(t, table, "| Param | Type | Description |")
	assertContains(t, table, "| --- | --- | --- |")
	assertContains(t, table, "| `options.prefix` | string (optional) | Key prefix. |")
	assertNotContains(t, table, "| `prefix` |")
}

func TestRenderParamsListMarkerAndVariadic(t *testing.T) {
	t.Parallel()

	style := MarkdownStyle()
	style.ListMarker = "-"

	got := renderParams([]Parameter{
		{Name: "args", Type: TextAtom("any"), Variable: true},
		{Name: "done"},
	}, style, ParamLayoutList)

	want := "- `args` (...any)\n- `done`"
	if got != want {
		t.Fatalf("renderParams = %q, want %q", got, want)
	}
}

func TestRenderParamsEmpty(t *testing.T) {
	t.Parallel()

	for _, layout := range []ParamLayout{ParamLayoutList, ParamLayoutTable} {
		if got := renderParams(nil, MarkdownStyle(), layout); got != "" {
			t.Fatalf("renderParams(nil, %s) = %q, want empty", layout, got)
		}
	}
}

func TestRenderParamTableEscapesPipes(t *testing.T) {
	t.Parallel()

	got := renderParams([]Parameter{
		{
			Name:        "value",
			Type:        UnionAtom{Names: []Atom{TextAtom("string"), TextAtom("number")}},
			Description: "either a | b",
		},
	}, MarkdownStyle(), ParamLayoutTable)

	assertContains(t, got, `| `+"`value`"+` | string \| number | either a \| b |`)
}

func TestRenderParamTableParsesAsTable(t *testing.T) {
	t.Parallel()

	table := renderParams([]Parameter{
		{Name: "data", Type: UnionAtom{Names: []Atom{TextAtom("Tree"), TextAtom("null")}}},
		{Name: "data.root", Type: TextAtom("Node"), Optional: true, Description: "Root | leaf node."},
		{Name: "limit", Type: TextAtom("number")},
	}, MarkdownStyle(), ParamLayoutTable)

	doc := gm.Parse([]byte(table), gmparser.NewWithExtensions(gmparser.CommonExtensions))

	tables, rows := 0, 0
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		switch node.(type) {
		case *ast.Table:
			tables++
		case *ast.TableRow:
			rows++
		}

		return ast.GoToNext
	})

	if tables != 1 {
		t.Fatalf("parsed tables = %d, want 1:\n%s", tables, table)
	}

	// header row plus three parameter rows
	if rows != 4 {
		t.Fatalf("parsed table rows = %d, want 4:\n%s", rows, table)
	}
}

func TestRenderParamsHTMLTable(t *testing.T) {
	t.Parallel()

	got := renderParams([]Parameter{
		{Name: "tree", Type: TextAtom("Tree"), Optional: true},
	}, HTMLStyle(), ParamLayoutTable)

	want := `| ` + "`tree`" + ` | <a href="#tree">Tree</a> <sub>optional</sub> |  |`
	if !strings.Contains(got, want) {
		t.Fatalf("html table row missing:\n%s\nwant row: %s", got, want)
	}
}
