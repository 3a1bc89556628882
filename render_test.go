// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// lenSectionJSON is the jsdoc shape of a documented global function.
const lenSectionJSON = `[{
  "name": "len",
  "kind": "function",
  "scope": "global",
  "description": "Returns the number of keys.",
  "params": [{"name": "data", "type": {"names": ["Tree"]}}],
  "returns": [{"type": {"names": ["number"]}}]
}]`

func TestRenderLenFunction(t *testing.T) {
	t.Parallel()

	sections, err := DecodeSections([]byte(lenSectionJSON), InputFormatJSON)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}

	got := Render(sections, Options{})
	want := strings.Join([]string{
		"### len()",
		"len(data: Tree) → number",
		"* `data` (Tree)",
		"Returns the number of keys. Returns a *number*.",
	}, "\n\n")

	if got != want {
		t.Fatalf("Render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLenFunctionHTML(t *testing.T) {
	t.Parallel()

	sections, err := DecodeSections([]byte(lenSectionJSON), InputFormatAuto)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}

	got := Render(sections, Options{Flavor: FlavorHTML, ParamLayout: ParamLayoutTable})
	assertContains(t, got, `### <a id="len"></a>len()`)
	assertContains(t, got, `<summary><code>len(<span title="Tree">data</span>)</code> → <em>number</em></summary>`)
	assertContains(t, got, "| `data` | <a href=\"#tree\">Tree</a> |  |")
	assertContains(t, got, "Returns the number of keys. Returns a <code>number</code>.")
}

func TestRenderModuleHeadingAndDescriptionOnly(t *testing.T) {
	t.Parallel()

	got := Render([]Section{{Name: "utils", Kind: KindModule, Description: "Tree helpers."}}, Options{})
	want := "## utils\n\nTree helpers."
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}

	assertNotContains(t, got, "| Param |")
	assertNotContains(t, got, "→")
}

func TestRenderEmptyWithTitle(t *testing.T) {
	t.Parallel()

	if got := Render(nil, Options{Title: "API", TOC: true}); got != "# API" {
		t.Fatalf("Render = %q, want %q", got, "# API")
	}

	if got := Render(nil, Options{}); got != "" {
		t.Fatalf("Render without title = %q, want empty", got)
	}
}

func TestRenderSkipsUndocumentedPackageAndPrivate(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Name: "hiddenHelper", Kind: KindFunction, Undocumented: true, Description: "ghost text"},
		{Name: "pkgRoot", Kind: KindPackage},
		{Name: "secret", Kind: KindFunction, Access: AccessPrivate, Description: "Internal."},
		{Name: "visible", Kind: KindFunction, Description: "Public."},
	}

	got := Render(sections, Options{Title: "API", TOC: true})
	assertNotContains(t, got, "hiddenHelper")
	assertNotContains(t, got, "ghost text")
	assertNotContains(t, got, "pkgRoot")
	assertNotContains(t, got, "secret")
	assertContains(t, got, "### visible()")

	withPrivate := Render(sections, Options{IncludePrivate: true})
	assertContains(t, withPrivate, "### secret() `private`")
	assertContains(t, withPrivate, "`private` Internal.")
	assertNotContains(t, withPrivate, "hiddenHelper")
}

func TestSelectSectionsReportsReasons(t *testing.T) {
	t.Parallel()

	kept, skipped := SelectSections([]Section{
		{Name: "a", Undocumented: true},
		{Name: "b", Kind: KindPackage},
		{Name: "c", Access: " private "},
		{Name: "d"},
	}, Options{})

	if len(kept) != 1 || kept[0].Name != "d" {
		t.Fatalf("kept = %#v", kept)
	}

	want := []SkipReason{SkipUndocumented, SkipPackage, SkipPrivate}
	if len(skipped) != len(want) {
		t.Fatalf("skipped = %#v", skipped)
	}

	for i, reason := range want {
		if skipped[i].Reason != reason {
			t.Fatalf("skipped[%d] reason = %q, want %q", i, skipped[i].Reason, reason)
		}
	}
}

func TestRenderTableOfContents(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Name: "len", Kind: KindFunction},
		{Name: "Tree", Kind: KindClass},
		{Name: "insert", Kind: KindFunction, Access: AccessProtected},
		{Name: "size", Kind: KindMember},
	}

	got := Render(sections, Options{Title: "API", TOC: true})
	wantTOC := strings.Join([]string{
		"* [len](#len)",
		"* [Tree](#tree)",
		"  * [insert](#insert-protected)",
		"  * [size](#size)",
	}, "\n")

	if !strings.HasPrefix(got, "# API\n\n"+wantTOC+"\n\n### len()") {
		t.Fatalf("toc not rendered after title:\n%s", got)
	}

	html := Render(sections, Options{TOC: true, Flavor: FlavorHTML, ListMarker: "-"})
	assertContains(t, html, "  - [insert](#insert)")
	assertContains(t, html, `### <a id="insert"></a>insert() <sup>protected</sup>`)
}

func TestRenderMetadataList(t *testing.T) {
	t.Parallel()

	section := Section{
		Name:        "len",
		Kind:        KindFunction,
		Scope:       "global",
		Longname:    "module:tree.len",
		Description: "Counts keys.",
		Examples:    []string{"len(tree)"},
		Meta:        SectionMeta{Filename: "tree.js", Path: "/src/", Lineno: 12},
	}

	got := Render([]Section{section}, Options{Metadata: true})
	wantTail := "```js\nlen(tree)\n```\n\n* Kind: `function`\n* Scope: `global`\n* Longname: `module:tree.len`\n* Source: `/src/tree.js:12`"
	if !strings.HasSuffix(got, wantTail) {
		t.Fatalf("metadata list missing after examples:\n%s", got)
	}

	assertNotContains(t, Render([]Section{section}, Options{}), "Source:")
}

func TestRenderExamplesUseConfiguredLanguage(t *testing.T) {
	t.Parallel()

	got := Render([]Section{{
		Name:     "len",
		Kind:     KindFunction,
		Examples: []string{"len(a)", "  ", "len(b)"},
	}}, Options{ExampleLanguage: "ts"})

	want := "### len()\n\n```ts\nlen(a)\n```\n\n```ts\nlen(b)\n```"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderWrapWidth(t *testing.T) {
	t.Parallel()

	section := Section{
		Name:        "len",
		Kind:        KindFunction,
		Description: "Returns the number of keys stored in the tree including nested ones.",
	}

	got := Render([]Section{section}, Options{WrapWidth: 30})
	for _, line := range strings.Split(got, "\n") {
		if len([]rune(line)) > 30 {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}

	unwrapped := Render([]Section{section}, Options{})
	assertContains(t, unwrapped, section.Description)
}

func TestRenderUnknownOptionsFallBack(t *testing.T) {
	t.Parallel()

	sections := []Section{{Name: "get", Kind: KindFunction, Params: []Parameter{{Name: "key"}}}}
	got := Render(sections, Options{ParamLayout: "grid", Flavor: "rst", Signatures: "sometimes"})
	want := "### get()\n\nget(key) → void\n\n* `key`"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderDocumentTrailingNewline(t *testing.T) {
	t.Parallel()

	got := RenderDocument([]Section{{Name: "utils", Kind: KindModule}}, Options{Title: "API"})
	if got != "# API\n\n## utils\n" {
		t.Fatalf("RenderDocument = %q", got)
	}
}

func TestRenderBytesRejectsUnknownOptions(t *testing.T) {
	t.Parallel()

	_, err := RenderBytes([]byte(lenSectionJSON), Options{Flavor: "rst"})
	if err == nil || !strings.Contains(err.Error(), "unknown output flavor") {
		t.Fatalf("RenderBytes error = %v", err)
	}
}

func TestRenderFileInfersFormatFromExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	content := "- name: len\n  kind: function\n  description: Counts keys.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := RenderFile(path, Options{Title: "API"})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	if got != "# API\n\n### len()\n\nCounts keys.\n" {
		t.Fatalf("RenderFile = %q", got)
	}

	if _, err := RenderFile(filepath.Join(dir, "missing.json"), Options{}); err == nil {
		t.Fatal("RenderFile for missing file must fail")
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to not contain %q\n\n%s", needle, haystack)
	}
}
