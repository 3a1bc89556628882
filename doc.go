// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

/*
Package astdoc renders markdown API reference from documentation AST sections.

Input is a flat ordered list of sections (functions, members, classes, modules,
typedefs) such as the JSON emitted by "jsdoc -X". Every section becomes a
heading followed by its signature, description, return prose, examples and
optional source metadata. Type expressions are kept as tagged atoms and
rendered recursively, so nested callables, unions and object typedefs stay
readable in both plain markdown and markdown with embedded HTML.

Render is total: malformed nodes render as empty text and never fail.

Render typed sections:

	md := astdoc.Render(sections, astdoc.Options{
		Title: "API",
		TOC:   true,
	})

	fmt.Println(md)

Render from JSON, YAML or compressed file:

	md, err := astdoc.RenderFile("api.json.gz", astdoc.Options{
		Flavor:      astdoc.FlavorHTML,
		ParamLayout: astdoc.ParamLayoutTable,
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Report structural problems before rendering:

	sections, err := astdoc.DecodeSections(data, astdoc.InputFormatAuto)
	if err != nil {
		return err
	}

	if err := astdoc.Validate(sections); err != nil {
		return err
	}

Load options from YAML config:

	opt, err := astdoc.LoadOptionsFile("astdoc.yaml", astdoc.Options{TOC: true})
	if err != nil {
		return err
	}
*/
package astdoc
