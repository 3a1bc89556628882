// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package main

import (
	gm "github.com/gomarkdown/markdown"
	gmhtml "github.com/gomarkdown/markdown/html"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// markdownToHTML converts rendered markdown into a standalone HTML page.
// Raw HTML produced by the html flavor passes through unchanged.
func markdownToHTML(markdown string, title string) []byte {
	doc := gm.Parse([]byte(markdown), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.AutoHeadingIDs,
	))

	renderer := gmhtml.NewRenderer(gmhtml.RendererOptions{
		Title: title,
		Flags: gmhtml.CommonFlags | gmhtml.CompletePage,
	})

	return gm.Render(doc, renderer)
}
