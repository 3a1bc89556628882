// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

// sentence terminates text with a period unless it already ends with one.
func sentence(text string) string {
	if strings.HasSuffix(text, ".") {
		return text
	}

	return text + "."
}

// renderReturns renders one prose fragment per return descriptor, skipping empty ones.
func renderReturns(returns []ReturnDescriptor, style RenderStyle) []string {
	out := make([]string, 0, len(returns))
	for _, ret := range returns {
		if fragment := renderReturn(ret, style); fragment != "" {
			out = append(out, fragment)
		}
	}

	return out
}

// renderReturn renders one return descriptor as prose.
func renderReturn(ret ReturnDescriptor, style RenderStyle) string {
	description := sanitizeText(ret.Description)
	typeText := renderAtom(ret.Type, style)

	switch {
	case description != "" && typeText != "":
		prose := strings.TrimSuffix(description, ".")
		if style.HTML {
			tooltip := escapeAttribute(renderAtom(ret.Type, style.tooltip()))
			return `Returns <span title="` + tooltip + `">` + prose + "</span>."
		}

		return "Returns " + prose + " (" + style.typeReference(typeText) + ")."
	case description != "":
		return "Returns " + sentence(description)
	case typeText != "":
		return "Returns a " + style.typeReference(typeText) + "."
	default:
		return ""
	}
}

// isSimpleReturn reports whether return set is a single terse return eligible for merging.
func isSimpleReturn(returns []ReturnDescriptor) bool {
	if len(returns) != 1 {
		return false
	}

	description := sanitizeText(returns[0].Description)
	return description == "" || !strings.HasSuffix(description, ".")
}
