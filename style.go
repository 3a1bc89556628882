// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"strings"
)

const (
	// FlavorMarkdown renders plain markdown without embedded HTML.
	FlavorMarkdown Flavor = "markdown"
	// FlavorHTML renders markdown with embedded HTML anchors, tooltips and collapsible blocks.
	FlavorHTML Flavor = "html"
)

// Flavor selects the output dialect.
type Flavor string

// RenderStyle holds markup symbols used by every renderer.
type RenderStyle struct {
	// HTML enables inline HTML: code spans, tooltips and collapsible signature blocks.
	HTML bool
	// Anchors emits explicit heading anchors.
	Anchors bool
	// Escaper escapes raw type strings.
	Escaper Escaper
	// Arrow separates a signature from its return type.
	Arrow string
	// OptionalMarker follows optional parameter names in signatures.
	OptionalMarker string
	// OptionalNote follows optional parameter types in tables.
	OptionalNote string
	// VariadicMarker precedes rest parameters.
	VariadicMarker string
	// VoidType is rendered for callables without declared return type.
	VoidType string
	// ListMarker is the unordered list bullet.
	ListMarker string
}

// MarkdownStyle returns style for plain markdown output.
func MarkdownStyle() RenderStyle {
	return RenderStyle{
		Escaper:        Escaper{Set: EscapeSetMarkdown},
		Arrow:          " → ",
		OptionalMarker: "?",
		OptionalNote:   " (optional)",
		VariadicMarker: "...",
		VoidType:       "void",
		ListMarker:     defaultListMarker,
	}
}

// HTMLStyle returns style for markdown with embedded HTML.
func HTMLStyle() RenderStyle {
	return RenderStyle{
		HTML:           true,
		Anchors:        true,
		Escaper:        Escaper{Set: EscapeSetMarkdown, Linking: true},
		Arrow:          " → ",
		OptionalMarker: "<sub>opt</sub>",
		OptionalNote:   " <sub>optional</sub>",
		VariadicMarker: "...",
		VoidType:       "void",
		ListMarker:     defaultListMarker,
	}
}

// plain returns escaper for identifiers: same escape set, no type links.
func (style RenderStyle) plain() Escaper {
	return style.Escaper.withoutLinks()
}

// tooltip returns style used for text placed into HTML title attributes.
func (style RenderStyle) tooltip() RenderStyle {
	style.HTML = false
	style.Escaper = Escaper{Set: EscapeSetHTML}
	return style
}

// accessBadge renders access level marker; empty for public entities.
func (style RenderStyle) accessBadge(access string) string {
	access = strings.TrimSpace(access)
	if !isNonPublic(access) {
		return ""
	}

	if style.HTML {
		return "<sup>" + htmlReplacer.Replace(access) + "</sup>"
	}

	return "`" + escapeInline(access) + "`"
}

// emphasis wraps inline text into emphasis markup.
func (style RenderStyle) emphasis(text string) string {
	if style.HTML {
		return "<em>" + text + "</em>"
	}

	return "*" + text + "*"
}

// typeReference wraps rendered type text used inside prose.
func (style RenderStyle) typeReference(text string) string {
	if style.HTML {
		return "<code>" + text + "</code>"
	}

	return style.emphasis(text)
}

// normalizeFlavor validates flavor name; empty value selects markdown.
func normalizeFlavor(flavor Flavor) (Flavor, error) {
	normalized := Flavor(strings.ToLower(strings.TrimSpace(string(flavor))))
	switch normalized {
	case "":
		return FlavorMarkdown, nil
	case FlavorMarkdown, FlavorHTML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFlavor, flavor)
	}
}
