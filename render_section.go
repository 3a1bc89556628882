// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

const (
	// outerHeadingMarker is used for modules and classes.
	outerHeadingMarker = "##"
	// innerHeadingMarker is used for functions, members and unknown kinds.
	innerHeadingMarker = "###"
)

// renderSection renders heading and body of one section.
func renderSection(section Section, cfg renderConfig) string {
	heading := headingMarker(section.Kind) + " " + sectionHeadingText(section, cfg.style)

	body := renderBody(section, cfg)
	if body == "" {
		return heading
	}

	return heading + "\n\n" + body
}

// headingMarker selects heading level by section kind.
func headingMarker(kind string) string {
	if isOuterKind(kind) {
		return outerHeadingMarker
	}

	return innerHeadingMarker
}

// sectionHeadingText renders heading content: anchor, name, call suffix and access badge.
func sectionHeadingText(section Section, style RenderStyle) string {
	var out strings.Builder

	if style.Anchors {
		if id := anchorID(section.Name); id != "" {
			out.WriteString(`<a id="` + id + `"></a>`)
		}
	}

	out.WriteString(style.plain().Escape(section.Name))
	if section.Kind == KindFunction {
		out.WriteString("()")
	}

	if badge := style.accessBadge(section.Access); badge != "" {
		out.WriteByte(' ')
		out.WriteString(badge)
	}

	return out.String()
}
