// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"strings"
	"unicode"
)

// linkTextReplacer escapes brackets inside markdown link text.
var linkTextReplacer = strings.NewReplacer("[", `\[`, "]", `\]`)

// renderTOC renders table of contents for already selected sections.
// Inner sections following a module or class are nested one level.
func renderTOC(sections []Section, style RenderStyle) string {
	lines := make([]string, 0, len(sections))
	nested := false

	for _, section := range sections {
		target := tocTarget(section, style)
		if target == "" {
			continue
		}

		indent := ""
		if isOuterKind(section.Kind) {
			nested = true
		} else if nested {
			indent = "  "
		}

		label := linkTextReplacer.Replace(style.plain().Escape(section.Name))
		lines = append(lines, indent+style.ListMarker+" ["+label+"](#"+target+")")
	}

	return strings.Join(lines, "\n")
}

// tocTarget returns anchor target for section heading.
func tocTarget(section Section, style RenderStyle) string {
	if style.Anchors {
		return anchorID(section.Name)
	}

	return markdownHeadingAnchor(sectionHeadingText(section, style))
}

// markdownHeadingAnchor converts heading text into a markdown anchor slug.
func markdownHeadingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
