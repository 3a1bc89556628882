// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// sectionAttributes renders passthrough metadata of one section.
func sectionAttributes(section Section) []attributeView {
	out := make([]attributeView, 0, 4)

	if value := strings.TrimSpace(section.Kind); value != "" {
		out = append(out, attributeView{Name: "Kind", Value: inlineCode(value)})
	}

	if value := strings.TrimSpace(section.Scope); value != "" {
		out = append(out, attributeView{Name: "Scope", Value: inlineCode(value)})
	}

	if value := strings.TrimSpace(section.Longname); value != "" && value != section.Name {
		out = append(out, attributeView{Name: "Longname", Value: inlineCode(value)})
	}

	if source := sourceLocation(section.Meta); source != "" {
		out = append(out, attributeView{Name: "Source", Value: inlineCode(source)})
	}

	return out
}

// sourceLocation formats file:line source reference.
func sourceLocation(meta SectionMeta) string {
	file := strings.TrimSpace(meta.Filename)
	if path := strings.TrimSpace(meta.Path); path != "" && file != "" {
		file = strings.TrimSuffix(path, "/") + "/" + file
	}

	if file == "" {
		return ""
	}

	if meta.Lineno > 0 {
		return file + ":" + strconv.Itoa(meta.Lineno)
	}

	return file
}

// renderAttributes renders attributes as markdown list items.
func renderAttributes(attributes []attributeView, listMarker string) string {
	lines := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		lines = append(lines, fmt.Sprintf("%s %s: %s", listMarker, attribute.Name, attribute.Value))
	}

	return strings.Join(lines, "\n")
}

// inlineCode wraps value into markdown code span.
func inlineCode(value string) string {
	return fmt.Sprintf("`%s`", escapeInline(value))
}
