// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"strings"
)

const (
	// ParamLayoutList renders parameters as an indented bullet list.
	ParamLayoutList ParamLayout = "list"
	// ParamLayoutTable renders parameters as a Param/Type/Description table.
	ParamLayoutTable ParamLayout = "table"
)

// ParamLayout selects parameter block layout.
type ParamLayout string

// renderParams renders a parameter or property sequence in selected layout.
func renderParams(params []Parameter, style RenderStyle, layout ParamLayout) string {
	if len(params) == 0 {
		return ""
	}

	if layout == ParamLayoutTable {
		return renderParamTable(params, style)
	}

	return renderParamList(params, style)
}

// renderParamList renders one bullet per parameter indented by dotted-name depth.
func renderParamList(params []Parameter, style RenderStyle) string {
	lines := make([]string, 0, len(params))
	for _, param := range params {
		var line strings.Builder
		line.WriteString(strings.Repeat("  ", paramDepth(param.Name)))
		line.WriteString(style.ListMarker)
		line.WriteString(" `")
		line.WriteString(escapeInline(lastPathSegment(param.Name)))
		line.WriteByte('`')

		if annotation := paramAnnotation(param, style); annotation != "" {
			line.WriteString(" (")
			line.WriteString(annotation)
			line.WriteByte(')')
		}

		if description := sanitizeText(param.Description); description != "" {
			line.WriteString(" — ")
			line.WriteString(description)
		}

		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// renderParamTable renders a fixed three-column table with full dotted names.
func renderParamTable(params []Parameter, style RenderStyle) string {
	lines := make([]string, 0, len(params)+2)
	lines = append(lines, "| Param | Type | Description |", "| --- | --- | --- |")

	for _, param := range params {
		typeText := paramTypeText(param, style)
		if param.Optional {
			typeText += style.OptionalNote
		}

		cells := []string{
			"`" + escapeInline(param.Name) + "`",
			escapeTableCell(strings.TrimSpace(typeText)),
			escapeTableCell(sanitizeText(param.Description)),
		}

		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

// paramAnnotation renders list-mode type and optionality annotation.
func paramAnnotation(param Parameter, style RenderStyle) string {
	parts := make([]string, 0, 2)
	if typeText := paramTypeText(param, style); typeText != "" {
		parts = append(parts, typeText)
	}

	if param.Optional {
		parts = append(parts, "optional")
	}

	return strings.Join(parts, ", ")
}

// paramTypeText renders parameter type with variadic prefix.
func paramTypeText(param Parameter, style RenderStyle) string {
	typeText := renderAtom(param.Type, style)
	if typeText == "" {
		return ""
	}

	if param.Variable {
		return style.VariadicMarker + typeText
	}

	return typeText
}

// normalizeParamLayout validates layout name; empty value selects list layout.
func normalizeParamLayout(layout ParamLayout) (ParamLayout, error) {
	normalized := ParamLayout(strings.ToLower(strings.TrimSpace(string(layout))))
	switch normalized {
	case "":
		return ParamLayoutList, nil
	case ParamLayoutList, ParamLayoutTable:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownParamLayout, layout)
	}
}
