// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// EscapeSetHTML escapes only characters significant for embedded HTML.
	EscapeSetHTML EscapeSet = "html"
	// EscapeSetMarkdown escapes HTML characters and the markdown emphasis marker.
	EscapeSetMarkdown EscapeSet = "markdown"
	// EscapeSetStrict additionally escapes underscores and backticks.
	EscapeSetStrict EscapeSet = "strict"
)

// EscapeSet selects which characters are escaped in rendered type strings.
type EscapeSet string

var (
	// genericArrayPattern matches single-argument array generics: Array.<T> and Array<T>.
	genericArrayPattern = regexp.MustCompile(`\bArray\.?<\s*([^<>,]+?)\s*>`)
	// typeNamePattern matches maximal runs of capitalized word tokens.
	typeNamePattern = regexp.MustCompile(`\b(?:[A-Z][a-z0-9]*)+\b`)
	// nonAnchorPattern matches characters removed from anchor identifiers.
	nonAnchorPattern = regexp.MustCompile(`[^a-z0-9]`)
)

var (
	htmlReplacer     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	markdownReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "*", `\*`)
	strictReplacer   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "*", `\*`, "_", `\_`, "`", "\\`")
)

// Escaper escapes raw type and signature strings for the output syntax.
type Escaper struct {
	// Set selects escaped characters; empty value means EscapeSetMarkdown.
	Set EscapeSet
	// Linking wraps capitalized type names into anchor references.
	Linking bool
}

// Escape collapses array generics, escapes significant characters and optionally links type names.
// Raw input must be escaped exactly once.
func (escaper Escaper) Escape(raw string) string {
	if raw == "" {
		return ""
	}

	text := collapseGenericArrays(raw)
	text = escaper.replacer().Replace(text)
	if escaper.Linking {
		text = linkTypeNames(text)
	}

	return text
}

// withoutLinks returns a copy of escaper with type linking disabled.
func (escaper Escaper) withoutLinks() Escaper {
	escaper.Linking = false
	return escaper
}

// replacer selects string replacer for configured escape set.
func (escaper Escaper) replacer() *strings.Replacer {
	switch escaper.Set {
	case EscapeSetHTML:
		return htmlReplacer
	case EscapeSetStrict:
		return strictReplacer
	default:
		return markdownReplacer
	}
}

// collapseGenericArrays rewrites Array.<T> into T[] until no generic array remains.
func collapseGenericArrays(text string) string {
	for {
		next := genericArrayPattern.ReplaceAllString(text, "${1}[]")
		if next == text {
			return text
		}

		text = next
	}
}

// linkTypeNames wraps capitalized type names into local anchor links.
func linkTypeNames(text string) string {
	return typeNamePattern.ReplaceAllStringFunc(text, func(match string) string {
		target := anchorID(match)
		if target == "" {
			return match
		}

		return `<a href="#` + target + `">` + match + `</a>`
	})
}

// anchorID converts a name into a stable lowercase alphanumeric anchor identifier.
func anchorID(name string) string {
	return nonAnchorPattern.ReplaceAllString(strings.ToLower(name), "")
}

// escapeAttribute escapes text placed into a double-quoted HTML attribute.
func escapeAttribute(text string) string {
	return strings.ReplaceAll(text, `"`, "&quot;")
}

// escapeTableCell escapes pipe characters inside markdown table cells.
func escapeTableCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// normalizeEscapeSet validates escape set name; empty value selects markdown set.
func normalizeEscapeSet(set EscapeSet) (EscapeSet, error) {
	normalized := EscapeSet(strings.ToLower(strings.TrimSpace(string(set))))
	switch normalized {
	case "":
		return EscapeSetMarkdown, nil
	case EscapeSetHTML, EscapeSetMarkdown, EscapeSetStrict:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEscapeSet, set)
	}
}
