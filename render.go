// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

const (
	// SkipUndocumented marks sections flagged as undocumented by the parser.
	SkipUndocumented SkipReason = "undocumented"
	// SkipPackage marks package pseudo-sections.
	SkipPackage SkipReason = "package"
	// SkipPrivate marks private sections dropped without IncludePrivate.
	SkipPrivate SkipReason = "private"
)

// SkipReason explains why a section was excluded from the document.
type SkipReason string

// SkippedSection is one section excluded from rendering.
type SkippedSection struct {
	Section Section
	Reason  SkipReason
}

// Render converts a section list into a markdown document.
//
// Render never fails: malformed or unknown nodes render as empty text and an
// empty section list yields an empty document, or only the title heading.
func Render(sections []Section, opt Options) string {
	cfg := opt.renderConfig()
	kept, _ := SelectSections(sections, opt)

	blocks := make([]string, 0, len(kept)+2)
	if title := sanitizeText(opt.Title); title != "" {
		blocks = append(blocks, "# "+title)
	}

	if opt.TOC {
		if toc := renderTOC(kept, cfg.style); toc != "" {
			blocks = append(blocks, toc)
		}
	}

	for _, section := range kept {
		blocks = append(blocks, renderSection(section, cfg))
	}

	return strings.Join(blocks, "\n\n")
}

// SelectSections splits sections into rendered ones and excluded ones, preserving order.
func SelectSections(sections []Section, opt Options) ([]Section, []SkippedSection) {
	kept := make([]Section, 0, len(sections))
	var skipped []SkippedSection

	for _, section := range sections {
		if reason, skip := skipReason(section, opt.IncludePrivate); skip {
			skipped = append(skipped, SkippedSection{Section: section, Reason: reason})
			continue
		}

		kept = append(kept, section)
	}

	return kept, skipped
}

// skipReason reports whether section is excluded and why.
func skipReason(section Section, includePrivate bool) (SkipReason, bool) {
	switch {
	case section.Undocumented:
		return SkipUndocumented, true
	case section.Kind == KindPackage:
		return SkipPackage, true
	case !includePrivate && strings.TrimSpace(section.Access) == AccessPrivate:
		return SkipPrivate, true
	default:
		return "", false
	}
}

// RenderDocument renders sections as a complete markdown file body with normalized
// blank lines and exactly one trailing newline.
func RenderDocument(sections []Section, opt Options) string {
	return ensureTrailingNewline(normalizeMarkdownOutput(Render(sections, opt)))
}

// RenderBytes decodes a JSON or YAML section list and renders it as a document.
func RenderBytes(data []byte, opt Options) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}

	sections, err := DecodeSections(data, opt.InputFormat)
	if err != nil {
		return "", err
	}

	return RenderDocument(sections, opt), nil
}

// RenderFile reads section list from file and renders markdown documentation.
func RenderFile(path string, opt Options) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}

	sections, err := ReadSectionsFile(path, opt.InputFormat)
	if err != nil {
		return "", err
	}

	return RenderDocument(sections, opt), nil
}
