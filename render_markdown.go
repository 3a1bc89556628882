// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"strings"
	"unicode/utf8"
)

const (
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
	// defaultExampleLanguage tags example code fences.
	defaultExampleLanguage = "js"
)

// structuredLinePrefixes mark lines that bypass paragraph joining and wrapping.
var structuredLinePrefixes = []string{"#", ">", "- ", "* ", "+ ", "|", "```", "~~~", "---", "***", "___"}

// sanitizeText trims and squashes repeated whitespace in single-line text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth clamps negative widths to zero, which disables wrapping.
func normalizeWrapWidth(value int) int {
	return max(value, 0)
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "-":
		return "-"
	case "*":
		return "*"
	default:
		return defaultListMarker
	}
}

// descriptionFormatter joins soft-wrapped description lines into paragraphs
// while keeping fenced code, lists, tables and headings intact.
type descriptionFormatter struct {
	wrapWidth  int
	listMarker string
	out        []string
	paragraph  []string
	inFence    bool
}

// formatDescriptionMarkdown normalizes description prose for markdown output.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	formatter := descriptionFormatter{
		wrapWidth:  normalizeWrapWidth(wrapWidth),
		listMarker: normalizeListMarker(listMarker),
	}

	for _, line := range strings.Split(text, "\n") {
		formatter.line(strings.TrimRight(line, " \t"))
	}

	formatter.flush()
	return strings.Join(formatter.out, "\n")
}

// line consumes one source line.
func (formatter *descriptionFormatter) line(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case isFenceLine(trimmed):
		formatter.flush()
		formatter.out = append(formatter.out, line)
		formatter.inFence = !formatter.inFence
	case formatter.inFence:
		formatter.out = append(formatter.out, line)
	case trimmed == "":
		formatter.flush()
		formatter.blank()
	case isMarkdownStructuredLine(line):
		formatter.flush()
		normalized := normalizeBulletLine(line, formatter.listMarker)
		if isListLine(normalized) && formatter.lastIsParagraph() {
			formatter.blank()
		}

		formatter.out = append(formatter.out, normalized)
	default:
		formatter.paragraph = append(formatter.paragraph, trimmed)
	}
}

// flush emits pending paragraph lines as wrapped text.
func (formatter *descriptionFormatter) flush() {
	if len(formatter.paragraph) == 0 {
		return
	}

	joined := strings.Join(formatter.paragraph, " ")
	formatter.out = append(formatter.out, wrapParagraph(joined, formatter.wrapWidth)...)
	formatter.paragraph = formatter.paragraph[:0]
}

// blank emits a single separator line.
func (formatter *descriptionFormatter) blank() {
	if len(formatter.out) == 0 || formatter.out[len(formatter.out)-1] == "" {
		return
	}

	formatter.out = append(formatter.out, "")
}

// lastIsParagraph reports whether the previous emitted line is plain paragraph text.
func (formatter *descriptionFormatter) lastIsParagraph() bool {
	if len(formatter.out) == 0 {
		return false
	}

	previous := formatter.out[len(formatter.out)-1]
	return strings.TrimSpace(previous) != "" && !isMarkdownStructuredLine(previous)
}

// isFenceLine reports whether trimmed line opens or closes a fenced block.
func isFenceLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// isMarkdownStructuredLine reports whether line must bypass paragraph wrapping.
func isMarkdownStructuredLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range structuredLinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return hasOrderedListPrefix(trimmed)
}

// isListLine reports whether line is unordered or ordered markdown list item.
func isListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return hasOrderedListPrefix(trimmed)
}

// normalizeBulletLine rewrites unordered list marker and indentation to the configured style.
func normalizeBulletLine(line, listMarker string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || !strings.ContainsRune("-*+", rune(trimmed[0])) || trimmed[1] != ' ' {
		return line
	}

	if trimmed == "---" || trimmed == "***" {
		return line
	}

	level := leadingIndentColumns(line) / 2
	return strings.Repeat("  ", level) + listMarker + " " + strings.TrimSpace(trimmed[1:])
}

// leadingIndentColumns returns visual indentation width for leading spaces and tabs.
func leadingIndentColumns(line string) int {
	columns := 0
	for _, r := range line {
		switch r {
		case ' ':
			columns++
		case '\t':
			columns += 4
		default:
			return columns
		}
	}

	return columns
}

// hasOrderedListPrefix reports whether line starts with "1." or "1)" marker.
func hasOrderedListPrefix(line string) bool {
	index := 0
	for index < len(line) && line[index] >= '0' && line[index] <= '9' {
		index++
	}

	if index == 0 || index+1 >= len(line) {
		return false
	}

	return (line[index] == '.' || line[index] == ')') && line[index+1] == ' '
}

// wrapParagraph wraps one plain paragraph to max rune width; zero width keeps one line.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	return append(out, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput strips trailing spaces and collapses blank line runs outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if isFenceLine(trimmed) {
			inFence = !inFence
		} else if !inFence && trimmed == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}

		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}
