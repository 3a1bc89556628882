// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"strings"
)

const (
	// SignatureModeAuto emits signature block only for sections with params or properties.
	SignatureModeAuto SignatureMode = "auto"
	// SignatureModeAlways emits signature block for every section except classes and modules.
	SignatureModeAlways SignatureMode = "always"
	// SignatureModeOff never emits signature block.
	SignatureModeOff SignatureMode = "off"
)

// SignatureMode controls when the signature block is emitted.
type SignatureMode string

// blockKind tags body blocks so merge rules can inspect the previous block.
type blockKind int

const (
	blockSignature blockKind = iota
	blockProse
	blockCode
	blockMeta
)

// block is one blank-line separated part of a section body.
type block struct {
	kind blockKind
	text string
}

// blockBuilder accumulates body blocks in order.
type blockBuilder struct {
	blocks []block
}

// Add appends a block; blank text contributes nothing.
func (builder *blockBuilder) Add(kind blockKind, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	builder.blocks = append(builder.blocks, block{kind: kind, text: text})
}

// MergeLast appends text to the previous prose block with a single space.
// It reports false and leaves blocks untouched when there is no prose block to merge into.
func (builder *blockBuilder) MergeLast(text string) bool {
	if len(builder.blocks) == 0 {
		return false
	}

	last := &builder.blocks[len(builder.blocks)-1]
	if last.kind != blockProse {
		return false
	}

	lines := strings.Split(strings.TrimRight(last.text, " \n"), "\n")
	if isMarkdownStructuredLine(lines[len(lines)-1]) {
		return false
	}

	last.text = strings.TrimRight(last.text, " \n") + " " + text
	return true
}

// Len returns number of collected blocks.
func (builder *blockBuilder) Len() int {
	return len(builder.blocks)
}

// String joins blocks with a blank line.
func (builder *blockBuilder) String() string {
	parts := make([]string, 0, len(builder.blocks))
	for _, item := range builder.blocks {
		parts = append(parts, item.text)
	}

	return strings.Join(parts, "\n\n")
}

// renderBody renders section content below its heading in fixed order:
// signature, description, returns, examples, metadata.
func renderBody(section Section, cfg renderConfig) string {
	var builder blockBuilder

	builder.Add(blockSignature, renderSignatureBlock(section, cfg))
	builder.Add(blockProse, renderDescription(section, cfg))

	fragments := renderReturns(section.Returns, cfg.style)
	merged := len(fragments) == 1 && isSimpleReturn(section.Returns) && builder.MergeLast(fragments[0])
	if !merged {
		for _, fragment := range fragments {
			builder.Add(blockProse, fragment)
		}
	}

	for _, example := range section.Examples {
		builder.Add(blockCode, renderExample(example, cfg.exampleLanguage))
	}

	if cfg.metadata {
		builder.Add(blockMeta, renderAttributes(sectionAttributes(section), cfg.style.ListMarker))
	}

	return builder.String()
}

// wantsSignature decides whether section gets a signature block.
func wantsSignature(section Section, mode SignatureMode) bool {
	switch mode {
	case SignatureModeOff:
		return false
	case SignatureModeAlways:
		return !isOuterKind(section.Kind)
	default:
		return len(section.Params) > 0 || len(section.Properties) > 0
	}
}

// renderSignatureBlock renders signature line and parameter block.
func renderSignatureBlock(section Section, cfg renderConfig) string {
	if !wantsSignature(section, cfg.signatures) {
		return ""
	}

	signature := renderAtom(section.Atom(), cfg.style)

	params := section.Params
	if len(params) == 0 {
		params = section.Properties
	}

	table := renderParams(params, cfg.style, cfg.layout)
	if table == "" {
		return signature
	}

	if cfg.style.HTML {
		return "<details>\n<summary>" + signature + "</summary>\n\n" + table + "\n\n</details>"
	}

	if signature == "" {
		return table
	}

	return signature + "\n\n" + table
}

// renderDescription renders formatted description prefixed by access badge.
func renderDescription(section Section, cfg renderConfig) string {
	description := formatDescriptionMarkdown(section.Description, cfg.wrapWidth, cfg.style.ListMarker)
	if description == "" {
		return ""
	}

	if badge := cfg.style.accessBadge(section.Access); badge != "" {
		return badge + " " + description
	}

	return description
}

// renderExample renders example source as fenced code block.
// Fence length grows past the longest backtick run inside the example.
func renderExample(example, language string) string {
	code := strings.Trim(normalizeLineEndings(example), "\n")
	if strings.TrimSpace(code) == "" {
		return ""
	}

	fence := strings.Repeat("`", max(3, longestBacktickRun(code)+1))
	return fence + language + "\n" + code + "\n" + fence
}

// longestBacktickRun returns length of the longest consecutive backtick sequence.
func longestBacktickRun(text string) int {
	longest, current := 0, 0
	for _, r := range text {
		if r != '`' {
			current = 0
			continue
		}

		current++
		longest = max(longest, current)
	}

	return longest
}

// normalizeSignatureMode validates signature mode; empty value selects auto.
func normalizeSignatureMode(mode SignatureMode) (SignatureMode, error) {
	normalized := SignatureMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case "":
		return SignatureModeAuto, nil
	case SignatureModeAuto, SignatureModeAlways, SignatureModeOff:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSignatureMode, mode)
	}
}
