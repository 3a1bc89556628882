// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"errors"
	"strings"
)

// Options configures document rendering. The zero value renders plain markdown
// with list parameter blocks, automatic signatures and no table of contents.
type Options struct {
	// Title adds a top-level heading before the document.
	Title string `yaml:"title"`
	// IncludePrivate keeps sections with private access.
	IncludePrivate bool `yaml:"include_private"`
	// TOC adds a table of contents after the title.
	TOC bool `yaml:"toc"`
	// Signatures controls signature block emission.
	Signatures SignatureMode `yaml:"signatures"`
	// ParamLayout selects list or table parameter blocks.
	ParamLayout ParamLayout `yaml:"param_layout"`
	// Flavor selects plain markdown or markdown with embedded HTML.
	Flavor Flavor `yaml:"flavor"`
	// EscapeSet overrides the characters escaped in type strings.
	EscapeSet EscapeSet `yaml:"escape_set"`
	// DisableLinks turns off type name cross-links in HTML flavor.
	DisableLinks bool `yaml:"disable_links"`
	// ExampleLanguage tags example code fences; defaults to "js".
	ExampleLanguage string `yaml:"example_language"`
	// WrapWidth wraps description paragraphs; zero disables wrapping.
	WrapWidth int `yaml:"wrap_width"`
	// ListMarker is the unordered list bullet ("*" or "-").
	ListMarker string `yaml:"list_marker"`
	// Metadata adds scope, longname and source location list to every section.
	Metadata bool `yaml:"metadata"`
	// InputFormat selects section list decoder for byte and file inputs.
	InputFormat InputFormat `yaml:"input_format"`
}

// renderConfig is the normalized view of Options used by renderers.
type renderConfig struct {
	style           RenderStyle
	layout          ParamLayout
	signatures      SignatureMode
	exampleLanguage string
	wrapWidth       int
	metadata        bool
}

// Validate reports unknown enumeration values.
func (opt Options) Validate() error {
	var errs []error
	if _, err := normalizeSignatureMode(opt.Signatures); err != nil {
		errs = append(errs, err)
	}

	if _, err := normalizeParamLayout(opt.ParamLayout); err != nil {
		errs = append(errs, err)
	}

	if _, err := normalizeFlavor(opt.Flavor); err != nil {
		errs = append(errs, err)
	}

	if _, err := normalizeEscapeSet(opt.EscapeSet); err != nil {
		errs = append(errs, err)
	}

	if _, err := normalizeInputFormat(opt.InputFormat); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Style resolves render style for configured flavor and overrides.
// Unknown values fall back to defaults; use Validate to reject them.
func (opt Options) Style() RenderStyle {
	style := MarkdownStyle()
	if flavor, _ := normalizeFlavor(opt.Flavor); flavor == FlavorHTML {
		style = HTMLStyle()
	}

	if strings.TrimSpace(string(opt.EscapeSet)) != "" {
		if set, err := normalizeEscapeSet(opt.EscapeSet); err == nil {
			style.Escaper.Set = set
		}
	}

	if opt.DisableLinks {
		style.Escaper.Linking = false
	}

	style.ListMarker = normalizeListMarker(opt.ListMarker)
	return style
}

// renderConfig normalizes options for renderers.
func (opt Options) renderConfig() renderConfig {
	layout, err := normalizeParamLayout(opt.ParamLayout)
	if err != nil {
		layout = ParamLayoutList
	}

	signatures, err := normalizeSignatureMode(opt.Signatures)
	if err != nil {
		signatures = SignatureModeAuto
	}

	language := strings.TrimSpace(opt.ExampleLanguage)
	if language == "" {
		language = defaultExampleLanguage
	}

	return renderConfig{
		style:           opt.Style(),
		layout:          layout,
		signatures:      signatures,
		exampleLanguage: language,
		wrapWidth:       normalizeWrapWidth(opt.WrapWidth),
		metadata:        opt.Metadata,
	}
}
