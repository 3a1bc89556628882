// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

const (
	// InputFormatAuto detects JSON by leading bracket and falls back to YAML.
	InputFormatAuto InputFormat = "auto"
	// InputFormatJSON decodes JSON section lists, such as jsdoc -X output.
	InputFormatJSON InputFormat = "json"
	// InputFormatYAML decodes YAML section lists.
	InputFormatYAML InputFormat = "yaml"
)

// InputFormat selects section list decoder.
type InputFormat string

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DecodeSections decodes a section list from JSON or YAML bytes.
// Gzip and zstd compressed input is detected by magic bytes and inflated first.
// Records with unexpected field types degrade to zero values instead of failing.
func DecodeSections(data []byte, format InputFormat) ([]Section, error) {
	format, err := normalizeInputFormat(format)
	if err != nil {
		return nil, err
	}

	data, err = decompressInput(data)
	if err != nil {
		return nil, err
	}

	if format == InputFormatAuto {
		format = detectInputFormat(data)
	}

	var root any
	switch format {
	case InputFormatJSON:
		err = json.Unmarshal(data, &root)
	default:
		err = yaml.Unmarshal(data, &root)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSections, err)
	}

	return sectionsFromValue(root)
}

// ReadSectionsFile reads and decodes a section list file.
// Auto format is resolved by file extension first, then by content.
func ReadSectionsFile(path string, format InputFormat) ([]Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSectionsFile, err)
	}

	if normalized, _ := normalizeInputFormat(format); normalized == InputFormatAuto {
		format = inputFormatFromPath(path)
	}

	return DecodeSections(data, format)
}

// decompressInput inflates gzip or zstd payloads and returns other input unchanged.
func decompressInput(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompressSections, err)
		}
		defer func() {
			_ = reader.Close()
		}()

		out, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompressSections, err)
		}

		return out, nil
	case bytes.HasPrefix(data, zstdMagic):
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompressSections, err)
		}
		defer decoder.Close()

		out, err := decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompressSections, err)
		}

		return out, nil
	default:
		return data, nil
	}
}

// detectInputFormat sniffs JSON by its first significant character.
func detectInputFormat(data []byte) InputFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return InputFormatJSON
	}

	return InputFormatYAML
}

// inputFormatFromPath selects input format by file extension, ignoring compression suffixes.
func inputFormatFromPath(path string) InputFormat {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".zst")

	switch filepath.Ext(name) {
	case ".json":
		return InputFormatJSON
	case ".yaml", ".yml":
		return InputFormatYAML
	default:
		return InputFormatAuto
	}
}

// normalizeInputFormat validates input format; empty value selects auto detection.
func normalizeInputFormat(format InputFormat) (InputFormat, error) {
	normalized := InputFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return InputFormatAuto, nil
	case InputFormatAuto, InputFormatJSON, InputFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownInputFormat, format)
	}
}

// sectionsFromValue converts decoded root into sections.
// Root may be a list of sections, an object with "sections" list, or a single section object.
func sectionsFromValue(root any) ([]Section, error) {
	if root == nil {
		return nil, nil
	}

	items := asSlice(root)
	if items == nil {
		node, ok := asMap(root)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrSectionsRootType, root)
		}

		if nested, ok := node["sections"]; ok {
			items = asSlice(nested)
		} else {
			items = []any{node}
		}
	}

	sections := make([]Section, 0, len(items))
	for _, item := range items {
		node, ok := asMap(item)
		if !ok {
			continue
		}

		sections = append(sections, sectionFromMap(node))
	}

	return sections, nil
}

// sectionFromMap converts one decoded section object.
func sectionFromMap(node map[string]any) Section {
	section := Section{
		Name:         asString(node["name"]),
		Kind:         asString(node["kind"]),
		Scope:        asString(node["scope"]),
		Access:       asString(node["access"]),
		Description:  asString(node["description"]),
		Params:       parametersFromValue(node["params"]),
		Properties:   parametersFromValue(node["properties"]),
		Returns:      returnsFromValue(node["returns"]),
		Examples:     asStringSlice(node["examples"]),
		Undocumented: asBool(node["undocumented"]),
		Type:         atomFromValue(node["type"]),
		Longname:     asString(node["longname"]),
	}

	if section.Description == "" && section.Kind == KindClass {
		section.Description = asString(node["classdesc"])
	}

	if meta, ok := asMap(node["meta"]); ok {
		section.Meta = SectionMeta{
			Filename: asString(meta["filename"]),
			Path:     asString(meta["path"]),
			Lineno:   asInt(meta["lineno"]),
		}
	}

	return section
}

// parametersFromValue converts decoded parameter list.
func parametersFromValue(value any) []Parameter {
	items := asSlice(value)
	if len(items) == 0 {
		return nil
	}

	out := make([]Parameter, 0, len(items))
	for _, item := range items {
		node, ok := asMap(item)
		if !ok {
			continue
		}

		out = append(out, Parameter{
			Name:        asString(node["name"]),
			Type:        atomFromValue(node["type"]),
			Optional:    asBool(node["optional"]),
			Variable:    asBool(node["variable"]),
			Description: asString(node["description"]),
		})
	}

	return out
}

// returnsFromValue converts decoded return descriptor list.
func returnsFromValue(value any) []ReturnDescriptor {
	items := asSlice(value)
	if len(items) == 0 {
		return nil
	}

	out := make([]ReturnDescriptor, 0, len(items))
	for _, item := range items {
		node, ok := asMap(item)
		if !ok {
			continue
		}

		out = append(out, ReturnDescriptor{
			Description: asString(node["description"]),
			Type:        atomFromValue(node["type"]),
		})
	}

	return out
}

// atomFromValue converts a decoded type node into a tagged atom.
func atomFromValue(value any) Atom {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return TextAtom(typed)
	case []any:
		out := make(ListAtom, 0, len(typed))
		for _, item := range typed {
			out = append(out, atomFromValue(item))
		}

		return out
	}

	node, ok := asMap(value)
	if !ok {
		return nil
	}

	return classifyNode(shapeFromMap(node))
}

// shapeFromMap records field presence of a decoded type node.
func shapeFromMap(node map[string]any) nodeShape {
	shape := nodeShape{
		Kind:     asString(node["kind"]),
		Name:     asString(node["name"]),
		Type:     atomFromValue(node["type"]),
		Returns:  atomFromValue(node["returns"]),
		Optional: asBool(node["optional"]),
		Variable: asBool(node["variable"]),
	}

	if raw, ok := node["params"]; ok && raw != nil {
		shape.HasParams = true
		shape.Params = atomsFromList(raw)
	}

	if raw, ok := node["properties"]; ok && raw != nil {
		shape.HasProperties = true
		shape.Properties = atomsFromList(raw)
	}

	if raw, ok := node["names"]; ok && raw != nil {
		shape.HasNames = true
		shape.Names = atomsFromList(raw)
	}

	return shape
}

// atomsFromList converts every item of a decoded list into atoms.
func atomsFromList(value any) []Atom {
	items := asSlice(value)
	out := make([]Atom, 0, len(items))
	for _, item := range items {
		out = append(out, atomFromValue(item))
	}

	return out
}
