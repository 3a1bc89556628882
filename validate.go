// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate checks sections for structural problems that rendering silently omits.
//
// It is an opt-in strict layer: Render never calls it. The returned error is nil or
// a *multierror.Error whose entries all wrap ErrInvalidSection.
func Validate(sections []Section) error {
	var result *multierror.Error

	for index, section := range sections {
		label := sectionLabel(index, section)
		if strings.TrimSpace(section.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %s: missing name", ErrInvalidSection, label))
		}

		result = validateParameters(result, label, "param", section.Params)
		result = validateParameters(result, label, "property", section.Properties)
		result = validateAtom(result, label+" type", section.Type)

		for retIndex, ret := range section.Returns {
			result = validateAtom(result, fmt.Sprintf("%s returns[%d]", label, retIndex), ret.Type)
		}
	}

	return result.ErrorOrNil()
}

// sectionLabel identifies section in validation messages.
func sectionLabel(index int, section Section) string {
	if name := strings.TrimSpace(section.Name); name != "" {
		return fmt.Sprintf("section %q", name)
	}

	return fmt.Sprintf("section #%d", index)
}

// validateParameters checks names and deep parameter parents in declaration order.
func validateParameters(result *multierror.Error, label, noun string, params []Parameter) *multierror.Error {
	declared := make(map[string]struct{}, len(params))

	for index, param := range params {
		name := strings.TrimSpace(param.Name)
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %s: %s #%d: missing name", ErrInvalidSection, label, noun, index))
			continue
		}

		if cut := strings.LastIndex(name, "."); cut >= 0 {
			parent := name[:cut]
			if _, ok := declared[parent]; !ok {
				result = multierror.Append(result, fmt.Errorf("%w: %s: %s %q: parent %q is not declared before it", ErrInvalidSection, label, noun, name, parent))
			}
		}

		declared[name] = struct{}{}
		result = validateAtom(result, fmt.Sprintf("%s %s %q", label, noun, name), param.Type)
	}

	return result
}

// validateAtom walks atom tree and reports unions without alternatives.
func validateAtom(result *multierror.Error, label string, atom Atom) *multierror.Error {
	switch typed := atom.(type) {
	case UnionAtom:
		if len(typed.Names) == 0 {
			result = multierror.Append(result, fmt.Errorf("%w: %s: type union has no names", ErrInvalidSection, label))
		}

		for _, name := range typed.Names {
			result = validateAtom(result, label, name)
		}
	case ListAtom:
		for _, item := range typed {
			result = validateAtom(result, label, item)
		}
	case FunctionAtom:
		for _, param := range typed.Params {
			result = validateAtom(result, label, param)
		}

		result = validateAtom(result, label, typed.Returns)
	case ObjectAtom:
		for _, property := range typed.Properties {
			result = validateAtom(result, label, property)
		}
	case ParamAtom:
		result = validateAtom(result, label, typed.Type)
	}

	return result
}
