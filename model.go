// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

// Well-known section kinds. Any other kind string is accepted and rendered as inner entity.
const (
	KindFunction = "function"
	KindMember   = "member"
	KindClass    = "class"
	KindModule   = "module"
	KindTypedef  = "typedef"
	KindPackage  = "package"
)

// Access levels recognized by section filtering and badges.
const (
	AccessPublic    = "public"
	AccessPrivate   = "private"
	AccessProtected = "protected"
)

// Section is one documented entity produced by an external documentation parser.
type Section struct {
	Name         string
	Kind         string
	Scope        string
	Access       string
	Description  string
	Params       []Parameter
	Properties   []Parameter
	Returns      []ReturnDescriptor
	Examples     []string
	Undocumented bool

	// Type is the declared type of member-like sections.
	Type Atom

	// Longname and Meta are passthrough metadata, shown only when metadata output is enabled.
	Longname string
	Meta     SectionMeta
}

// SectionMeta holds source location metadata.
type SectionMeta struct {
	Filename string
	Path     string
	Lineno   int
}

// Parameter describes one function parameter or typedef property.
// Dots in Name denote a nested (deep) parameter path such as "options.prefix".
type Parameter struct {
	Name        string
	Type        Atom
	Optional    bool
	Variable    bool
	Description string
}

// ReturnDescriptor describes one return value.
type ReturnDescriptor struct {
	Description string
	Type        Atom
}

// Atom returns the renderable atom view of the section, used for its signature line.
func (section Section) Atom() Atom {
	shape := nodeShape{
		Kind:          section.Kind,
		Name:          section.Name,
		Params:        parameterAtoms(section.Params),
		HasParams:     len(section.Params) > 0,
		Properties:    parameterAtoms(section.Properties),
		HasProperties: len(section.Properties) > 0,
		Type:          section.Type,
		Returns:       returnTypeAtom(section.Returns),
	}

	return classifyNode(shape)
}

// Atom returns the renderable atom view of the parameter.
func (param Parameter) Atom() Atom {
	return classifyNode(nodeShape{
		Name:     param.Name,
		Type:     param.Type,
		Optional: param.Optional,
		Variable: param.Variable,
	})
}

// isOuterKind reports whether kind is rendered at the outer heading level.
func isOuterKind(kind string) bool {
	switch kind {
	case KindModule, KindClass:
		return true
	default:
		return false
	}
}

// isNonPublic reports whether access level deserves a badge.
func isNonPublic(access string) bool {
	access = strings.TrimSpace(access)
	return access != "" && access != AccessPublic
}

// paramDepth returns nesting depth of a dotted parameter name.
func paramDepth(name string) int {
	return strings.Count(name, ".")
}

// lastPathSegment returns the visible name of a dotted parameter path.
func lastPathSegment(name string) string {
	if index := strings.LastIndex(name, "."); index >= 0 {
		return name[index+1:]
	}

	return name
}

// parameterAtoms converts parameters into atoms preserving order.
func parameterAtoms(params []Parameter) []Atom {
	if len(params) == 0 {
		return nil
	}

	out := make([]Atom, 0, len(params))
	for _, param := range params {
		out = append(out, param.Atom())
	}

	return out
}

// returnTypeAtom collects declared return types into one atom.
func returnTypeAtom(returns []ReturnDescriptor) Atom {
	types := make(ListAtom, 0, len(returns))
	for _, ret := range returns {
		if ret.Type == nil {
			continue
		}

		types = append(types, ret.Type)
	}

	switch len(types) {
	case 0:
		return nil
	case 1:
		return types[0]
	default:
		return types
	}
}
