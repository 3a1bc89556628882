// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

// Atom is one renderable documentation node.
//
// Implementations form a closed tagged union: TextAtom, ListAtom, UnionAtom,
// FunctionAtom, ObjectAtom, ParamAtom and NameAtom. A nil Atom is the empty node.
type Atom interface {
	isAtom()
}

// TextAtom is a raw type expression such as "Array.<string>".
type TextAtom string

// NameAtom is a bare identifier with no type information.
type NameAtom string

// ListAtom is an ordered sequence of atoms rendered comma-separated.
type ListAtom []Atom

// UnionAtom lists alternative types.
type UnionAtom struct {
	Names []Atom
}

// FunctionAtom is a callable signature.
type FunctionAtom struct {
	Name    string
	Params  []Atom
	Returns Atom
}

// ObjectAtom is an object literal typedef described by its properties.
type ObjectAtom struct {
	Properties []Atom
}

// ParamAtom is a named and typed parameter or property.
type ParamAtom struct {
	Name     string
	Type     Atom
	Optional bool
	Variable bool
}

func (TextAtom) isAtom()     {}
func (NameAtom) isAtom()     {}
func (ListAtom) isAtom()     {}
func (UnionAtom) isAtom()    {}
func (FunctionAtom) isAtom() {}
func (ObjectAtom) isAtom()   {}
func (ParamAtom) isAtom()    {}

// nodeShape is the field-presence view of a documentation node before classification.
type nodeShape struct {
	Kind          string
	Name          string
	Params        []Atom
	HasParams     bool
	Properties    []Atom
	HasProperties bool
	Names         []Atom
	HasNames      bool
	Type          Atom
	Returns       Atom
	Optional      bool
	Variable      bool
}

// classifyNode turns a node shape into a tagged atom.
//
// The check order matters because one node may carry fields of several shapes:
// callable, object typedef, union, typed parameter, type only, name only.
func classifyNode(shape nodeShape) Atom {
	switch {
	case shape.Kind == KindFunction, shape.Kind == KindTypedef && shape.HasParams:
		return FunctionAtom{
			Name:    shape.Name,
			Params:  shape.Params,
			Returns: shape.Returns,
		}
	case shape.Kind == KindTypedef && shape.HasProperties:
		return ObjectAtom{Properties: shape.Properties}
	case shape.HasNames:
		return UnionAtom{Names: shape.Names}
	case shape.Name != "" && shape.Type != nil:
		return ParamAtom{
			Name:     shape.Name,
			Type:     shape.Type,
			Optional: shape.Optional,
			Variable: shape.Variable,
		}
	case shape.Type != nil:
		return shape.Type
	case shape.Name != "":
		return NameAtom(shape.Name)
	default:
		return nil
	}
}

// atomName returns identifier carried by parameter-like atoms.
func atomName(atom Atom) string {
	switch typed := atom.(type) {
	case ParamAtom:
		return typed.Name
	case NameAtom:
		return string(typed)
	default:
		return ""
	}
}

// isDeepParam reports whether atom is a nested parameter that belongs to a table only.
func isDeepParam(atom Atom) bool {
	return strings.Contains(atomName(atom), ".")
}
