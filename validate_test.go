// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestValidateAcceptsWellFormedSections(t *testing.T) {
	t.Parallel()

	sections, err := DecodeSections([]byte(treeSectionsYAML), InputFormatYAML)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}

	if err := Validate(sections); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if err := Validate(nil); err != nil {
		t.Fatalf("Validate(nil): %v", err)
	}
}

func TestValidateCollectsFindings(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Kind: KindFunction},
		{
			Name: "insert",
			Kind: KindFunction,
			Params: []Parameter{
				{Name: "options.replace", Type: TextAtom("boolean")},
				{Name: "", Type: TextAtom("string")},
				{Name: "mode", Type: UnionAtom{}},
			},
			Returns: []ReturnDescriptor{
				{Type: FunctionAtom{Name: "cb", Params: []Atom{ParamAtom{Name: "x", Type: UnionAtom{}}}}},
			},
		},
		{
			Name:       "Point",
			Kind:       KindTypedef,
			Properties: []Parameter{{Name: "x"}, {Name: "x.unit"}, {Name: "y.unit"}},
		},
	}

	err := Validate(sections)
	if err == nil {
		t.Fatal("Validate must report findings")
	}

	if !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("Validate error does not wrap ErrInvalidSection: %v", err)
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Validate error is %T, want *multierror.Error", err)
	}

	// missing section name, undeclared options parent, missing param name,
	// empty param union, empty union inside return callable, undeclared y parent
	if len(merr.Errors) != 6 {
		t.Fatalf("findings = %d, want 6:\n%v", len(merr.Errors), err)
	}

	for _, finding := range merr.Errors {
		if !errors.Is(finding, ErrInvalidSection) {
			t.Fatalf("finding does not wrap ErrInvalidSection: %v", finding)
		}
	}

	message := err.Error()
	for _, needle := range []string{
		"section #0: missing name",
		`param "options.replace": parent "options" is not declared before it`,
		`section "insert": param #1: missing name`,
		`section "insert" returns[0]: type union has no names`,
		`property "y.unit": parent "y"`,
	} {
		if !strings.Contains(message, needle) {
			t.Fatalf("validation message does not contain %q:\n%s", needle, message)
		}
	}
}

func TestValidateDoesNotChangeRender(t *testing.T) {
	t.Parallel()

	sections := []Section{{Name: "get", Kind: KindFunction, Params: []Parameter{{Name: "a.b"}}}}
	if err := Validate(sections); err == nil {
		t.Fatal("Validate must report undeclared parent")
	}

	got := Render(sections, Options{})
	want := "### get()\n\nget() → void\n\n  * `b`"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
