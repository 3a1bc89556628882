// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "strings"

// renderAtom renders any documentation atom as inline text.
// Unknown or empty atoms render as empty string, callers concatenate the result unconditionally.
func renderAtom(atom Atom, style RenderStyle) string {
	switch typed := atom.(type) {
	case nil:
		return ""
	case ListAtom:
		return joinRendered(typed, style, ", ")
	case TextAtom:
		return style.Escaper.Escape(string(typed))
	case FunctionAtom:
		return renderCallable(typed, style)
	case ObjectAtom:
		return "{" + joinRendered(typed.Properties, style, ", ") + "}"
	case UnionAtom:
		return joinRendered(typed.Names, style, " | ")
	case ParamAtom:
		return renderTypedParam(typed, style)
	case NameAtom:
		return style.plain().Escape(string(typed))
	default:
		return ""
	}
}

// joinRendered renders atoms and joins non-empty results with separator.
func joinRendered(atoms []Atom, style RenderStyle, separator string) string {
	parts := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		if text := renderAtom(atom, style); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, separator)
}

// renderCallable renders name(params) → returns, skipping deep parameters.
func renderCallable(fn FunctionAtom, style RenderStyle) string {
	params := make([]Atom, 0, len(fn.Params))
	for _, param := range fn.Params {
		if isDeepParam(param) {
			continue
		}

		params = append(params, param)
	}

	var call strings.Builder
	call.WriteString(style.plain().Escape(fn.Name))
	call.WriteByte('(')
	call.WriteString(joinRendered(params, style, ", "))
	call.WriteByte(')')

	returns := renderAtom(fn.Returns, style)
	if returns == "" {
		returns = style.VoidType
	}

	if style.HTML {
		return "<code>" + call.String() + "</code>" + style.Arrow + style.emphasis(returns)
	}

	return call.String() + style.Arrow + returns
}

// renderTypedParam renders name: type, or a tooltip-carrying name in HTML mode.
func renderTypedParam(param ParamAtom, style RenderStyle) string {
	name := style.plain().Escape(param.Name)
	if param.Variable {
		name = style.VariadicMarker + name
	}

	if style.HTML {
		tooltip := escapeAttribute(renderAtom(param.Type, style.tooltip()))
		text := `<span title="` + tooltip + `">` + name + `</span>`
		if param.Optional {
			text += style.OptionalMarker
		}

		return text
	}

	if param.Optional {
		name += style.OptionalMarker
	}

	typeText := renderAtom(param.Type, style)
	if typeText == "" {
		return name
	}

	return name + ": " + typeText
}
