// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/woozymasta/astdoc"
)

// envPrefix prefixes every environment override name.
const envPrefix = "ASTDOC_"

// flagBinding copies one explicitly passed flag into render options.
type flagBinding struct {
	long  string
	apply func(opt *astdoc.Options)
}

// envBinding parses one environment override into render options.
type envBinding struct {
	name  string
	apply func(opt *astdoc.Options, value string) error
}

// envBindings lists supported ASTDOC_* overrides.
var envBindings = []envBinding{
	{name: "TITLE", apply: func(opt *astdoc.Options, value string) error {
		opt.Title = value
		return nil
	}},
	{name: "FLAVOR", apply: func(opt *astdoc.Options, value string) error {
		opt.Flavor = astdoc.Flavor(value)
		return nil
	}},
	{name: "PARAM_LAYOUT", apply: func(opt *astdoc.Options, value string) error {
		opt.ParamLayout = astdoc.ParamLayout(value)
		return nil
	}},
	{name: "SIGNATURES", apply: func(opt *astdoc.Options, value string) error {
		opt.Signatures = astdoc.SignatureMode(value)
		return nil
	}},
	{name: "ESCAPE_SET", apply: func(opt *astdoc.Options, value string) error {
		opt.EscapeSet = astdoc.EscapeSet(value)
		return nil
	}},
	{name: "INPUT_FORMAT", apply: func(opt *astdoc.Options, value string) error {
		opt.InputFormat = astdoc.InputFormat(value)
		return nil
	}},
	{name: "LIST_MARKER", apply: func(opt *astdoc.Options, value string) error {
		opt.ListMarker = value
		return nil
	}},
	{name: "EXAMPLE_LANGUAGE", apply: func(opt *astdoc.Options, value string) error {
		opt.ExampleLanguage = value
		return nil
	}},
	{name: "WRAP", apply: func(opt *astdoc.Options, value string) error {
		width, err := strconv.Atoi(value)
		if err != nil {
			return err
		}

		opt.WrapWidth = width
		return nil
	}},
	{name: "TOC", apply: boolEnv(func(opt *astdoc.Options, value bool) { opt.TOC = value })},
	{name: "INCLUDE_PRIVATE", apply: boolEnv(func(opt *astdoc.Options, value bool) { opt.IncludePrivate = value })},
	{name: "METADATA", apply: boolEnv(func(opt *astdoc.Options, value bool) { opt.Metadata = value })},
	{name: "DISABLE_LINKS", apply: boolEnv(func(opt *astdoc.Options, value bool) { opt.DisableLinks = value })},
}

// boolEnv adapts boolean setter to envBinding parser.
func boolEnv(set func(opt *astdoc.Options, value bool)) func(opt *astdoc.Options, value string) error {
	return func(opt *astdoc.Options, value string) error {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}

		set(opt, parsed)
		return nil
	}
}

// bindings maps render flags to option fields by long flag name.
func (renderFlags *markdownRenderFlags) bindings() []flagBinding {
	return []flagBinding{
		{long: "title", apply: func(opt *astdoc.Options) { opt.Title = renderFlags.Title }},
		{long: "flavor", apply: func(opt *astdoc.Options) { opt.Flavor = astdoc.Flavor(renderFlags.Flavor) }},
		{long: "param-layout", apply: func(opt *astdoc.Options) { opt.ParamLayout = astdoc.ParamLayout(renderFlags.ParamLayout) }},
		{long: "signatures", apply: func(opt *astdoc.Options) { opt.Signatures = astdoc.SignatureMode(renderFlags.Signatures) }},
		{long: "escape-set", apply: func(opt *astdoc.Options) { opt.EscapeSet = astdoc.EscapeSet(renderFlags.EscapeSet) }},
		{long: "no-links", apply: func(opt *astdoc.Options) { opt.DisableLinks = renderFlags.NoLinks }},
		{long: "no-toc", apply: func(opt *astdoc.Options) { opt.TOC = !renderFlags.NoTOC }},
		{long: "include-private", apply: func(opt *astdoc.Options) { opt.IncludePrivate = renderFlags.IncludePrivate }},
		{long: "metadata", apply: func(opt *astdoc.Options) { opt.Metadata = renderFlags.Metadata }},
		{long: "wrap", apply: func(opt *astdoc.Options) { opt.WrapWidth = renderFlags.WrapWidth }},
		{long: "list-marker", apply: func(opt *astdoc.Options) { opt.ListMarker = renderFlags.ListMarker }},
		{long: "example-language", apply: func(opt *astdoc.Options) { opt.ExampleLanguage = renderFlags.ExampleLanguage }},
		{long: "input-format", apply: func(opt *astdoc.Options) { opt.InputFormat = astdoc.InputFormat(renderFlags.InputFormat) }},
	}
}

// resolveOptions layers flag defaults, config file, environment and explicit flags, in that order.
func (runner *cliRunner) resolveOptions(commandName string, renderFlags *markdownRenderFlags, configPath string) (astdoc.Options, error) {
	var opt astdoc.Options
	bindings := renderFlags.bindings()
	for _, binding := range bindings {
		binding.apply(&opt)
	}

	if path := strings.TrimSpace(configPath); path != "" {
		loaded, err := astdoc.LoadOptionsFile(path, opt)
		if err != nil {
			return astdoc.Options{}, err
		}

		opt = loaded
		runner.logger.Debug().Str("config", path).Msg("loaded config file")
	}

	env, err := runner.environment()
	if err != nil {
		return astdoc.Options{}, err
	}

	if opt, err = applyEnvironment(opt, env); err != nil {
		return astdoc.Options{}, err
	}

	command := runner.findCommand(commandName)
	for _, binding := range bindings {
		if explicitlySet(command, binding.long) {
			binding.apply(&opt)
		}
	}

	if err := opt.Validate(); err != nil {
		return astdoc.Options{}, err
	}

	return opt, nil
}

// environment merges optional .env file values with process environment; process wins.
func (runner *cliRunner) environment() (map[string]string, error) {
	values := make(map[string]string)

	if path := strings.TrimSpace(runner.envFile); path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file %q: %w", path, err)
		}

		maps.Copy(values, fileValues)
	}

	if runner.lookupEnv == nil {
		return values, nil
	}

	for _, binding := range envBindings {
		name := envPrefix + binding.name
		if value, ok := runner.lookupEnv(name); ok {
			values[name] = value
		}
	}

	return values, nil
}

// applyEnvironment applies ASTDOC_* values on top of options.
func applyEnvironment(opt astdoc.Options, env map[string]string) (astdoc.Options, error) {
	for _, binding := range envBindings {
		name := envPrefix + binding.name
		value, ok := env[name]
		if !ok {
			continue
		}

		if err := binding.apply(&opt, strings.TrimSpace(value)); err != nil {
			return astdoc.Options{}, fmt.Errorf("parse %s=%q: %w", name, value, err)
		}
	}

	return opt, nil
}

// findCommand returns parsed subcommand by name.
func (runner *cliRunner) findCommand(name string) *flags.Command {
	if runner.parser == nil {
		return nil
	}

	return runner.parser.Find(name)
}

// explicitlySet reports whether flag was passed on command line rather than filled from its default.
func explicitlySet(command *flags.Command, long string) bool {
	if command == nil {
		return false
	}

	option := command.FindOptionByLongName(long)
	return option != nil && option.IsSet() && !option.IsSetDefault()
}
