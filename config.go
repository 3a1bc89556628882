// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptionsFile reads rendering options from a YAML config file over base options.
func LoadOptionsFile(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("%w %q: %w", ErrReadConfigFile, path, err)
	}

	return DecodeOptions(data, base)
}

// DecodeOptions decodes YAML options over base and rejects unknown keys and
// enumeration values. Keys absent from data keep base values.
func DecodeOptions(data []byte, base Options) (Options, error) {
	opt := base

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opt); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	if err := opt.Validate(); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	return opt, nil
}
