// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import "errors"

var (
	// ErrReadSectionsFile is returned when section list file loading fails.
	ErrReadSectionsFile = errors.New("read sections file")
	// ErrDecodeSections is returned when section list decoding fails.
	ErrDecodeSections = errors.New("decode sections")
	// ErrDecompressSections is returned when compressed section input cannot be inflated.
	ErrDecompressSections = errors.New("decompress sections")
	// ErrSectionsRootType is returned when decoded input root is not a list or object.
	ErrSectionsRootType = errors.New("sections root must be list or object")
	// ErrUnknownInputFormat is returned when requested input format is not supported.
	ErrUnknownInputFormat = errors.New("unknown input format")
	// ErrUnknownParamLayout is returned when parameter layout name is not supported.
	ErrUnknownParamLayout = errors.New("unknown parameter layout")
	// ErrUnknownFlavor is returned when output flavor name is not supported.
	ErrUnknownFlavor = errors.New("unknown output flavor")
	// ErrUnknownEscapeSet is returned when escape set name is not supported.
	ErrUnknownEscapeSet = errors.New("unknown escape set")
	// ErrUnknownSignatureMode is returned when signature mode name is not supported.
	ErrUnknownSignatureMode = errors.New("unknown signature mode")
	// ErrReadConfigFile is returned when options file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrDecodeConfig is returned when options file decoding fails.
	ErrDecodeConfig = errors.New("decode config")
	// ErrInvalidSection is wrapped by every strict validation finding.
	ErrInvalidSection = errors.New("invalid section")
)
