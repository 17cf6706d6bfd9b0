// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     intake
// Description: Input formats accepted by the intake pipeline
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package intake turns SRO input files into entities. A file is an
// envelope naming the entity kind and carrying its records:
//
//	{"entity": "documento", "records": [ {...}, {...} ]}
//
// The same shape is accepted as YAML and TOML. Decoder produces a Batch of
// raw records, Builder constructs entities bottom-up and Validator runs a
// batch concurrently into a report.
package intake

import (
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// Format is an input encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", mdwerror.Newf("unsupported format %q", s).
		WithCode(mdwerror.CodeUnsupportedFormat).
		WithOperation("intake.ParseFormat")
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", mdwerror.Newf("cannot derive format of %s, no extension", path).
			WithCode(mdwerror.CodeUnsupportedFormat).
			WithOperation("intake.FormatFromPath")
	}
	return ParseFormat(ext)
}
