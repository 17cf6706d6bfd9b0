// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     version
// Description: Build and release version of the sro binary
// Author:      Mike Stoffels
// Created:     2025-12-06
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Release is the semantic version of the validator
const Release = "1.0.0"

// Set at build time via -ldflags "-X github.com/msto63/sro/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Service is the name reported by health checks and the gRPC server
const Service = "sro"

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", Service, Release, Commit, BuildDate, runtime.Version())
}
