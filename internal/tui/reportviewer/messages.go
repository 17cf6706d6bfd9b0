// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     reportviewer
// Description: Message types for async operations in the report viewer
// Author:      Mike Stoffels
// Created:     2025-12-07
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package reportviewer

import (
	"time"

	"github.com/msto63/sro/internal/report"
)

// Message types for tea.Cmd async operations

// reportsLoadedMsg is sent when the report list is loaded from the store
type reportsLoadedMsg struct {
	reports []*report.Report
	stats   report.Stats
	err     error
}

// reportLoadedMsg is sent when a single report with its records is loaded
type reportLoadedMsg struct {
	report *report.Report
	err    error
}

// tickMsg is used for periodic updates
type tickMsg time.Time
