// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     reportviewer
// Description: Styles for the report viewer TUI
// Author:      Mike Stoffels
// Created:     2025-12-07
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package reportviewer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sro/foundation/core/validation"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Violation kind colors
	ColorMissing     = lipgloss.Color("#EF4444") // Red
	ColorFormat      = lipgloss.Color("#F97316") // Orange
	ColorDomain      = lipgloss.Color("#F59E0B") // Amber
	ColorSize        = lipgloss.Color("#EAB308") // Yellow
	ColorConditional = lipgloss.Color("#06B6D4") // Cyan
	ColorOrdering    = lipgloss.Color("#A855F7") // Purple
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Report and record styles
var (
	ReportRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ReportSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBgSelected).
				Bold(true)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	EntityStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	RecordKeyStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ValidCountStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	RejectedCountStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Panel/Box styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "SRO Relatórios"

// kindColors maps violation kinds to their badge color
var kindColors = map[string]lipgloss.Color{
	validation.KindMissingRequiredField:     ColorMissing,
	validation.KindInvalidFormat:            ColorFormat,
	validation.KindOutOfDomain:              ColorDomain,
	validation.KindSizeViolation:            ColorSize,
	validation.KindConditionalRuleViolation: ColorConditional,
	validation.KindOrderingViolation:        ColorOrdering,
}

// kindLabels are the short badge texts of the violation kinds
var kindLabels = map[string]string{
	validation.KindMissingRequiredField:     "MISSING",
	validation.KindInvalidFormat:            "FORMAT",
	validation.KindOutOfDomain:              "DOMAIN",
	validation.KindSizeViolation:            "SIZE",
	validation.KindConditionalRuleViolation: "COND",
	validation.KindOrderingViolation:        "ORDER",
}

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders a violation kind badge with its color
func RenderKindBadge(kind string) string {
	label, ok := kindLabels[kind]
	if !ok {
		label = "ERROR"
	}
	color, ok := kindColors[kind]
	if !ok {
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + label + "]")
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}
