// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     reportviewer
// Description: Bubbletea model for browsing stored validation reports
// Author:      Mike Stoffels
// Created:     2025-12-07
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package reportviewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/pkg/core/version"
)

// refreshInterval is how often the report list is reloaded
const refreshInterval = 5 * time.Second

// Model is the main Bubbletea model of the report viewer. It shows the
// stored reports, newest first; enter opens the rejected records of the
// selected report.
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Report state
	reports []*report.Report
	cursor  int
	current *report.Report
	stats   report.Stats

	// hidden violation kinds; records with only hidden kinds are not shown
	hidden map[string]bool

	// Configuration
	store report.Store
	limit int
}

// Config holds report viewer configuration
type Config struct {
	Store report.Store
	Limit int
}

// DefaultConfig returns default configuration for store
func DefaultConfig(store report.Store) Config {
	return Config{
		Store: store,
		Limit: 200,
	}
}

// New creates a new report viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner: sp,
		loading: true,
		hidden:  make(map[string]bool),
		store:   cfg.Store,
		limit:   cfg.Limit,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadReports,
		tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		}),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case reportsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.reports = msg.reports
			m.stats = msg.stats
			if m.cursor >= len(m.reports) {
				m.cursor = max(len(m.reports)-1, 0)
			}
			m.updateViewportContent()
		}

	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.current = msg.report
			m.updateViewportContent()
			m.viewport.GotoTop()
		}

	case tickMsg:
		if m.current == nil {
			cmds = append(cmds, m.loadReports)
		}
		cmds = append(cmds, tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		}))
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.current == nil && len(m.reports) > 0 {
			m.loading = true
			return m, m.loadReport(m.reports[m.cursor].ID)
		}
		return m, nil

	case tea.KeyEsc, tea.KeyBackspace:
		if m.current != nil {
			m.current = nil
			m.updateViewportContent()
		}
		return m, nil

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyRunes:
		key := string(msg.Runes)
		switch key {
		case "q":
			return m, tea.Quit

		case "k":
			m.moveCursor(-1)
			return m, nil

		case "j":
			m.moveCursor(1)
			return m, nil

		// Violation kind filters, in phase order
		case "1", "2", "3", "4", "5", "6":
			kind := validation.Kinds[key[0]-'1']
			m.hidden[kind] = !m.hidden[kind]
			m.updateViewportContent()
			return m, nil

		// Show all kinds
		case "0":
			m.hidden = make(map[string]bool)
			m.updateViewportContent()
			return m, nil

		case "r":
			m.loading = true
			if m.current != nil {
				return m, m.loadReport(m.current.ID)
			}
			return m, m.loadReports

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.current != nil {
		if delta < 0 {
			m.viewport.LineUp(1)
		} else {
			m.viewport.LineDown(1)
		}
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.reports) {
		m.cursor = max(len(m.reports)-1, 0)
	}
	m.updateViewportContent()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Berichte..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and the open report
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	sub := SubHeaderStyle.Render(fmt.Sprintf("%d Berichte", len(m.reports)))
	if m.current != nil {
		sub = SubHeaderStyle.Render(fmt.Sprintf("%s  %s  %s",
			m.current.Entity, m.current.Source, shortID(m.current.ID)))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, logo, strings.Repeat(" ", 3), sub)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the violation kind filter bar
func (m Model) renderFilterBar() string {
	filters := make([]string, len(validation.Kinds))
	for i, kind := range validation.Kinds {
		filters[i] = fmt.Sprintf("%d:%s", i+1, RenderFilterStatus(kindLabels[kind], !m.hidden[kind]))
	}

	content := strings.Join(filters, "  ")
	if m.current != nil {
		shown := len(m.visibleRecords())
		content += "  " + HelpDescStyle.Render(fmt.Sprintf("[%d/%d abgelehnt]", shown, m.current.Rejected))
	}
	return FilterBarStyle.Width(m.width - 2).Render(content)
}

// renderStatusBar renders the store totals and errors
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("Datensätze: %d  abgelehnt: %d", m.stats.Records, m.stats.Rejected))
	center := HelpDescStyle.Render("v" + version.Release)

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Lade..."
	case m.err != nil:
		right = ErrorStyle.Render(truncateString(m.err.Error(), 40))
	case !m.stats.LastRun.IsZero():
		right = TimestampStyle.Render("letzter Lauf " + m.stats.LastRun.Local().Format("02.01. 15:04"))
	}

	available := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 4
	if available < 2 {
		available = 2
	}
	leftPadding := available / 2
	content := left + strings.Repeat(" ", leftPadding) + center + strings.Repeat(" ", available-leftPadding) + right

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-6", "Art"),
		RenderKeyHint("0", "Alle"),
	}
	if m.current != nil {
		items = append(items, RenderKeyHint("Esc", "Zurück"))
	} else {
		items = append(items, RenderKeyHint("Enter", "Öffnen"))
	}
	items = append(items,
		RenderKeyHint("r", "Refresh"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Beenden"),
	)
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the report list or the open report
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	if m.current != nil {
		m.viewport.SetContent(m.renderRecords())
		return
	}
	m.viewport.SetContent(m.renderReportList())
}

func (m Model) renderReportList() string {
	if len(m.reports) == 0 {
		return HelpDescStyle.Render("Keine Berichte gespeichert")
	}

	var content strings.Builder
	for i, r := range m.reports {
		line := fmt.Sprintf("%s  %s  %-18s %s  %s  %s",
			TimestampStyle.Render(r.StartedAt.Local().Format("2006-01-02 15:04:05")),
			shortID(r.ID),
			EntityStyle.Render(r.Entity),
			truncateString(r.Source, 30),
			ValidCountStyle.Render(fmt.Sprintf("%d ok", r.Valid)),
			rejectedCount(r.Rejected),
		)
		if i == m.cursor {
			line = ReportSelectedStyle.Render("> " + line)
		} else {
			line = ReportRowStyle.Render("  " + line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	return content.String()
}

func (m Model) renderRecords() string {
	records := m.visibleRecords()
	if len(records) == 0 {
		return HelpDescStyle.Render("Keine abgelehnten Datensätze")
	}

	var content strings.Builder
	for _, rec := range records {
		content.WriteString(RecordKeyStyle.Render(fmt.Sprintf("#%d %s", rec.Index, rec.Key)))
		content.WriteString("\n")
		for _, v := range rec.Violations {
			if m.hidden[v.Kind] {
				continue
			}
			content.WriteString(fmt.Sprintf("    %s %s %s\n",
				RenderKindBadge(v.Kind),
				FieldStyle.Render(v.Field),
				MessageStyle.Render(v.Message),
			))
		}
	}
	return content.String()
}

// visibleRecords returns the rejected records of the open report that
// have at least one violation of a shown kind
func (m Model) visibleRecords() []report.RecordOutcome {
	if m.current == nil {
		return nil
	}
	var out []report.RecordOutcome
	for _, rec := range m.current.Records {
		if rec.Valid {
			continue
		}
		for _, v := range rec.Violations {
			if !m.hidden[v.Kind] {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// loadReports loads the report list and totals from the store
func (m Model) loadReports() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reports, err := m.store.List(ctx, m.limit)
	if err != nil {
		return reportsLoadedMsg{err: err}
	}
	stats, err := m.store.Stats(ctx)
	if err != nil {
		return reportsLoadedMsg{err: err}
	}
	return reportsLoadedMsg{reports: reports, stats: stats}
}

// loadReport loads one report with its records
func (m Model) loadReport(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		r, err := m.store.Get(ctx, id)
		return reportLoadedMsg{report: r, err: err}
	}
}

func rejectedCount(n int) string {
	if n == 0 {
		return ValidCountStyle.Render("0 abgelehnt")
	}
	return RejectedCountStyle.Render(fmt.Sprintf("%d abgelehnt", n))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncateString truncates a string to max length
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// Run starts the report viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
