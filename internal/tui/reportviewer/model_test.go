package reportviewer

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/internal/report"
)

func sampleReport() *report.Report {
	r := report.New("lote.json", "sinistro")
	r.Add(report.Accepted(0, "SIN-1"))
	r.Add(report.RecordOutcome{Index: 1, Key: "SIN-2", Violations: []report.Violation{
		{Field: "codigoSinistro", Kind: validation.KindMissingRequiredField, Message: "codigoSinistro is required"},
	}})
	r.Add(report.RecordOutcome{Index: 2, Key: "SIN-3", Violations: []report.Violation{
		{Field: "dataAviso", Kind: validation.KindOrderingViolation, Message: "dataAviso must not be in the future"},
	}})
	r.Finish()
	return r
}

func newLoadedModel(t *testing.T) (Model, *report.Report) {
	t.Helper()
	store := report.NewMemoryStore()
	r := sampleReport()
	require.NoError(t, store.Save(context.Background(), r))

	m := New(DefaultConfig(store))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	next, _ = m.Update(m.loadReports())
	return next.(Model), r
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_LoadsReports(t *testing.T) {
	m, r := newLoadedModel(t)

	assert.False(t, m.loading)
	require.Len(t, m.reports, 1)
	assert.Equal(t, r.ID, m.reports[0].ID)
	assert.EqualValues(t, 2, m.stats.Rejected)
	assert.Contains(t, m.View(), "sinistro")
}

func TestModel_OpenReportAndFilter(t *testing.T) {
	m, _ := newLoadedModel(t)

	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)

	require.NotNil(t, m.current)
	assert.Len(t, m.visibleRecords(), 2)

	// 1 hides missing required fields
	m, _ = press(m, "1")
	visible := m.visibleRecords()
	require.Len(t, visible, 1)
	assert.Equal(t, "SIN-3", visible[0].Key)

	// 6 hides ordering violations too
	m, _ = press(m, "6")
	assert.Empty(t, m.visibleRecords())
	assert.Contains(t, m.renderRecords(), "Keine abgelehnten")

	m, _ = press(m, "0")
	assert.Len(t, m.visibleRecords(), 2)

	m, _ = press(m, "esc")
	assert.Nil(t, m.current)
}

func TestModel_CursorBounds(t *testing.T) {
	m, _ := newLoadedModel(t)

	m, _ = press(m, "k")
	assert.Equal(t, 0, m.cursor)
	m, _ = press(m, "j")
	assert.Equal(t, 0, m.cursor)
}

func TestModel_LoadError(t *testing.T) {
	m := New(DefaultConfig(report.NewMemoryStore()))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	next, _ = m.Update(reportsLoadedMsg{err: errors.New("database is locked")})
	m = next.(Model)
	assert.Contains(t, m.View(), "database is locked")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newLoadedModel(t)
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestRenderKindBadge(t *testing.T) {
	assert.True(t, strings.Contains(RenderKindBadge(validation.KindSizeViolation), "SIZE"))
	assert.True(t, strings.Contains(RenderKindBadge("Error"), "ERROR"))
}
