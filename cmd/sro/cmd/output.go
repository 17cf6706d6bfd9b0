package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sro/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	rejectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	keyStyle      = lipgloss.NewStyle().Bold(true)
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// renderReport writes a human readable report: the rejected records with
// their violations, then per-kind counts and the summary line
func renderReport(w io.Writer, rep *report.Report) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s  %s", rep.Entity, rep.Source)))

	for _, rec := range rep.Records {
		if rec.Valid {
			continue
		}
		key := rec.Key
		if key == "" {
			key = "-"
		}
		fmt.Fprintf(w, "%s %s\n", rejectedStyle.Render("✗"), keyStyle.Render(fmt.Sprintf("#%d %s", rec.Index, key)))
		for _, v := range rec.Violations {
			fmt.Fprintf(w, "    %s %s\n", kindStyle.Render(fmt.Sprintf("%-26s", v.Kind)), v.Message)
		}
	}

	counts := rep.KindCounts()
	if len(counts) > 0 {
		fmt.Fprintln(w)
		for _, kind := range report.SortedKinds(counts) {
			fmt.Fprintf(w, "  %s %d\n", mutedStyle.Render(fmt.Sprintf("%-26s", kind)), counts[kind])
		}
	}

	fmt.Fprintln(w)
	status := okStyle.Render("OK")
	if !rep.OK() {
		status = rejectedStyle.Render("ABGELEHNT")
	}
	fmt.Fprintf(w, "%s  %s\n", status, rep.Summary())
}

// renderReportList writes one line per report
func renderReportList(w io.Writer, reports []*report.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Keine Berichte gespeichert"))
		return
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%-36s  %-19s  %-18s  %7s  %7s  %s",
		"ID", "GESTARTET", "ENTITÄT", "GÜLTIG", "ABGEL.", "QUELLE")))
	for _, r := range reports {
		rejected := fmt.Sprintf("%7d", r.Rejected)
		if r.Rejected > 0 {
			rejected = rejectedStyle.Render(rejected)
		}
		fmt.Fprintf(w, "%-36s  %-19s  %-18s  %7d  %s  %s\n",
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.Entity,
			r.Valid,
			rejected,
			r.Source,
		)
	}
}

// renderStats writes store totals
func renderStats(w io.Writer, stats report.Stats) {
	var b strings.Builder
	fmt.Fprintf(&b, "Berichte: %d  Datensätze: %d  abgelehnt: %d", stats.Reports, stats.Records, stats.Rejected)
	if !stats.LastRun.IsZero() {
		fmt.Fprintf(&b, "  letzter Lauf: %s", stats.LastRun.Local().Format(time.DateTime))
	}
	fmt.Fprintln(w, mutedStyle.Render(b.String()))
}
