package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/internal/tui/reportviewer"
)

var (
	reportsLimit     int
	browseLimit      int
	reportsJSON      bool
	reportsOlderThan time.Duration
	reportsVacuum    bool
)

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Aliases: []string{"report", "berichte"},
	Short:   "Gespeicherte Prüfberichte",
	Long: `Zeigt und verwaltet die Prüfberichte im Report-Store
(Pfad aus store.path bzw. SRO_STORE_PATH).`,
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet die neuesten Berichte",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, store *report.SQLiteStore) error {
		reports, err := store.List(cmd.Context(), reportsLimit)
		if err != nil {
			return err
		}
		if reportsJSON {
			return writeJSON(cmd, reports)
		}
		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}
		renderReportList(cmd.OutOrStdout(), reports)
		renderStats(cmd.OutOrStdout(), stats)
		return nil
	}),
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt einen Bericht mit allen abgelehnten Datensätzen",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, store *report.SQLiteStore) error {
		rep, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if reportsJSON {
			return writeJSON(cmd, rep)
		}
		renderReport(cmd.OutOrStdout(), rep)
		return nil
	}),
}

var reportsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Löscht alte Berichte",
	Long: `Löscht Berichte, die vor mehr als --older-than gestartet wurden.
Ohne --older-than gilt store.retention aus der Konfiguration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		olderThan := reportsOlderThan
		if olderThan == 0 {
			olderThan = cfg.Store.Retention
		}

		store, err := report.NewSQLiteStore(report.SQLiteConfig{Path: cfg.Store.Path})
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.Prune(cmd.Context(), olderThan)
		if err != nil {
			return err
		}
		if reportsVacuum {
			if err := store.Vacuum(cmd.Context()); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d Berichte gelöscht (älter als %s)\n", deleted, olderThan)
		return nil
	},
}

var reportsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interaktiver Berichts-Browser",
	Long: `Startet den interaktiven Berichts-Browser.

Tastenkuerzel:
  ↑/↓ j/k     Bericht wählen
  Enter       Bericht öffnen
  Esc         Zurück zur Liste
  1-6         Verletzungsart togglen (1=Pflichtfeld, 2=Format, 3=Wertebereich,
              4=Größe, 5=Bedingung, 6=Reihenfolge)
  0           Alle Arten anzeigen
  r           Refresh
  g / G       Zum Anfang / Ende springen
  q, Ctrl+C   Beenden`,
	Args: cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, store *report.SQLiteStore) error {
		cfg := reportviewer.DefaultConfig(store)
		cfg.Limit = browseLimit
		return reportviewer.Run(cfg)
	}),
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsListCmd, reportsShowCmd, reportsPruneCmd, reportsBrowseCmd)

	reportsCmd.PersistentFlags().BoolVar(&reportsJSON, "json", false, "Ausgabe als JSON")
	reportsListCmd.Flags().IntVarP(&reportsLimit, "limit", "n", 20, "Maximale Anzahl")
	reportsBrowseCmd.Flags().IntVarP(&browseLimit, "limit", "n", 200, "Maximale Anzahl")
	reportsPruneCmd.Flags().DurationVar(&reportsOlderThan, "older-than", 0, "Mindestalter, z.B. 720h")
	reportsPruneCmd.Flags().BoolVar(&reportsVacuum, "vacuum", false, "Datenbank danach verdichten")
}

// withStore opens the configured report store around run
func withStore(run func(*cobra.Command, []string, *report.SQLiteStore) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := report.NewSQLiteStore(report.SQLiteConfig{Path: cfg.Store.Path})
		if err != nil {
			return err
		}
		defer store.Close()
		return run(cmd, args, store)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
