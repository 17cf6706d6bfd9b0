package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/sro/internal/metrics"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/internal/server"
	"github.com/msto63/sro/pkg/core/config"
)

var (
	serveNoStore bool
	servePort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet den gRPC-Validierungsdienst",
	Long: `Startet den Dienst sro.v1.ValidationService.

Der Dienst prüft einzelne Datensätze (Validate) und ganze Lose
(ValidateBatch). Berichte von Losen werden im Report-Store gespeichert.
Prometheus-Metriken und ein JSON-Gesundheitsbericht liegen unter
/metrics und /healthz auf dem Metrik-Port. Mit --config wird die Datei
beobachtet; Änderungen an [validation] gelten ohne Neustart.

Beispiele:
  sro serve
  sro serve --port 9410
  SRO_METRICS_ENABLED=false sro serve --no-store`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveNoStore, "no-store", false, "Berichte nicht speichern")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "gRPC-Port (überschreibt die Konfiguration)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	logger := newLogger(cfg)

	opts := server.Options{Metrics: metrics.New(), Logger: logger}
	if !serveNoStore {
		store, err := report.NewSQLiteStore(report.SQLiteConfig{Path: cfg.Store.Path})
		if err != nil {
			return err
		}
		defer store.Close()

		if cfg.Store.Retention > 0 {
			pruned, err := store.Prune(cmd.Context(), cfg.Store.Retention)
			if err != nil {
				logger.Warn("Failed to prune reports", "error", err)
			} else if pruned > 0 {
				logger.Info("Pruned old reports", "count", pruned, "retention", cfg.Store.Retention)
			}
		}
		opts.Store = store
	}

	srv, err := server.New(cfg, opts)
	if err != nil {
		return err
	}
	if err := srv.StartAsync(); err != nil {
		return err
	}

	if cfgFile != "" {
		watchCtx, stopWatch := context.WithCancel(context.Background())
		defer stopWatch()
		err := config.Watch(watchCtx, cfgFile, srv.Reload, func(err error) {
			logger.Warn("Config reload failed, keeping previous settings", "error", err)
		})
		if err != nil {
			logger.Warn("Config watching disabled", "error", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error("Error during shutdown", "error", err)
		return err
	}

	logger.Info("SRO server stopped")
	return nil
}
