package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/internal/server"
	"github.com/msto63/sro/pkg/core/config"
	coreGrpc "github.com/msto63/sro/pkg/core/grpc"
	"github.com/msto63/sro/pkg/core/logging"
)

var (
	validateFormat string
	validateStore  bool
	validateOutput string
	validateToday  string
	validateRemote string
)

var validateCmd = &cobra.Command{
	Use:   "validate <datei>",
	Short: "Prüft eine Datei mit SRO-Datensätzen",
	Long: `Prüft alle Datensätze einer Datei gegen die SRO-Invarianten.

Die Datei ist ein Umschlag mit Entitätsart und Datensätzen:

  {"entity": "documento", "records": [ {...}, {...} ]}

Das Format wird aus der Dateiendung abgeleitet (.json, .yaml, .yml, .toml)
oder mit --format angegeben. "-" liest von stdin (dann ist --format Pflicht).

Exit-Status: 0 alle gültig, 1 mindestens ein Datensatz abgelehnt, 2 Fehler.

Beispiele:
  sro validate apolices.json
  sro validate --output json sinistros.yaml
  sro validate --today 2024-06-30 --store lote.toml
  sro validate --remote localhost:9310 apolices.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Eingabeformat (json, yaml, toml)")
	validateCmd.Flags().BoolVar(&validateStore, "store", false, "Bericht im Report-Store speichern")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "text", "Ausgabe (text, json)")
	validateCmd.Flags().StringVar(&validateToday, "today", "", "Referenzdatum YYYY-MM-DD (default: heute)")
	validateCmd.Flags().StringVar(&validateRemote, "remote", "", "Adresse eines sro-Dienstes statt lokaler Prüfung")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateOutput != "text" && validateOutput != "json" {
		return mdwerror.Newf("unknown output %q, expected text or json", validateOutput).
			WithCode(mdwerror.CodeInvalidInput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if validateToday != "" {
		if _, err := timex.ParseDate(validateToday); err != nil {
			return mdwerror.Wrap(err, "invalid --today").WithCode(mdwerror.CodeInvalidInput)
		}
		cfg.Validation.Today = validateToday
	}

	batch, err := readBatch(cmd.InOrStdin(), args[0], validateFormat)
	if err != nil {
		return err
	}
	logger.Debug("batch decoded", "entity", string(batch.Kind), "records", len(batch.Records), "source", batch.Source)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rep *report.Report
	if validateRemote != "" {
		rep, err = validateRemotely(ctx, validateRemote, batch, validateToday, logger)
	} else {
		rep, err = validateLocally(ctx, cfg, batch, logger)
	}
	if err != nil {
		return err
	}

	if validateStore {
		if err := saveReport(ctx, cfg, rep); err != nil {
			return err
		}
		logger.Info("report stored", "report_id", rep.ID, "path", cfg.Store.Path)
	}

	out := cmd.OutOrStdout()
	if validateOutput == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		renderReport(out, rep)
	}

	if !rep.OK() {
		return errRejected
	}
	return nil
}

// readBatch decodes path, or stdin for "-"
func readBatch(stdin io.Reader, path, formatName string) (intake.Batch, error) {
	var (
		format intake.Format
		err    error
	)
	switch {
	case formatName != "":
		format, err = intake.ParseFormat(formatName)
	case path == "-":
		err = mdwerror.New("--format is required when reading stdin").WithCode(mdwerror.CodeInvalidInput)
	default:
		format, err = intake.FormatFromPath(path)
	}
	if err != nil {
		return intake.Batch{}, err
	}

	if path == "-" {
		return intake.NewDecoder(format).Decode(stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return intake.Batch{}, mdwerror.Wrap(err, "cannot open input").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}
	defer f.Close()

	return intake.NewDecoder(format).Decode(f, path)
}

func validateLocally(ctx context.Context, cfg *config.Config, batch intake.Batch, logger *logging.Logger) (*report.Report, error) {
	v := intake.NewValidator(intake.NewBuilder(cfg.ReferenceDate()),
		intake.WithLogger(logger),
		intake.WithConcurrency(cfg.Validation.Concurrency),
	)
	return v.ValidateBatch(ctx, batch)
}

func validateRemotely(ctx context.Context, addr string, batch intake.Batch, today string, logger *logging.Logger) (*report.Report, error) {
	clientCfg := coreGrpc.DefaultClientConfig(addr)
	clientCfg.Logger = logger
	conn, err := coreGrpc.Dial(clientCfg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return server.NewClient(conn).ValidateBatch(ctx, batch, today)
}

func saveReport(ctx context.Context, cfg *config.Config, rep *report.Report) error {
	store, err := report.NewSQLiteStore(report.SQLiteConfig{Path: cfg.Store.Path})
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, rep)
}
