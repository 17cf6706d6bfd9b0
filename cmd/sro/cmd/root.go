package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/pkg/core/config"
	"github.com/msto63/sro/pkg/core/logging"
)

// Exit codes
const (
	ExitOK       = 0
	ExitRejected = 1 // at least one record was rejected
	ExitError    = 2 // the run itself failed
)

var (
	cfgFile string
	verbose bool
)

// errRejected signals that validation ran but rejected records
var errRejected = errors.New("records rejected")

var rootCmd = &cobra.Command{
	Use:   "sro",
	Short: "SRO - Validação de registros SUSEP",
	Long: `sro prüft Datensätze des SUSEP "Sistema de Registro de Operações"
(Apólices, Endossos, Prêmios, Sinistros, Complemento Auto, CCG)
gegen die Invarianten des Registerformats.

Befehle:
  validate  - Datei prüfen (JSON, YAML, TOML)
  serve     - gRPC-Validierungsdienst mit Metriken starten
  reports   - Gespeicherte Prüfberichte anzeigen
  checksum  - CPF/CNPJ-Prüfziffern prüfen
  status    - Gesundheitszustand eines Dienstes abfragen`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errRejected):
		return ExitRejected
	default:
		printError(err)
		return ExitError
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/sro.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig loads the --config file or the default locations
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger creates the CLI logger. Logs go to stderr, results to stdout.
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.FromConfig(logging.LoggerConfig{
		ServiceName: "sro",
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stderr,
	})
}

func printError(err error) {
	if e, ok := mdwerror.As(err); ok && e.Code() != mdwerror.CodeUnknown {
		fmt.Fprintf(os.Stderr, "Fehler [%s]: %v\n", e.Code(), err)
		return
	}
	fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
}
