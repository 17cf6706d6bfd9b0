package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/internal/server"
	coreGrpc "github.com/msto63/sro/pkg/core/grpc"
)

var (
	statusAddr    string
	statusTimeout time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fragt den Gesundheitszustand eines sro-Dienstes ab",
	Long: `Fragt den gRPC-Health-Dienst eines laufenden sro serve ab.
Ohne --addr wird die Adresse aus der Konfiguration verwendet.

Exit-Status: 0 SERVING, 1 nicht SERVING, 2 nicht erreichbar.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusAddr, "addr", "a", "", "Adresse des Dienstes (host:port)")
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 5*time.Second, "Timeout der Abfrage")
}

func runStatus(cmd *cobra.Command, args []string) error {
	addr := statusAddr
	if addr == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		addr = cfg.ServerAddress()
	}

	conn, err := coreGrpc.DialSimple(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), statusTimeout)
	defer cancel()

	client := healthpb.NewHealthClient(conn)
	out := cmd.OutOrStdout()
	serving := true
	for _, service := range []string{"", server.ServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			return mdwerror.Wrap(err, "health check failed").
				WithCode(mdwerror.CodeServiceUnavailable).
				WithDetail("address", addr)
		}
		name := service
		if name == "" {
			name = "(server)"
		}
		style := okStyle
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			style = rejectedStyle
			serving = false
		}
		fmt.Fprintf(out, "%-28s %s\n", name, style.Render(resp.GetStatus().String()))
	}

	if !serving {
		return errRejected
	}
	return nil
}
