package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/pkg/core/config"
	coreGrpc "github.com/msto63/sro/pkg/core/grpc"
	"github.com/msto63/sro/pkg/core/logging"
	"github.com/msto63/sro/pkg/sro"
)

const movimentoJSON = `{
	"uuid": "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f",
	"codigoSeguradora": "12345",
	"grupoRamo": "0531",
	"codigoSinistro": "SIN-2024-77",
	"identificadorMovimento": %q,
	"apoliceCodigo": "AP-0001",
	"valorMovimento": "12345678901234.56",
	"valorMovimentoReais": "12345678901234.56",
	"moeda": "BRL",
	"tipoSinistro": 1,
	"tipoMovimento": 1,
	"origem": 1,
	"tipoOperacao": 1,
	"indicadorExclusao": 1,
	"dataMovimento": "2024-05-20",
	"dataRegistro": "2024-05-20",
	"dataAlteracao": "2024-05-20"
}`

func movimento(t *testing.T, id string) intake.Record {
	t.Helper()
	rec, err := intake.DecodeRecord(sro.KindMovimentoSinistro, []byte(fmt.Sprintf(movimentoJSON, id)))
	require.NoError(t, err)
	return rec
}

func newTestClient(t *testing.T, store report.Store) *Client {
	t.Helper()
	_, client := newTestServer(t, store)
	return client
}

func newTestServer(t *testing.T, store report.Store) (*Server, *Client) {
	t.Helper()

	cfg := config.Default()
	cfg.Metrics.Enabled = false
	cfg.Validation.Today = "2024-06-30"

	srv, err := New(cfg, Options{Store: store, Logger: logging.Nop()})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})

	clientCfg := coreGrpc.DefaultClientConfig("passthrough:///bufnet")
	clientCfg.Logger = logging.Nop()
	conn, err := coreGrpc.Dial(clientCfg, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return srv, NewClient(conn)
}

func TestValidate(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	outcome, err := client.Validate(ctx, sro.KindMovimentoSinistro, movimento(t, "MS-1"), "")
	require.NoError(t, err)
	assert.True(t, outcome.Valid)
	assert.Equal(t, "MS-1", outcome.Key)

	outcome, err = client.Validate(ctx, sro.KindMovimentoSinistro, movimento(t, ""), "")
	require.NoError(t, err)
	assert.False(t, outcome.Valid)
	require.NotEmpty(t, outcome.Violations)
	assert.Equal(t, "identificadorMovimento", outcome.Violations[0].Field)
	assert.Equal(t, validation.KindMissingRequiredField, outcome.Violations[0].Kind)
}

func TestValidate_ReferenceDate(t *testing.T) {
	client := newTestClient(t, nil)

	// movement dated after the requested reference date
	outcome, err := client.Validate(context.Background(), sro.KindMovimentoSinistro, movimento(t, "MS-1"), "2024-01-01")
	require.NoError(t, err)
	assert.False(t, outcome.Valid)
	require.NotEmpty(t, outcome.Violations)
	for _, v := range outcome.Violations {
		assert.Equal(t, validation.KindOrderingViolation, v.Kind)
	}

	_, err = client.Validate(context.Background(), sro.KindMovimentoSinistro, movimento(t, "MS-1"), "01/01/2024")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Reload(t *testing.T) {
	srv, client := newTestServer(t, nil)
	ctx := context.Background()

	outcome, err := client.Validate(ctx, sro.KindMovimentoSinistro, movimento(t, "MS-1"), "")
	require.NoError(t, err)
	require.True(t, outcome.Valid)

	cfg := config.Default()
	cfg.Validation.Today = "2024-01-01"
	cfg.Validation.Concurrency = 2
	srv.Reload(cfg)

	outcome, err = client.Validate(ctx, sro.KindMovimentoSinistro, movimento(t, "MS-1"), "")
	require.NoError(t, err)
	assert.False(t, outcome.Valid)
}

func TestValidate_UnknownEntity(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.Validate(context.Background(), sro.Kind("apolice"), movimento(t, "MS-1"), "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidateBatch_StoresReport(t *testing.T) {
	store := report.NewMemoryStore()
	srv, client := newTestServer(t, store)
	ctx := context.Background()

	batch := intake.Batch{
		Kind:    sro.KindMovimentoSinistro,
		Source:  "lote.json",
		Records: []intake.Record{movimento(t, "MS-1"), movimento(t, ""), movimento(t, "MS-3")},
	}
	rep, err := client.ValidateBatch(ctx, batch, "")
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 1, rep.Rejected)
	assert.Equal(t, "lote.json", rep.Source)
	require.Len(t, rep.Records, 3)
	assert.Equal(t, "MS-3", rep.Records[2].Key)

	stored, err := client.GetReport(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, stored.ID)
	assert.Len(t, stored.Records, 3)
	hits, _, _ := srv.reports.Stats()
	assert.Equal(t, int64(1), hits, "stored report is served from the cache")

	list, err := client.ListReports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rep.ID, list[0].ID)

	_, err = client.GetReport(ctx, "missing")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestReports_WithoutStore(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.ListReports(context.Background(), 10)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestToStruct_KeepsDecimals(t *testing.T) {
	s, err := toStruct(map[string]any{
		"amount": json.Number("12345678901234.56"),
		"count":  3,
		"nested": []any{map[string]any{"rate": 0.1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678901234.56", s.Fields["amount"].GetStringValue())
	assert.Equal(t, 3.0, s.Fields["count"].GetNumberValue())
	nested := s.Fields["nested"].GetListValue().Values[0].GetStructValue()
	assert.Equal(t, "0.1", nested.Fields["rate"].GetStringValue())

	var back struct {
		Amount string `json:"amount"`
		Count  int    `json:"count"`
	}
	require.NoError(t, fromStruct(s, &back))
	assert.Equal(t, "12345678901234.56", back.Amount)
	assert.Equal(t, 3, back.Count)
}
