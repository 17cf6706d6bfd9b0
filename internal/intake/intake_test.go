package intake_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/internal/intake"
	"github.com/msto63/sro/internal/metrics"
	"github.com/msto63/sro/pkg/sro"
	"github.com/msto63/sro/pkg/sro/movimentosinistro"
)

var today = timex.MustParseDate("2024-06-30")

const movimentoJSON = `{
	"uuid": "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f",
	"codigoSeguradora": "12345",
	"grupoRamo": "0531",
	"codigoSinistro": "SIN-2024-77",
	"identificadorMovimento": %q,
	"apoliceCodigo": "AP-0001",
	"valorMovimento": "5000.00",
	"valorMovimentoReais": "5000.00",
	"moeda": "BRL",
	"tipoSinistro": 1,
	"tipoMovimento": 1,
	"origem": 1,
	"tipoOperacao": 1,
	"indicadorExclusao": 1,
	"dataMovimento": "2024-05-20",
	"dataRegistro": "2024-05-20",
	"dataAlteracao": "2024-05-20"%s
}`

func movimento(id, extra string) string {
	return fmt.Sprintf(movimentoJSON, id, extra)
}

func envelope(entity string, records ...string) string {
	return fmt.Sprintf(`{"entity": %q, "records": [%s]}`, entity, strings.Join(records, ","))
}

func decodeJSON(t *testing.T, input string) intake.Batch {
	t.Helper()
	batch, err := intake.NewDecoder(intake.FormatJSON).Decode(strings.NewReader(input), "test.json")
	require.NoError(t, err)
	return batch
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]intake.Format{
		"json": intake.FormatJSON,
		"YAML": intake.FormatYAML,
		"yml":  intake.FormatYAML,
		"toml": intake.FormatTOML,
	} {
		got, err := intake.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := intake.ParseFormat("xml")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnsupportedFormat))
}

func TestFormatFromPath(t *testing.T) {
	f, err := intake.FormatFromPath("/data/lote-05.yml")
	require.NoError(t, err)
	assert.Equal(t, intake.FormatYAML, f)

	_, err = intake.FormatFromPath("lote")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnsupportedFormat))
}

func TestDecode_JSON(t *testing.T) {
	batch := decodeJSON(t, envelope("movimento-sinistro", movimento("MS-1", ""), movimento("MS-2", "")))

	assert.Equal(t, sro.KindMovimentoSinistro, batch.Kind)
	assert.Equal(t, "test.json", batch.Source)
	require.Len(t, batch.Records, 2)
	assert.Equal(t, "MS-1", batch.Records[0].Key())
	assert.Equal(t, "MS-2", batch.Records[1].Key())
}

func TestDecode_YAML(t *testing.T) {
	input := `
entity: movimento-sinistro
records:
  - uuid: 3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f
    codigoSeguradora: "12345"
    grupoRamo: "0531"
    codigoSinistro: SIN-2024-77
    identificadorMovimento: MS-1
    apoliceCodigo: AP-0001
    valorMovimento: "5000.00"
    valorMovimentoReais: "5000.00"
    moeda: BRL
    tipoSinistro: 1
    tipoMovimento: 1
    origem: 1
    tipoOperacao: 1
    indicadorExclusao: 1
    dataMovimento: "2024-05-20"
    dataRegistro: "2024-05-20"
    dataAlteracao: "2024-05-20"
    adicionais:
      - tipoAdicional: 2
        valorMovimentoAdicional: "150.00"
        valorMovimentoAdicionalReais: "150.00"
`
	batch, err := intake.NewDecoder(intake.FormatYAML).Decode(strings.NewReader(input), "test.yaml")
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)

	rec, ok := batch.Records[0].(*intake.MovimentoSinistroRecord)
	require.True(t, ok)
	assert.Equal(t, "12345", rec.CodigoSeguradora)
	require.Len(t, rec.Adicionais, 1)

	v, err := intake.NewBuilder(today).Build(rec)
	require.NoError(t, err)
	m, ok := v.(movimentosinistro.MovimentoSinistro)
	require.True(t, ok)
	assert.Equal(t, 1, m.Adicionais().Len())
}

func TestDecode_TOML(t *testing.T) {
	input := `
entity = "movimento-sinistro"

[[records]]
uuid = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
codigoSeguradora = "12345"
grupoRamo = "0531"
codigoSinistro = "SIN-2024-77"
identificadorMovimento = "MS-1"
apoliceCodigo = "AP-0001"
valorMovimento = "5000.00"
valorMovimentoReais = "5000.00"
moeda = "BRL"
tipoSinistro = 1
tipoMovimento = 1
origem = 1
tipoOperacao = 1
indicadorExclusao = 1
dataMovimento = "2024-05-20"
dataRegistro = "2024-05-20"
dataAlteracao = "2024-05-20"

[[records.adicionais]]
tipoAdicional = 2
valorMovimentoAdicional = "150.00"
valorMovimentoAdicionalReais = "150.00"
`
	batch, err := intake.NewDecoder(intake.FormatTOML).Decode(strings.NewReader(input), "test.toml")
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "MS-1", batch.Records[0].Key())

	_, err = intake.NewBuilder(today).Build(batch.Records[0])
	assert.NoError(t, err)
}

func TestDecode_UnknownEntity(t *testing.T) {
	_, err := intake.NewDecoder(intake.FormatJSON).
		Decode(strings.NewReader(envelope("apolice", "{}")), "test.json")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownEntity))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := intake.NewDecoder(intake.FormatJSON).
		Decode(strings.NewReader(`{"entity": "ccg", "records": [`), "broken.json")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDecodeFailed))
}

func TestDecodeRecord(t *testing.T) {
	rec, err := intake.DecodeRecord(sro.KindMovimentoSinistro, []byte(movimento("MS-9", "")))
	require.NoError(t, err)
	assert.Equal(t, "MS-9", rec.Key())

	_, err = intake.DecodeRecord(sro.Kind("apolice"), []byte("{}"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUnknownEntity))
}

func TestBuilder_ChildPath(t *testing.T) {
	batch := decodeJSON(t, envelope("movimento-sinistro", movimento("MS-1", `,
	"adicionais": [
		{"tipoAdicional": 2, "valorMovimentoAdicional": "1.00", "valorMovimentoAdicionalReais": "1.00"},
		{"valorMovimentoAdicional": "1.00", "valorMovimentoAdicionalReais": "1.00"}
	]`)))

	_, err := intake.NewBuilder(today).Build(batch.Records[0])
	rej, ok := validation.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, "MovimentoSinistro", rej.Entity)
	require.Len(t, rej.Violations, 1)
	assert.Equal(t, "adicionais[1].tipoAdicional", rej.First().Field)
	assert.Equal(t, validation.KindMissingRequiredField, rej.First().Kind())
}

func TestBuilder_ChildAndHeaderViolations(t *testing.T) {
	record := strings.Replace(movimento("MS-2", `,
	"adicionais": [
		{"valorMovimentoAdicional": "1.00", "valorMovimentoAdicionalReais": "1.00"}
	]`), `"codigoSinistro": "SIN-2024-77",`, "", 1)
	batch := decodeJSON(t, envelope("movimento-sinistro", record))

	_, err := intake.NewBuilder(today).Build(batch.Records[0])
	rej, ok := validation.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, "MovimentoSinistro", rej.Entity)

	fields := make([]string, len(rej.Violations))
	for i, v := range rej.Violations {
		fields[i] = v.Field
	}
	assert.Equal(t, []string{"adicionais[0].tipoAdicional", "codigoSinistro"}, fields)
	assert.Equal(t, validation.KindMissingRequiredField, rej.Violations[1].Kind())
}

func TestValidator_ValidateBatch(t *testing.T) {
	batch := decodeJSON(t, envelope("movimento-sinistro",
		movimento("MS-1", ""),
		movimento("", ""),
		movimento("MS-3", ""),
	))
	m := metrics.New()
	v := intake.NewValidator(intake.NewBuilder(today), intake.WithMetrics(m), intake.WithConcurrency(2))

	rep, err := v.ValidateBatch(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, "movimento-sinistro", rep.Entity)
	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 2, rep.Valid)
	assert.Equal(t, 1, rep.Rejected)
	assert.False(t, rep.OK())

	rejected := rep.Records[1]
	assert.Equal(t, 1, rejected.Index)
	assert.False(t, rejected.Valid)
	require.NotEmpty(t, rejected.Violations)
	assert.Equal(t, "identificadorMovimento", rejected.Violations[0].Field)
	assert.Equal(t, validation.KindMissingRequiredField, rejected.Violations[0].Kind)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Validations.WithLabelValues("movimento-sinistro", metrics.OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("movimento-sinistro", metrics.OutcomeRejected)))
}

func TestValidator_PreservesOrder(t *testing.T) {
	records := make([]string, 50)
	for i := range records {
		records[i] = movimento(fmt.Sprintf("MS-%d", i), "")
	}
	batch := decodeJSON(t, envelope("movimento-sinistro", records...))

	rep, err := intake.NewValidator(intake.NewBuilder(today), intake.WithConcurrency(8)).
		ValidateBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, rep.Records, 50)
	for i, o := range rep.Records {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, fmt.Sprintf("MS-%d", i), o.Key)
	}
	assert.True(t, rep.OK())
}

func TestValidator_Cancelled(t *testing.T) {
	batch := decodeJSON(t, envelope("movimento-sinistro", movimento("MS-1", "")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := intake.NewValidator(intake.NewBuilder(today)).ValidateBatch(ctx, batch)
	assert.Nil(t, rep)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeCanceled))
}
