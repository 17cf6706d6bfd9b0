package movimentopremio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/pkg/sro/movimentopremio"
)

var today = timex.MustParseDate("2024-06-30")

func ptr[T any](v T) *T { return &v }

func date(s string) *timex.Date { return ptr(timex.MustParseDate(s)) }

func dec(s string) *mathx.Decimal { return ptr(mathx.MustNewDecimal(s)) }

func validMovimento() movimentopremio.MovimentoPremioFields {
	return movimentopremio.MovimentoPremioFields{
		UUID:                   "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
		CodigoSeguradora:       "12345",
		DataRegistro:           date("2024-04-02"),
		DataAlteracao:          date("2024-04-02"),
		IndicadorExclusao:      ptr(1),
		ApoliceCodigo:          "AP-0001",
		IdentificadorMovimento: "MOV-2024-0001",
		Moeda:                  "BRL",
		ValorMovimento:         dec("125.00"),
		ValorMovimentoReal:     dec("125.00"),
		DataMovimento:          date("2024-04-01"),
		NumeroParcelaMovimento: ptr(1),
		TipoMovimento:          ptr(1),
	}
}

func validPremioCobertura(t *testing.T) movimentopremio.PremioCobertura {
	t.Helper()
	pc, err := movimentopremio.NewPremioCobertura(movimentopremio.PremioCoberturaFields{
		GrupoRamo:                  "0114",
		Codigo:                     "12",
		CoberturaInternaSeguradora: "INC-01",
		DataInicio:                 date("2024-02-01"),
		DataTermino:                date("2025-02-01"),
		ValorPremio:                dec("125.00"),
		ValorPremioReal:            dec("125.00"),
	})
	require.NoError(t, err)
	return pc
}

func TestNewMovimentoPremio_Valid(t *testing.T) {
	m, err := movimentopremio.NewMovimentoPremio(validMovimento(), today)
	require.NoError(t, err)
	assert.Equal(t, "MOV-2024-0001", m.IdentificadorMovimento())
	assert.True(t, m.PremioCobertura().IsEmpty())
}

func TestNewMovimentoPremio_CoverageBreakdown(t *testing.T) {
	pc := validPremioCobertura(t)

	tests := []struct {
		name    string
		tipo    int
		items   []movimentopremio.PremioCobertura
		message string
	}{
		{"breakdown type without coverages", 8, nil, "premioCobertura must not be empty when tipoMovimento is 8, 10 or 13"},
		{"breakdown type with coverages", 13, []movimentopremio.PremioCobertura{pc}, ""},
		{"plain type with coverages", 2, []movimentopremio.PremioCobertura{pc}, "premioCobertura must be empty unless tipoMovimento is 8, 10 or 13"},
		{"plain type without coverages", 2, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validMovimento()
			f.TipoMovimento = ptr(tt.tipo)
			f.PremioCobertura = tt.items

			m, err := movimentopremio.NewMovimentoPremio(f, today)
			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, len(tt.items), m.PremioCobertura().Len())
				return
			}
			rej, ok := validation.AsRejection(err)
			require.True(t, ok)
			require.Len(t, rej.Violations, 1)
			assert.Equal(t, tt.message, rej.First().Message)
			assert.Equal(t, validation.CodeConditional, rej.First().Code)
		})
	}
}

func TestNewMovimentoPremio_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *movimentopremio.MovimentoPremioFields)
		message string
	}{
		{"currency", func(f *movimentopremio.MovimentoPremioFields) { f.Moeda = "R$" },
			"moeda must be an ISO 4217 currency code (e.g. BRL, USD, EUR)"},
		{"installment zero", func(f *movimentopremio.MovimentoPremioFields) { f.NumeroParcelaMovimento = ptr(0) },
			"numeroParcelaMovimento must be greater than zero"},
		{"installment digits", func(f *movimentopremio.MovimentoPremioFields) { f.NumeroParcelaMovimento = ptr(12345) },
			"numeroParcelaMovimento must have at most 4 digits"},
		{"movement type", func(f *movimentopremio.MovimentoPremioFields) { f.TipoMovimento = ptr(14) },
			"tipoMovimento must be between 1 and 13"},
		{"movement in future", func(f *movimentopremio.MovimentoPremioFields) { f.DataMovimento = date("2024-08-01") },
			"dataMovimento must not be in the future"},
		{"amount decimals", func(f *movimentopremio.MovimentoPremioFields) { f.ValorMovimento = dec("1.001") },
			"valorMovimento must have at most 16 integer digits and 2 decimal places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validMovimento()
			tt.mutate(&f)

			_, err := movimentopremio.NewMovimentoPremio(f, today)
			rej, ok := validation.AsRejection(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, rej.First().Message)
		})
	}
}

func TestNewMovimentoPremio_NegativeAmountAllowed(t *testing.T) {
	f := validMovimento()
	f.ValorMovimento = dec("-125.00")
	f.ValorMovimentoReal = dec("-125.00")

	_, err := movimentopremio.NewMovimentoPremio(f, today)
	assert.NoError(t, err)
}

func TestNewPremioCobertura_Invalid(t *testing.T) {
	_, err := movimentopremio.NewPremioCobertura(movimentopremio.PremioCoberturaFields{
		GrupoRamo:                  "0114",
		Codigo:                     "12",
		CoberturaInternaSeguradora: "INC-01",
		DataInicio:                 date("2024-02-01"),
		DataTermino:                date("2024-01-01"),
		ValorPremio:                dec("-1"),
		ValorPremioReal:            dec("0"),
	})
	rej, ok := validation.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, []string{"valorPremio", "dataTermino"}, []string{rej.Violations[0].Field, rej.Violations[1].Field})
}
