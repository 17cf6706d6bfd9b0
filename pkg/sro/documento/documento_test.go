package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/pkg/sro/documento"
)

var today = timex.MustParseDate("2024-06-30")

func ptr[T any](v T) *T { return &v }

func date(s string) *timex.Date { return ptr(timex.MustParseDate(s)) }

func dec(s string) *mathx.Decimal { return ptr(mathx.MustNewDecimal(s)) }

func validApolice() documento.Apolice {
	return documento.Apolice{
		UUID:                     "12345678-1234-1234-1234-123456789abc",
		CodigoSeguradora:         "12345",
		DataRegistro:             date("2024-01-10"),
		DataAlteracao:            date("2024-01-10"),
		DataEmissao:              date("2024-01-10"),
		IndicadorExclusao:        ptr(1),
		ApoliceCodigo:            "AP-0001",
		TipoEmissao:              ptr(documento.EmissaoPropria),
		DataInicio:               date("2024-02-01"),
		DataTermino:              date("2025-02-01"),
		CodigoFilial:             "0001",
		MoedaApolice:             "BRL",
		LimiteMaximoGarantia:     dec("150000.00"),
		LimiteMaximoGarantiaReal: dec("150000.00"),
	}
}

func validDocumento() documento.DocumentoFields {
	return documento.DocumentoFields{
		Apolice:              validApolice(),
		TipoDocumentoEmitido: ptr(1),
	}
}

func rejection(t *testing.T, err error) *validation.Rejection {
	t.Helper()
	require.Error(t, err)
	rej, ok := validation.AsRejection(err)
	require.True(t, ok, "expected a *validation.Rejection, got %T", err)
	return rej
}

func TestNewDocumento_EndToEnd(t *testing.T) {
	f := validDocumento()
	f.CodigoSeguradora = "1234"

	_, err := documento.NewDocumento(f, today)
	rej := rejection(t, err)
	assert.Contains(t, rej.First().Message, "5 characters")
	assert.Equal(t, "codigoSeguradora", rej.First().Field)

	f.CodigoSeguradora = "12345"
	f.DataTermino = date("2024-01-31")
	_, err = documento.NewDocumento(f, today)
	rej = rejection(t, err)
	assert.Contains(t, rej.First().Message, "end date")
	assert.Contains(t, rej.First().Message, "start date")
	assert.Equal(t, validation.CodeOrdering, rej.First().Code)

	f.DataTermino = date("2025-02-01")
	doc, err := documento.NewDocumento(f, today)
	require.NoError(t, err)
	assert.Equal(t, "12345", doc.CodigoSeguradora())
	assert.True(t, doc.Segurados().IsEmpty())
	assert.True(t, doc.Ccgs().IsEmpty())
	assert.True(t, doc.ObjetosSegurados().IsEmpty())
	assert.NotNil(t, doc.Intermediarios().Slice())
	_, hasPremio := doc.PremioApolice()
	assert.False(t, hasPremio)
}

func TestNewDocumento_CollectsEveryViolationInPhaseOrder(t *testing.T) {
	f := validDocumento()
	f.UUID = "not-a-uuid"
	f.CodigoSeguradora = "1234"
	f.IndicadorExclusao = ptr(3)
	f.DataEmissao = date("2024-07-01")
	f.CodigoFilial = ""

	_, err := documento.NewDocumento(f, today)
	rej := rejection(t, err)

	var fields []string
	for _, v := range rej.Violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"codigoFilial", "uuid", "indicadorExclusao", "codigoSeguradora", "dataEmissao"}, fields)
	assert.Equal(t, validation.PhasePresence, rej.Violations[0].Phase)
	assert.Equal(t, validation.PhaseCrossField, rej.Violations[4].Phase)
	assert.Contains(t, err.Error(), "(and 4 more)")
}

func TestNewDocumento_EmptyInputReportsMissingFields(t *testing.T) {
	_, err := documento.NewDocumento(documento.DocumentoFields{}, today)
	rej := rejection(t, err)

	assert.Equal(t, "uuid is required", rej.First().Message)
	for _, v := range rej.Violations {
		assert.Equal(t, validation.CodeRequired, v.Code, v.Message)
	}
	assert.Len(t, rej.Violations, 15)
}

func TestNewDocumento_CertificadoConditional(t *testing.T) {
	tests := []struct {
		name    string
		tipo    int
		cert    string
		wantErr bool
	}{
		{"individual without certificate", 4, "", true},
		{"group certificate without code", 7, "", true},
		{"certificate given", 10, "CERT-1", false},
		{"policy needs no certificate", 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validDocumento()
			f.TipoDocumentoEmitido = ptr(tt.tipo)
			f.CertificadoCodigo = tt.cert

			_, err := documento.NewDocumento(f, today)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			rej := rejection(t, err)
			assert.Equal(t, "certificadoCodigo", rej.First().Field)
			assert.Equal(t, validation.CodeConditional, rej.First().Code)
			assert.Equal(t, "certificadoCodigo is required when tipoDocumentoEmitido is 4, 7 or 10", rej.First().Message)
		})
	}
}

func TestNewDocumento_CosseguroAceitoRequiresLeader(t *testing.T) {
	f := validDocumento()
	f.TipoEmissao = ptr(documento.EmissaoCosseguroAceito)

	_, err := documento.NewDocumento(f, today)
	rej := rejection(t, err)
	require.Len(t, rej.Violations, 2)
	assert.Equal(t, "codigoSeguradoraLider", rej.Violations[0].Field)
	assert.Equal(t, "apoliceCodigoLider", rej.Violations[1].Field)

	f.CodigoSeguradoraLider = "54321"
	f.ApoliceCodigoLider = "LID-9"
	_, err = documento.NewDocumento(f, today)
	assert.NoError(t, err)
}

func TestNewDocumento_MissingStartSkipsOrdering(t *testing.T) {
	f := validDocumento()
	f.DataInicio = nil

	_, err := documento.NewDocumento(f, today)
	rej := rejection(t, err)
	require.Len(t, rej.Violations, 1)
	assert.Equal(t, "dataInicio is required", rej.First().Message)
}

func TestNewDocumento_TermEndingOnStartIsValid(t *testing.T) {
	f := validDocumento()
	f.DataTermino = f.DataInicio

	_, err := documento.NewDocumento(f, today)
	assert.NoError(t, err)
}

func TestNewDocumento_AmountLayout(t *testing.T) {
	f := validDocumento()
	f.LimiteMaximoGarantia = dec("10.123")

	_, err := documento.NewDocumento(f, today)
	rej := rejection(t, err)
	assert.Equal(t, "limiteMaximoGarantia must have at most 16 integer digits and 2 decimal places", rej.First().Message)

	f.LimiteMaximoGarantia = dec("-1")
	_, err = documento.NewDocumento(f, today)
	rej = rejection(t, err)
	assert.Equal(t, "limiteMaximoGarantia must not be negative", rej.First().Message)
}

func TestDocumento_IsImmutable(t *testing.T) {
	seg, err := documento.NewSegurado(validSegurado(), today)
	require.NoError(t, err)

	f := validDocumento()
	f.Segurados = []documento.Segurado{seg}
	doc, err := documento.NewDocumento(f, today)
	require.NoError(t, err)

	*f.DataInicio = timex.MustParseDate("2030-01-01")
	f.Segurados[0] = documento.Segurado{}
	f.Segurados = append(f.Segurados, seg)

	assert.Equal(t, "2024-02-01", doc.DataInicio().String())
	require.Equal(t, 1, doc.Segurados().Len())
	assert.Equal(t, "Maria da Silva", doc.Segurados().At(0).Nome())

	got := doc.Fields()
	*got.DataTermino = timex.MustParseDate("2030-01-01")
	got.Segurados[0] = documento.Segurado{}
	assert.Equal(t, "2025-02-01", doc.DataTermino().String())
	assert.Equal(t, "Maria da Silva", doc.Segurados().At(0).Nome())

	view := doc.Segurados().Slice()
	view[0] = documento.Segurado{}
	assert.Equal(t, "Maria da Silva", doc.Segurados().At(0).Nome())
}

func TestMustDocumento_PanicsOnRejection(t *testing.T) {
	assert.Panics(t, func() { documento.MustDocumento(documento.DocumentoFields{}, today) })
	assert.NotPanics(t, func() { documento.MustDocumento(validDocumento(), today) })
}

func TestRejection_UnwrapsToValidationFailed(t *testing.T) {
	_, err := documento.NewDocumento(documento.DocumentoFields{}, today)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Documento rejected: uuid is required")
	assert.ErrorContains(t, err, "(and 14 more)")
}
