package sinistro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/pkg/sro/sinistro"
)

var today = timex.MustParseDate("2024-06-30")

func ptr[T any](v T) *T { return &v }

func date(s string) *timex.Date { return ptr(timex.MustParseDate(s)) }

func validSinistro() sinistro.SinistroFields {
	return sinistro.SinistroFields{
		UUID:                   "9b2e4c6a-1f3d-4e5b-8a7c-0d1e2f3a4b5c",
		CodigoSeguradora:       "12345",
		CodigoSinistro:         "SIN-2024-77",
		DataRegistro:           date("2024-05-10"),
		DataAlteracao:          date("2024-05-10"),
		IndicadorExclusao:      ptr(1),
		Status:                 ptr(1),
		DataAlteracaoStatus:    date("2024-05-10"),
		DataOcorrencia:         date("2024-05-01"),
		DataAviso:              date("2024-05-03"),
		DataRegistroSeguradora: date("2024-05-04"),
	}
}

func TestNewSinistro_Valid(t *testing.T) {
	doc, err := sinistro.NewDocumentoAfetado(sinistro.DocumentoAfetadoFields{ApoliceCodigo: "AP-0001"})
	require.NoError(t, err)
	auto, err := sinistro.NewAutomovel(sinistro.AutomovelFields{CodigoObjeto: "OBJ-1", Pais: "BRA"}, today)
	require.NoError(t, err)

	f := validSinistro()
	f.DocumentosAfetados = []sinistro.DocumentoAfetado{doc}
	f.Automoveis = []sinistro.Automovel{auto}

	s, err := sinistro.NewSinistro(f, today)
	require.NoError(t, err)
	assert.Equal(t, "SIN-2024-77", s.CodigoSinistro())
	assert.Equal(t, "AP-0001", s.DocumentosAfetados().At(0).ApoliceCodigo())
	assert.Equal(t, 1, s.Automoveis().Len())
	assert.True(t, s.Justificativas().IsEmpty())
	assert.True(t, s.VistoriasRurais().IsEmpty())
	assert.True(t, s.CoberturasAfetadas().IsEmpty())
}

func TestNewSinistro_NoticeBeforeLoss(t *testing.T) {
	f := validSinistro()
	f.DataAviso = date("2024-04-30")

	_, err := sinistro.NewSinistro(f, today)
	rej, ok := validation.AsRejection(err)
	require.True(t, ok)
	require.Len(t, rej.Violations, 1)
	assert.Equal(t, "end date dataAviso must be on or after start date dataOcorrencia", rej.First().Message)
	assert.Equal(t, validation.KindOrderingViolation, rej.First().Kind())
}

func TestNewSinistro_FutureDates(t *testing.T) {
	f := validSinistro()
	f.DataOcorrencia = date("2024-07-02")
	f.DataAviso = date("2024-07-03")
	f.DataReclamacaoTerceiro = date("2024-07-04")

	_, err := sinistro.NewSinistro(f, today)
	rej, ok := validation.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"dataOcorrencia must not be in the future",
		"dataAviso must not be in the future",
		"dataReclamacaoTerceiro must not be in the future",
	}, rej.Messages())
}

func TestNewSinistro_StatusOutOfRange(t *testing.T) {
	f := validSinistro()
	f.Status = ptr(7)

	_, err := sinistro.NewSinistro(f, today)
	assert.ErrorContains(t, err, "status must be between 1 and 6")
}

func TestNewJustificativaNegativa(t *testing.T) {
	_, err := sinistro.NewJustificativaNegativa(sinistro.JustificativaNegativaFields{Justificativa: ptr(3)})
	assert.NoError(t, err)

	_, err = sinistro.NewJustificativaNegativa(sinistro.JustificativaNegativaFields{Justificativa: ptr(99)})
	assert.ErrorContains(t, err, "descricao is required when justificativa is 99")
}

func TestNewCoberturaAfetada(t *testing.T) {
	_, err := sinistro.NewCoberturaAfetada(sinistro.CoberturaAfetadaFields{GrupoRamo: "0531", Codigo: ptr(0)}, today)
	assert.NoError(t, err)

	_, err = sinistro.NewCoberturaAfetada(sinistro.CoberturaAfetadaFields{
		GrupoRamo: "0531",
		Codigo:    ptr(100000),
		DataAviso: date("2025-01-01"),
	}, today)
	rej, ok := validation.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, []string{"codigo", "dataAviso"}, []string{rej.Violations[0].Field, rej.Violations[1].Field})
}

func TestNewVistoriaRural(t *testing.T) {
	_, err := sinistro.NewVistoriaRural(sinistro.VistoriaRuralFields{})
	assert.NoError(t, err)

	_, err = sinistro.NewVistoriaRural(sinistro.VistoriaRuralFields{UF: "MGS", Pais: "Brasil"})
	rej, ok := validation.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, validation.CodeFormat, rej.Violations[0].Code)
	assert.Equal(t, validation.CodeLength, rej.Violations[1].Code)
}
