package ccg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro/ccg"
)

var today = timex.MustParseDate("2024-06-30")

func ptr[T any](v T) *T { return &v }

func date(s string) *timex.Date { return ptr(timex.MustParseDate(s)) }

func dec(s string) *mathx.Decimal { return ptr(mathx.MustNewDecimal(s)) }

func messages(t *testing.T, err error) []string {
	t.Helper()
	rej, ok := validation.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	return rej.Messages()
}

func validCcg() ccg.CcgFields {
	return ccg.CcgFields{
		UUID:              "5e6f7a8b-9c0d-4e1f-a2b3-c4d5e6f7a8b9",
		CodigoSeguradora:  "12345",
		CcgIdentificacao:  "CCG-2024-001",
		DataRegistro:      date("2024-01-15"),
		DataAlteracao:     date("2024-01-15"),
		IndicadorExclusao: ptr(1),
		DataInicio:        date("2024-01-15"),
	}
}

func TestNewCcg_Valid(t *testing.T) {
	tom, err := ccg.NewTomador(ccg.TomadorFields{
		Documento:      "11222333000181",
		TipoDocumento:  ptr(validationx.DocumentTypeCNPJ),
		ControladorGe:  ptr(2),
		RazaoSocial:    "Construtora Exemplo Ltda",
		LimiteAprovado: dec("2500000.00"),
	})
	require.NoError(t, err)
	col, err := ccg.NewColateral(ccg.ColateralFields{
		TipoAtivoColateral:  ptr(3),
		ValorAtivoColateral: dec("800000"),
		UfAtivoColateral:    "SP",
		PaisAtivoColateral:  "Brasil",
	})
	require.NoError(t, err)
	fia, err := ccg.NewFiador(ccg.FiadorFields{
		Documento:     "52998224725",
		TipoDocumento: ptr(validationx.DocumentTypeCPF),
		RazaoSocial:   "João Exemplo",
	})
	require.NoError(t, err)

	f := validCcg()
	f.Tomadores = []ccg.Tomador{tom}
	f.Colaterais = []ccg.Colateral{col}
	f.Fiadores = []ccg.Fiador{fia}

	c, err := ccg.NewCcg(f, today)
	require.NoError(t, err)
	assert.Equal(t, "CCG-2024-001", c.CcgIdentificacao())
	assert.Equal(t, 1, c.Tomadores().Len())
	assert.Equal(t, 1, c.Colaterais().Len())
	assert.Equal(t, 1, c.Fiadores().Len())
}

func TestNewCcg_TermOrdering(t *testing.T) {
	f := validCcg()
	f.DataTermino = date("2024-01-14")

	_, err := ccg.NewCcg(f, today)
	assert.Equal(t, []string{"end date dataTermino must be on or after start date dataInicio"}, messages(t, err))

	f.DataTermino = nil
	_, err = ccg.NewCcg(f, today)
	assert.NoError(t, err)
}

func TestNewTomador_ChecksumFollowsDocumentType(t *testing.T) {
	_, err := ccg.NewTomador(ccg.TomadorFields{
		Documento:      "11222333000181",
		TipoDocumento:  ptr(validationx.DocumentTypeCPF),
		ControladorGe:  ptr(1),
		RazaoSocial:    "Construtora Exemplo Ltda",
		LimiteAprovado: dec("1"),
	})
	assert.Equal(t, []string{"documento is not a valid CPF"}, messages(t, err))
}

func TestNewColateral_Rules(t *testing.T) {
	_, err := ccg.NewColateral(ccg.ColateralFields{
		TipoAtivoColateral:  ptr(0),
		ValorAtivoColateral: dec("-10"),
		UfAtivoColateral:    "S",
	})
	assert.Equal(t, []string{
		"paisAtivoColateral is required",
		"tipoAtivoColateral must be between 1 and 99",
		"valorAtivoColateral must not be negative",
		"ufAtivoColateral must have exactly 2 characters",
	}, messages(t, err))
}

func TestNewFiador_Missing(t *testing.T) {
	_, err := ccg.NewFiador(ccg.FiadorFields{})
	assert.Equal(t, []string{
		"documento is required",
		"tipoDocumento is required",
		"razaoSocial is required",
	}, messages(t, err))
}
