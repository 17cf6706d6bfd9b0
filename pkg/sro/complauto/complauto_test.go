package complauto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/pkg/sro/complauto"
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

func validCobertura() complauto.CoberturaAutomovelFields {
	return complauto.CoberturaAutomovelFields{
		GrupoRamo:                   "0531",
		Codigo:                      ptr(1001),
		CoberturaInternaSeguradora:  "CASCO",
		NumeroProcesso:              "15414.900002/2024-11",
		LimiteMaximoIndenizacao:     dec("95000.00"),
		LimiteMaximoIndenizacaoReal: dec("95000.00"),
		DataInicioCobertura:         date("2024-02-01"),
		DataTerminoCobertura:        date("2025-02-01"),
		CoberturaPrincipal:          ptr(1),
		CoberturaCaracteristica:     ptr(1),
		CoberturaTipo:               ptr(5),
		ValorPremio:                 dec("2300.00"),
		ValorPremioReal:             dec("2300.00"),
		PercentualLmi:               dec("100"),
	}
}

func TestNewComplAuto_Valid(t *testing.T) {
	cob, err := complauto.NewCoberturaAutomovel(validCobertura())
	require.NoError(t, err)
	fr, err := complauto.NewFranquiaAuto(complauto.FranquiaAutoFields{FranquiaTipo: ptr(1), FranquiaValor: dec("3500")})
	require.NoError(t, err)
	cond, err := complauto.NewPessoaAssociadaCondutor(complauto.PessoaAssociadaCondutorFields{
		SexoCondutor:     ptr(1),
		DataNascimento:   date("1990-03-03"),
		TempoHabilitacao: ptr(12),
	}, today)
	require.NoError(t, err)

	c, err := complauto.NewComplAuto(complauto.ComplAutoFields{
		Codigo:                  "ABC1D23",
		Tipo:                    ptr(4),
		DescricaoObjeto:         "Automóvel de passeio",
		ModalidadeCasco:         ptr(1),
		AnoModelo:               ptr(2023),
		ClasseBonus:             ptr(5),
		PercentualDescontoBonus: dec("12.5"),
		Coberturas:              []complauto.CoberturaAutomovel{cob},
		Franquias:               []complauto.FranquiaAuto{fr},
		Condutores:              []complauto.PessoaAssociadaCondutor{cond},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, c.Tipo())
	assert.Equal(t, 1001, c.Coberturas().At(0).Codigo())
	assert.Equal(t, 1, c.Franquias().Len())
	assert.Equal(t, 1, c.Condutores().Len())
}

func TestNewComplAuto_Rules(t *testing.T) {
	_, err := complauto.NewComplAuto(complauto.ComplAutoFields{
		Codigo:          "ABC1D23",
		Tipo:            ptr(99),
		DescricaoObjeto: "Reboque",
		AnoModelo:       ptr(20231),
		ClasseBonus:     ptr(100),
		CepRisco:        "01310-100",
	})
	assert.Equal(t, []string{
		"anoModelo must have at most 4 digits",
		"cepRisco must have at most 8 characters",
		"classeBonus must have at most 2 digits",
		"descricaoTipo is required when tipo is 99",
	}, messages(t, err))

	_, err = complauto.NewComplAuto(complauto.ComplAutoFields{Codigo: "X", Tipo: ptr(1), DescricaoObjeto: "Y"})
	assert.Equal(t, []string{"tipo must be one of 4, 5, 6 or 99"}, messages(t, err))
}

func TestNewCoberturaAutomovel_Rules(t *testing.T) {
	f := validCobertura()
	f.CoberturaPrincipal = nil
	f.CoberturaTipo = ptr(6)
	f.DiasCobertura = ptr(10000)
	f.PercentualLmi = dec("1.0000000001")

	_, err := complauto.NewCoberturaAutomovel(f)
	assert.Equal(t, []string{
		"coberturaPrincipal is required",
		"coberturaTipo must be between 1 and 5",
		"percentualLmi must have at most 3 integer digits and 9 decimal places",
		"diasCobertura must have at most 4 digits",
	}, messages(t, err))
}

func TestNewCoberturaAutomovel_Sublimite(t *testing.T) {
	f := validCobertura()
	f.LimiteMaximoIndenizacaoSublimite = ptr(complauto.SublimiteSim)

	_, err := complauto.NewCoberturaAutomovel(f)
	assert.Equal(t, []string{"valorPremio must be 0.00", "valorPremioReal must be 0.00"}, messages(t, err))
}

func TestNewFranquiaAuto(t *testing.T) {
	_, err := complauto.NewFranquiaAuto(complauto.FranquiaAutoFields{FranquiaTipo: ptr(6)})
	assert.Equal(t, []string{"franquiaTipo must be one of 1, 2, 3, 4, 5 or 99"}, messages(t, err))

	_, err = complauto.NewFranquiaAuto(complauto.FranquiaAutoFields{FranquiaTipo: ptr(99)})
	assert.Equal(t, []string{"tipoDescricao is required when franquiaTipo is 99"}, messages(t, err))
}

func TestNewPessoaAssociadaCondutor(t *testing.T) {
	_, err := complauto.NewPessoaAssociadaCondutor(complauto.PessoaAssociadaCondutorFields{}, today)
	assert.NoError(t, err)

	_, err = complauto.NewPessoaAssociadaCondutor(complauto.PessoaAssociadaCondutorFields{
		SexoCondutor:     ptr(4),
		TempoHabilitacao: ptr(1000),
		DataNascimento:   date("2030-01-01"),
	}, today)
	assert.Equal(t, []string{
		"sexoCondutor must be one of 1, 2, 3 or 99",
		"tempoHabilitacao must be between 0 and 999",
		"dataNascimento must not be in the future",
	}, messages(t, err))
}
