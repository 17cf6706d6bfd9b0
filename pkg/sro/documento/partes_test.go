package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro/documento"
)

func validPessoa() documento.Pessoa {
	return documento.Pessoa{
		Documento:     "52998224725",
		TipoDocumento: ptr(validationx.DocumentTypeCPF),
		Nome:          "Maria da Silva",
		CodigoPostal:  "01310-100",
		Cidade:        "São Paulo",
		Estado:        "SP",
		Pais:          "BRA",
	}
}

func validSegurado() documento.SeguradoFields {
	return documento.SeguradoFields{
		Pessoa:         validPessoa(),
		DataNascimento: date("1980-05-17"),
		Sexo:           ptr(2),
	}
}

func TestNewSegurado(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *documento.SeguradoFields)
		field   string
		message string
	}{
		{
			name:    "invalid CPF check digit",
			mutate:  func(f *documento.SeguradoFields) { f.Documento = "52998224726" },
			field:   "documento",
			message: "documento is not a valid CPF",
		},
		{
			name: "CNPJ checked when tipo is 2",
			mutate: func(f *documento.SeguradoFields) {
				f.TipoDocumento = ptr(validationx.DocumentTypeCNPJ)
				f.Documento = "11222333000180"
			},
			field:   "documento",
			message: "documento is not a valid CNPJ",
		},
		{
			name:    "blank name is missing",
			mutate:  func(f *documento.SeguradoFields) { f.Nome = "   " },
			field:   "nome",
			message: "nome is required",
		},
		{
			name:    "name too short",
			mutate:  func(f *documento.SeguradoFields) { f.Nome = "Al" },
			field:   "nome",
			message: "nome must have at least 3 characters",
		},
		{
			name:    "document type out of range",
			mutate:  func(f *documento.SeguradoFields) { f.TipoDocumento = ptr(100) },
			field:   "tipoDocumento",
			message: "tipoDocumento must be between 1 and 99",
		},
		{
			name:    "country not ISO 3166 alpha-3",
			mutate:  func(f *documento.SeguradoFields) { f.Pais = "br" },
			field:   "pais",
			message: "pais must be an ISO 3166-1 alpha-3 country code (e.g. BRA, USA)",
		},
		{
			name:    "sex code out of range",
			mutate:  func(f *documento.SeguradoFields) { f.Sexo = ptr(4) },
			field:   "sexoSeguradoParticipante",
			message: "sexoSeguradoParticipante must be between 1 and 3",
		},
		{
			name:    "age above 150",
			mutate:  func(f *documento.SeguradoFields) { f.DataNascimento = date("1870-01-01") },
			field:   "dataNascimento",
			message: "dataNascimento must give an age between 0 and 150 years",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSegurado()
			tt.mutate(&f)

			_, err := documento.NewSegurado(f, today)
			rej := rejection(t, err)
			assert.Equal(t, tt.field, rej.First().Field)
			assert.Equal(t, tt.message, rej.First().Message)
		})
	}
}

func TestNewSegurado_Valid(t *testing.T) {
	seg, err := documento.NewSegurado(validSegurado(), today)
	require.NoError(t, err)
	assert.Equal(t, "52998224725", seg.Documento())

	birth := seg.DataNascimento()
	require.NotNil(t, birth)
	*birth = *date("2000-01-01")
	assert.Equal(t, "1980-05-17", seg.DataNascimento().String())
}

func TestNewSegurado_DocumentMustBeDigitsOnly(t *testing.T) {
	tests := []struct {
		name    string
		tipo    int
		doc     string
		message string
	}{
		{"CPF with punctuation", validationx.DocumentTypeCPF, "111.444.777-35", "documento is not a valid CPF"},
		{"CPF embedded in text", validationx.DocumentTypeCPF, "CPF 11144477735 (titular)", "documento is not a valid CPF"},
		{"CPF interleaved with letters", validationx.DocumentTypeCPF, "1a1b1c4d4e4f7g7h7i3j5", "documento is not a valid CPF"},
		{"CNPJ with punctuation", validationx.DocumentTypeCNPJ, "11.222.333/0001-81", "documento is not a valid CNPJ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSegurado()
			f.TipoDocumento = ptr(tt.tipo)
			f.Documento = tt.doc

			_, err := documento.NewSegurado(f, today)
			rej := rejection(t, err)
			assert.Equal(t, "documento", rej.First().Field)
			assert.Equal(t, validation.KindInvalidFormat, rej.First().Kind())
			assert.Equal(t, tt.message, rej.First().Message)
		})
	}

	f := validSegurado()
	f.TipoDocumento = ptr(validationx.DocumentTypeCNPJ)
	f.Documento = "11222333000181"
	_, err := documento.NewSegurado(f, today)
	assert.NoError(t, err)
}

func TestSegurado_Idade(t *testing.T) {
	seg, err := documento.NewSegurado(validSegurado(), today)
	require.NoError(t, err)

	idade, ok := seg.Idade(today)
	require.True(t, ok)
	assert.Equal(t, 44, idade)
	assert.True(t, seg.MaiorDeIdade(today))

	idade, ok = seg.Idade(timex.MustParseDate("1998-05-16"))
	require.True(t, ok)
	assert.Equal(t, 17, idade)
	assert.False(t, seg.MaiorDeIdade(timex.MustParseDate("1998-05-16")))
	assert.True(t, seg.MaiorDeIdade(timex.MustParseDate("1998-05-17")))

	f := validSegurado()
	f.DataNascimento = nil
	seg, err = documento.NewSegurado(f, today)
	require.NoError(t, err)
	_, ok = seg.Idade(today)
	assert.False(t, ok)
	assert.False(t, seg.MaiorDeIdade(today))
}

func TestNewSegurado_OptionalFieldsMayBeAbsent(t *testing.T) {
	f := validSegurado()
	f.DataNascimento = nil
	f.Sexo = nil

	seg, err := documento.NewSegurado(f, today)
	require.NoError(t, err)
	assert.Nil(t, seg.DataNascimento())
}

func TestNewSegurado_FutureBirthDate(t *testing.T) {
	f := validSegurado()
	f.DataNascimento = date("2024-07-01")

	_, err := documento.NewSegurado(f, today)
	rej := rejection(t, err)
	require.Len(t, rej.Violations, 1)
	assert.Equal(t, "dataNascimento", rej.First().Field)
	assert.Equal(t, validation.KindOrderingViolation, rej.First().Kind())
	assert.Equal(t, "dataNascimento must not be in the future", rej.First().Message)
}

func TestNewSegurado_PassportSkipsChecksum(t *testing.T) {
	f := validSegurado()
	f.TipoDocumento = ptr(validationx.DocumentTypePassport)
	f.Documento = "FX123456"

	_, err := documento.NewSegurado(f, today)
	assert.NoError(t, err)
}

func TestNewBeneficiarioAndTomador(t *testing.T) {
	_, err := documento.NewBeneficiario(documento.BeneficiarioFields{Pessoa: validPessoa()})
	assert.NoError(t, err)

	p := validPessoa()
	p.Cidade = ""
	_, err = documento.NewTomador(documento.TomadorFields{Pessoa: p})
	rej := rejection(t, err)
	assert.Equal(t, "cidade is required", rej.First().Message)
	assert.Equal(t, "Tomador", rej.Entity)
}

func TestNewIntermediario(t *testing.T) {
	f := documento.IntermediarioFields{
		Tipo:              ptr(documento.IntermediarioCorretor),
		Pessoa:            validPessoa(),
		ValorComissao:     dec("1250.50"),
		ValorComissaoReal: dec("1250.50"),
	}

	_, err := documento.NewIntermediario(f)
	rej := rejection(t, err)
	require.Len(t, rej.Violations, 1)
	assert.Equal(t, "codigo is required when tipo is 1 (corretor)", rej.First().Message)
	assert.Equal(t, validation.KindConditionalRuleViolation, rej.First().Kind())

	f.Codigo = "SUSEP-10203"
	inter, err := documento.NewIntermediario(f)
	require.NoError(t, err)
	assert.Equal(t, "1250.5", inter.ValorComissao().String())

	f.Tipo = ptr(2)
	f.Codigo = ""
	_, err = documento.NewIntermediario(f)
	assert.NoError(t, err)

	f.ValorComissao = dec("-0.01")
	_, err = documento.NewIntermediario(f)
	rej = rejection(t, err)
	assert.Equal(t, "valorComissao must not be negative", rej.First().Message)
}
