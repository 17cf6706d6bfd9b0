package sro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/sro/foundation/core/validation"
)

type inner struct {
	Code *int
}

type sample struct {
	inner
	Name  string
	Count *int
	Items []string
}

func TestDetach(t *testing.T) {
	n, c := 1, 2
	src := sample{inner: inner{Code: &c}, Name: "a", Count: &n, Items: []string{"x"}}

	cp := Detach(src)
	*src.Count = 10
	*src.Code = 20
	src.Items[0] = "y"

	assert.Equal(t, 1, *cp.Count)
	assert.Equal(t, 2, *cp.Code)
	assert.Equal(t, []string{"x"}, cp.Items)
	assert.Equal(t, "a", cp.Name)
}

func TestDetach_NilFieldsStayNil(t *testing.T) {
	cp := Detach(sample{})
	assert.Nil(t, cp.Count)
	assert.Nil(t, cp.Items)
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone[int](nil))
	v := 5
	cp := Clone(&v)
	v = 6
	assert.Equal(t, 5, *cp)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(string(k))
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("apolice")
	assert.False(t, ok)
}

func TestDocumentRules(t *testing.T) {
	cpf := 1
	r := DocumentRules(validation.NewPlan("Pessoa"), "documento", "11111111111", "tipoDocumento", &cpf).Validate()
	require.False(t, r.Valid)
	assert.Equal(t, "documento is not a valid CPF", r.FirstError().Message)

	other := 99
	r = DocumentRules(validation.NewPlan("Pessoa"), "documento", "AB-99", "tipoDocumento", &other).Validate()
	assert.True(t, r.Valid)

	r = DocumentRules(validation.NewPlan("Pessoa"), "documento", "", "tipoDocumento", nil).Validate()
	assert.Equal(t, []string{"documento is required", "tipoDocumento is required"}, r.ErrorMessages())
}
