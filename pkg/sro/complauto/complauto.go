// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     complauto
// Description: Motor insurance complement: vehicle, auto coverages,
//              deductibles and associated drivers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package complauto implements the motor complement ("complemento auto")
// entity graph that accompanies motor policies.
package complauto

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

var complAutoConditionals = validation.ConditionalTable{
	{
		Name:    "descricaoTipoWhenOutros",
		When:    validation.Equals("tipo", sro.Outros),
		Field:   "descricaoTipo",
		Rule:    validationx.Required,
		Message: "is required when tipo is 99",
	},
}

// ComplAutoFields are the attributes of a motor complement
type ComplAutoFields struct {
	EndossoCodigo              string         `json:"endossoCodigo,omitempty" yaml:"endossoCodigo,omitempty"`
	Codigo                     string         `json:"codigo" yaml:"codigo"`
	Tipo                       *int           `json:"tipo" yaml:"tipo"`
	DescricaoTipo              string         `json:"descricaoTipo,omitempty" yaml:"descricaoTipo,omitempty"`
	DescricaoObjeto            string         `json:"descricaoObjeto" yaml:"descricaoObjeto"`
	IdentificacaoExataVeiculo  *int           `json:"identificacaoExataVeiculo,omitempty" yaml:"identificacaoExataVeiculo,omitempty"`
	ModalidadeCasco            *int           `json:"modalidadeCasco,omitempty" yaml:"modalidadeCasco,omitempty"`
	PercentualTabelaReferencia *mathx.Decimal `json:"percentualTabelaReferencia,omitempty" yaml:"percentualTabelaReferencia,omitempty"`
	TabelaValorMedio           *int           `json:"tabelaValorMedio,omitempty" yaml:"tabelaValorMedio,omitempty"`
	CodigoModelo               string         `json:"codigoModelo,omitempty" yaml:"codigoModelo,omitempty"`
	AnoModelo                  *int           `json:"anoModelo,omitempty" yaml:"anoModelo,omitempty"`
	CategoriaTarifaria         string         `json:"categoriaTarifaria,omitempty" yaml:"categoriaTarifaria,omitempty"`
	CepRisco                   string         `json:"cepRisco,omitempty" yaml:"cepRisco,omitempty"`
	CepLocalidadeDestino       string         `json:"cepLocalidadeDestino,omitempty" yaml:"cepLocalidadeDestino,omitempty"`
	CepLocalidadePernoite      string         `json:"cepLocalidadePernoite,omitempty" yaml:"cepLocalidadePernoite,omitempty"`
	CodigoUtilizacao           *int           `json:"codigoUtilizacao,omitempty" yaml:"codigoUtilizacao,omitempty"`
	PercentualDescontoBonus    *mathx.Decimal `json:"percentualDescontoBonus,omitempty" yaml:"percentualDescontoBonus,omitempty"`
	ClasseBonus                *int           `json:"classeBonus,omitempty" yaml:"classeBonus,omitempty"`

	Coberturas []CoberturaAutomovel      `json:"-" yaml:"-" toml:"-"`
	Franquias  []FranquiaAuto            `json:"-" yaml:"-" toml:"-"`
	Condutores []PessoaAssociadaCondutor `json:"-" yaml:"-" toml:"-"`
}

// ComplAuto is a validated motor complement
type ComplAuto struct {
	f ComplAutoFields
}

// NewComplAuto validates f and returns an immutable ComplAuto
func NewComplAuto(f ComplAutoFields) (ComplAuto, error) {
	if err := ValidateComplAuto(f).Reject("ComplAuto"); err != nil {
		return ComplAuto{}, err
	}
	return ComplAuto{f: sro.Detach(f)}, nil
}

// MustComplAuto is like NewComplAuto but panics on rejection
func MustComplAuto(f ComplAutoFields) ComplAuto {
	c, err := NewComplAuto(f)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidateComplAuto reports every rule f violates
func ValidateComplAuto(f ComplAutoFields) validation.ValidationResult {
	p := validation.NewPlan("ComplAuto")
	p.Required("codigo", f.Codigo).
		Required("tipo", f.Tipo).
		Required("descricaoObjeto", f.DescricaoObjeto)

	p.Domain("tipo", f.Tipo, validationx.OneOf(4, 5, 6, sro.Outros)).
		Domain("identificacaoExataVeiculo", f.IdentificacaoExataVeiculo, validationx.Range(1, 2)).
		Domain("modalidadeCasco", f.ModalidadeCasco, validationx.OneOf(1, 2, 3, sro.Outros)).
		Domain("percentualTabelaReferencia", f.PercentualTabelaReferencia, validationx.NonNegative).
		Domain("tabelaValorMedio", f.TabelaValorMedio, validationx.OneOf(1, 2, 3, 4, sro.Outros)).
		Domain("codigoUtilizacao", f.CodigoUtilizacao, validationx.OneOf(1, 2, 3, sro.Outros)).
		Domain("percentualDescontoBonus", f.PercentualDescontoBonus, validationx.NonNegative)

	p.Size("endossoCodigo", f.EndossoCodigo, validationx.MaxLength(60)).
		Size("codigo", f.Codigo, validationx.MaxLength(50)).
		Size("descricaoTipo", f.DescricaoTipo, validationx.MaxLength(500)).
		Size("descricaoObjeto", f.DescricaoObjeto, validationx.MaxLength(1024)).
		Size("percentualTabelaReferencia", f.PercentualTabelaReferencia, validationx.Percentage).
		Size("codigoModelo", f.CodigoModelo, validationx.MaxLength(10)).
		Size("anoModelo", f.AnoModelo, validationx.MaxDigits(4)).
		Size("categoriaTarifaria", f.CategoriaTarifaria, validationx.MaxLength(3)).
		Size("cepRisco", f.CepRisco, validationx.MaxLength(8)).
		Size("cepLocalidadeDestino", f.CepLocalidadeDestino, validationx.MaxLength(8)).
		Size("cepLocalidadePernoite", f.CepLocalidadePernoite, validationx.MaxLength(8)).
		Size("percentualDescontoBonus", f.PercentualDescontoBonus, validationx.Percentage).
		Size("classeBonus", f.ClasseBonus, validationx.MaxDigits(2))

	p.Conditionals(complAutoConditionals, validation.Values{
		"tipo":          f.Tipo,
		"descricaoTipo": f.DescricaoTipo,
	})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (c ComplAuto) Fields() ComplAutoFields { return sro.Detach(c.f) }

// Codigo returns the insured vehicle identifier
func (c ComplAuto) Codigo() string { return c.f.Codigo }

// Tipo returns the insured object type
func (c ComplAuto) Tipo() int { return *c.f.Tipo }

// Coberturas returns the motor coverages
func (c ComplAuto) Coberturas() slicex.View[CoberturaAutomovel] { return slicex.Freeze(c.f.Coberturas) }

// Franquias returns the motor deductibles
func (c ComplAuto) Franquias() slicex.View[FranquiaAuto] { return slicex.Freeze(c.f.Franquias) }

// Condutores returns the associated drivers
func (c ComplAuto) Condutores() slicex.View[PessoaAssociadaCondutor] {
	return slicex.Freeze(c.f.Condutores)
}

// ===============================
// PessoaAssociadaCondutor
// ===============================

// PessoaAssociadaCondutorFields describe a driver associated with the vehicle
type PessoaAssociadaCondutorFields struct {
	Documento        string      `json:"documento,omitempty" yaml:"documento,omitempty"`
	SexoCondutor     *int        `json:"sexoCondutor,omitempty" yaml:"sexoCondutor,omitempty"`
	DataNascimento   *timex.Date `json:"dataNascimento,omitempty" yaml:"dataNascimento,omitempty"`
	TempoHabilitacao *int        `json:"tempoHabilitacao,omitempty" yaml:"tempoHabilitacao,omitempty"`
}

// PessoaAssociadaCondutor is a validated driver
type PessoaAssociadaCondutor struct {
	f PessoaAssociadaCondutorFields
}

// NewPessoaAssociadaCondutor validates f and returns an immutable driver
func NewPessoaAssociadaCondutor(f PessoaAssociadaCondutorFields, today timex.Date) (PessoaAssociadaCondutor, error) {
	err := validation.NewPlan("PessoaAssociadaCondutor").
		Domain("sexoCondutor", f.SexoCondutor, validationx.OneOf(1, 2, 3, sro.Outros)).
		Domain("tempoHabilitacao", f.TempoHabilitacao, validationx.Range(0, 999)).
		Size("documento", f.Documento, validationx.MaxLength(40)).
		Ordering("dataNascimento", f.DataNascimento, validationx.NotFuture(today)).
		Validate().
		Reject("PessoaAssociadaCondutor")
	if err != nil {
		return PessoaAssociadaCondutor{}, err
	}
	return PessoaAssociadaCondutor{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (p PessoaAssociadaCondutor) Fields() PessoaAssociadaCondutorFields { return sro.Detach(p.f) }
