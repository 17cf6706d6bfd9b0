// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     movimentopremio
// Description: Premium movement aggregate with its per-coverage premiums
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package movimentopremio implements the premium movement entity. Movement
// types 8, 10 and 13 break the amount down per coverage and must carry a
// premioCobertura list; every other type must not.
package movimentopremio

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// TiposComCobertura are the movement types broken down per coverage
var TiposComCobertura = []int{8, 10, 13}

var nonEmpty validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if n, _ := validation.IntValue(value); n == 0 {
		return validation.NewRuleError(validation.CodeConditional, "nonEmpty", "must not be empty")
	}
	return validation.NewValidationResult()
}

var empty validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if n, _ := validation.IntValue(value); n > 0 {
		return validation.NewRuleError(validation.CodeConditional, "empty", "must be empty")
	}
	return validation.NewValidationResult()
}

// withoutBreakdown holds for a known movement type outside TiposComCobertura
func withoutBreakdown(v validation.Values) bool {
	return validation.Present("tipoMovimento")(v) &&
		validation.Not(validation.In("tipoMovimento", TiposComCobertura...))(v)
}

var movimentoConditionals = validation.ConditionalTable{
	{
		Name:    "premioCoberturaWhenBrokenDown",
		When:    validation.In("tipoMovimento", TiposComCobertura...),
		Field:   "premioCobertura",
		Rule:    nonEmpty,
		Message: "must not be empty when tipoMovimento is " + validation.Describe(TiposComCobertura...),
	},
	{
		Name:    "premioCoberturaOnlyWhenBrokenDown",
		When:    withoutBreakdown,
		Field:   "premioCobertura",
		Rule:    empty,
		Message: "must be empty unless tipoMovimento is " + validation.Describe(TiposComCobertura...),
	},
}

// MovimentoPremioFields are the attributes of a premium movement
type MovimentoPremioFields struct {
	UUID                   string         `json:"uuid" yaml:"uuid"`
	Anotacao               string         `json:"anotacao,omitempty" yaml:"anotacao,omitempty"`
	CodigoSeguradora       string         `json:"codigoSeguradora" yaml:"codigoSeguradora"`
	DataRegistro           *timex.Date    `json:"dataRegistro" yaml:"dataRegistro"`
	DataAlteracao          *timex.Date    `json:"dataAlteracao" yaml:"dataAlteracao"`
	IndicadorExclusao      *int           `json:"indicadorExclusao" yaml:"indicadorExclusao"`
	ApoliceCodigo          string         `json:"apoliceCodigo" yaml:"apoliceCodigo"`
	CertificadoCodigo      string         `json:"certificadoCodigo,omitempty" yaml:"certificadoCodigo,omitempty"`
	EndossoCodigo          string         `json:"endossoCodigo,omitempty" yaml:"endossoCodigo,omitempty"`
	IdentificadorMovimento string         `json:"identificadorMovimento" yaml:"identificadorMovimento"`
	Moeda                  string         `json:"moeda" yaml:"moeda"`
	ValorMovimento         *mathx.Decimal `json:"valorMovimento" yaml:"valorMovimento"`
	ValorMovimentoReal     *mathx.Decimal `json:"valorMovimentoReal" yaml:"valorMovimentoReal"`
	DataMovimento          *timex.Date    `json:"dataMovimento" yaml:"dataMovimento"`
	NumeroParcelaMovimento *int           `json:"numeroParcelaMovimento,omitempty" yaml:"numeroParcelaMovimento,omitempty"`
	DataVencimento         *timex.Date    `json:"dataVencimento,omitempty" yaml:"dataVencimento,omitempty"`
	TipoMovimento          *int           `json:"tipoMovimento" yaml:"tipoMovimento"`

	PremioCobertura []PremioCobertura `json:"-" yaml:"-" toml:"-"`
}

// MovimentoPremio is a validated premium movement
type MovimentoPremio struct {
	f MovimentoPremioFields
}

// NewMovimentoPremio validates f and returns an immutable MovimentoPremio
func NewMovimentoPremio(f MovimentoPremioFields, today timex.Date) (MovimentoPremio, error) {
	if err := ValidateMovimentoPremio(f, today).Reject("MovimentoPremio"); err != nil {
		return MovimentoPremio{}, err
	}
	return MovimentoPremio{f: sro.Detach(f)}, nil
}

// MustMovimentoPremio is like NewMovimentoPremio but panics on rejection
func MustMovimentoPremio(f MovimentoPremioFields, today timex.Date) MovimentoPremio {
	m, err := NewMovimentoPremio(f, today)
	if err != nil {
		panic(err)
	}
	return m
}

// ValidateMovimentoPremio reports every rule f violates
func ValidateMovimentoPremio(f MovimentoPremioFields, today timex.Date) validation.ValidationResult {
	notFuture := validationx.NotFuture(today)

	p := validation.NewPlan("MovimentoPremio")
	p.Required("uuid", f.UUID).
		Required("codigoSeguradora", f.CodigoSeguradora).
		Required("dataRegistro", f.DataRegistro).
		Required("dataAlteracao", f.DataAlteracao).
		Required("indicadorExclusao", f.IndicadorExclusao).
		Required("apoliceCodigo", f.ApoliceCodigo).
		Required("identificadorMovimento", f.IdentificadorMovimento).
		Required("moeda", f.Moeda).
		Required("valorMovimento", f.ValorMovimento).
		Required("valorMovimentoReal", f.ValorMovimentoReal).
		Required("dataMovimento", f.DataMovimento).
		Required("tipoMovimento", f.TipoMovimento)

	p.Format("uuid", f.UUID, validationx.UUID).
		Format("moeda", f.Moeda, validationx.Currency)

	p.Domain("indicadorExclusao", f.IndicadorExclusao, validationx.Range(1, 2)).
		Domain("numeroParcelaMovimento", f.NumeroParcelaMovimento, validationx.Positive).
		Domain("tipoMovimento", f.TipoMovimento, validationx.Range(1, 13))

	p.Size("anotacao", f.Anotacao, validationx.MaxLength(500)).
		Size("codigoSeguradora", f.CodigoSeguradora, validationx.Length(5)).
		Size("apoliceCodigo", f.ApoliceCodigo, validationx.MaxLength(60)).
		Size("certificadoCodigo", f.CertificadoCodigo, validationx.MaxLength(60)).
		Size("endossoCodigo", f.EndossoCodigo, validationx.MaxLength(60)).
		Size("identificadorMovimento", f.IdentificadorMovimento, validationx.MaxLength(80)).
		Size("valorMovimento", f.ValorMovimento, validationx.Amount).
		Size("valorMovimentoReal", f.ValorMovimentoReal, validationx.Amount).
		Size("numeroParcelaMovimento", f.NumeroParcelaMovimento, validationx.MaxDigits(4))

	p.Ordering("dataRegistro", f.DataRegistro, notFuture).
		Ordering("dataAlteracao", f.DataAlteracao, notFuture).
		Ordering("dataMovimento", f.DataMovimento, notFuture).
		Conditionals(movimentoConditionals, validation.Values{
			"tipoMovimento":   f.TipoMovimento,
			"premioCobertura": len(f.PremioCobertura),
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (m MovimentoPremio) Fields() MovimentoPremioFields { return sro.Detach(m.f) }

// UUID returns the record identifier
func (m MovimentoPremio) UUID() string { return m.f.UUID }

// IdentificadorMovimento returns the movement identifier
func (m MovimentoPremio) IdentificadorMovimento() string { return m.f.IdentificadorMovimento }

// TipoMovimento returns the movement type
func (m MovimentoPremio) TipoMovimento() int { return *m.f.TipoMovimento }

// ValorMovimento returns the movement amount in the policy currency
func (m MovimentoPremio) ValorMovimento() mathx.Decimal { return *m.f.ValorMovimento }

// PremioCobertura returns the per-coverage premium breakdown
func (m MovimentoPremio) PremioCobertura() slicex.View[PremioCobertura] {
	return slicex.Freeze(m.f.PremioCobertura)
}

// ===============================
// PremioCobertura
// ===============================

// PremioCoberturaFields are the premium of one coverage in a movement
type PremioCoberturaFields struct {
	GrupoRamo                   string         `json:"grupoRamo" yaml:"grupoRamo"`
	Codigo                      string         `json:"codigo" yaml:"codigo"`
	CoberturaInternaSeguradora  string         `json:"coberturaInternaSeguradora" yaml:"coberturaInternaSeguradora"`
	DataInicio                  *timex.Date    `json:"dataInicio" yaml:"dataInicio"`
	DataTermino                 *timex.Date    `json:"dataTermino" yaml:"dataTermino"`
	LimiteMaximoIndenizacao     *mathx.Decimal `json:"limiteMaximoIndenizacao,omitempty" yaml:"limiteMaximoIndenizacao,omitempty"`
	LimiteMaximoIndenizacaoReal *mathx.Decimal `json:"limiteMaximoIndenizacaoReal,omitempty" yaml:"limiteMaximoIndenizacaoReal,omitempty"`
	ValorPremio                 *mathx.Decimal `json:"valorPremio" yaml:"valorPremio"`
	ValorPremioReal             *mathx.Decimal `json:"valorPremioReal" yaml:"valorPremioReal"`
	AdicionalFracionamento      *mathx.Decimal `json:"adicionalFracionamento,omitempty" yaml:"adicionalFracionamento,omitempty"`
	IOF                         *mathx.Decimal `json:"iof,omitempty" yaml:"iof,omitempty"`
	CustoAquisicao              *mathx.Decimal `json:"custoAquisicao,omitempty" yaml:"custoAquisicao,omitempty"`
}

// PremioCobertura is a validated per-coverage premium
type PremioCobertura struct {
	f PremioCoberturaFields
}

// NewPremioCobertura validates f and returns an immutable PremioCobertura
func NewPremioCobertura(f PremioCoberturaFields) (PremioCobertura, error) {
	if err := ValidatePremioCobertura(f).Reject("PremioCobertura"); err != nil {
		return PremioCobertura{}, err
	}
	return PremioCobertura{f: sro.Detach(f)}, nil
}

// ValidatePremioCobertura reports every rule f violates
func ValidatePremioCobertura(f PremioCoberturaFields) validation.ValidationResult {
	return validation.NewPlan("PremioCobertura").
		Required("grupoRamo", f.GrupoRamo).
		Required("codigo", f.Codigo).
		Required("coberturaInternaSeguradora", f.CoberturaInternaSeguradora).
		Required("dataInicio", f.DataInicio).
		Required("dataTermino", f.DataTermino).
		Required("valorPremio", f.ValorPremio).
		Required("valorPremioReal", f.ValorPremioReal).
		Domain("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao, validationx.NonNegative).
		Domain("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal, validationx.NonNegative).
		Domain("valorPremio", f.ValorPremio, validationx.NonNegative).
		Domain("valorPremioReal", f.ValorPremioReal, validationx.NonNegative).
		Domain("adicionalFracionamento", f.AdicionalFracionamento, validationx.NonNegative).
		Domain("iof", f.IOF, validationx.NonNegative).
		Domain("custoAquisicao", f.CustoAquisicao, validationx.NonNegative).
		Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("codigo", f.Codigo, validationx.MaxLength(50)).
		Size("coberturaInternaSeguradora", f.CoberturaInternaSeguradora, validationx.MaxLength(50)).
		Size("valorPremio", f.ValorPremio, validationx.Amount).
		Size("valorPremioReal", f.ValorPremioReal, validationx.Amount).
		Ordering("dataTermino", f.DataTermino, validationx.OnOrAfter("dataTermino", "dataInicio", f.DataInicio)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (pc PremioCobertura) Fields() PremioCoberturaFields { return sro.Detach(pc.f) }

// ValorPremio returns the coverage premium
func (pc PremioCobertura) ValorPremio() mathx.Decimal { return *pc.f.ValorPremio }
