// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     movimentosinistro
// Description: Claim movement aggregate: reserves, payments and recoveries
//              posted against a claim
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package movimentosinistro implements the claim movement entity.
package movimentosinistro

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// Movement types that pay out and therefore need a payment method
var tiposPagamento = []int{5, 6}

var movimentoConditionals = validation.ConditionalTable{
	{
		Name:    "contraparteWhenExternalOrigin",
		When:    validation.Between("origem", 2, 5),
		Field:   "codigoContraparte",
		Rule:    validationx.Required,
		Message: "is required when origem is 2, 3, 4 or 5",
	},
	{
		Name:    "tipoPagamentoOutrosWhenOutros",
		When:    validation.Equals("tipoPagamento", sro.Outros),
		Field:   "tipoPagamentoOutros",
		Rule:    validationx.Required,
		Message: "is required when tipoPagamento is 99",
	},
	{
		Name:    "meioPagamentoWhenPayment",
		When:    validation.In("tipoMovimento", tiposPagamento...),
		Field:   "meioPagamento",
		Rule:    validationx.Required,
		Message: "is required when tipoMovimento is " + validation.Describe(tiposPagamento...),
	},
}

// MovimentoSinistroFields are the attributes of a claim movement
type MovimentoSinistroFields struct {
	UUID                   string         `json:"uuid" yaml:"uuid"`
	CodigoSeguradora       string         `json:"codigoSeguradora" yaml:"codigoSeguradora"`
	GrupoRamo              string         `json:"grupoRamo" yaml:"grupoRamo"`
	CodigoSinistro         string         `json:"codigoSinistro" yaml:"codigoSinistro"`
	IdentificadorMovimento string         `json:"identificadorMovimento" yaml:"identificadorMovimento"`
	ApoliceCodigo          string         `json:"apoliceCodigo" yaml:"apoliceCodigo"`
	Certificado            string         `json:"certificado,omitempty" yaml:"certificado,omitempty"`
	NumeroEndosso          string         `json:"numeroEndosso,omitempty" yaml:"numeroEndosso,omitempty"`
	ValorMovimento         *mathx.Decimal `json:"valorMovimento" yaml:"valorMovimento"`
	ValorMovimentoReais    *mathx.Decimal `json:"valorMovimentoReais" yaml:"valorMovimentoReais"`
	Moeda                  string         `json:"moeda" yaml:"moeda"`
	TipoSinistro           *int           `json:"tipoSinistro" yaml:"tipoSinistro"`
	TipoMovimento          *int           `json:"tipoMovimento" yaml:"tipoMovimento"`
	Origem                 *int           `json:"origem" yaml:"origem"`
	CodigoContraparte      string         `json:"codigoContraparte,omitempty" yaml:"codigoContraparte,omitempty"`
	TipoOperacao           *int           `json:"tipoOperacao" yaml:"tipoOperacao"`
	TipoPagamento          *int           `json:"tipoPagamento,omitempty" yaml:"tipoPagamento,omitempty"`
	TipoPagamentoOutros    string         `json:"tipoPagamentoOutros,omitempty" yaml:"tipoPagamentoOutros,omitempty"`
	MeioPagamento          *int           `json:"meioPagamento,omitempty" yaml:"meioPagamento,omitempty"`
	IndicadorExclusao      *int           `json:"indicadorExclusao" yaml:"indicadorExclusao"`
	DataMovimento          *timex.Date    `json:"dataMovimento" yaml:"dataMovimento"`
	DataRegistro           *timex.Date    `json:"dataRegistro" yaml:"dataRegistro"`
	DataAlteracao          *timex.Date    `json:"dataAlteracao" yaml:"dataAlteracao"`
	Anotacao               string         `json:"anotacao,omitempty" yaml:"anotacao,omitempty"`

	Adicionais []Adicional `json:"-" yaml:"-" toml:"-"`
}

// MovimentoSinistro is a validated claim movement
type MovimentoSinistro struct {
	f MovimentoSinistroFields
}

// NewMovimentoSinistro validates f and returns an immutable MovimentoSinistro
func NewMovimentoSinistro(f MovimentoSinistroFields, today timex.Date) (MovimentoSinistro, error) {
	if err := ValidateMovimentoSinistro(f, today).Reject("MovimentoSinistro"); err != nil {
		return MovimentoSinistro{}, err
	}
	return MovimentoSinistro{f: sro.Detach(f)}, nil
}

// MustMovimentoSinistro is like NewMovimentoSinistro but panics on rejection
func MustMovimentoSinistro(f MovimentoSinistroFields, today timex.Date) MovimentoSinistro {
	m, err := NewMovimentoSinistro(f, today)
	if err != nil {
		panic(err)
	}
	return m
}

// ValidateMovimentoSinistro reports every rule f violates
func ValidateMovimentoSinistro(f MovimentoSinistroFields, today timex.Date) validation.ValidationResult {
	notFuture := validationx.NotFuture(today)

	p := validation.NewPlan("MovimentoSinistro")
	p.Required("uuid", f.UUID).
		Required("codigoSeguradora", f.CodigoSeguradora).
		Required("grupoRamo", f.GrupoRamo).
		Required("codigoSinistro", f.CodigoSinistro).
		Required("identificadorMovimento", f.IdentificadorMovimento).
		Required("apoliceCodigo", f.ApoliceCodigo).
		Required("valorMovimento", f.ValorMovimento).
		Required("valorMovimentoReais", f.ValorMovimentoReais).
		Required("moeda", f.Moeda).
		Required("tipoSinistro", f.TipoSinistro).
		Required("tipoMovimento", f.TipoMovimento).
		Required("origem", f.Origem).
		Required("tipoOperacao", f.TipoOperacao).
		Required("indicadorExclusao", f.IndicadorExclusao).
		Required("dataMovimento", f.DataMovimento).
		Required("dataRegistro", f.DataRegistro).
		Required("dataAlteracao", f.DataAlteracao)

	p.Format("uuid", f.UUID, validationx.UUID).
		Format("moeda", f.Moeda, validationx.Currency)

	p.Domain("tipoSinistro", f.TipoSinistro, validationx.Range(1, 2)).
		Domain("tipoMovimento", f.TipoMovimento, validationx.Range(1, 10)).
		Domain("origem", f.Origem, validationx.Range(1, 5)).
		Domain("tipoOperacao", f.TipoOperacao, validationx.Range(1, 9)).
		Domain("tipoPagamento", f.TipoPagamento, validationx.OneOf(1, 2, 3, 4, sro.Outros)).
		Domain("meioPagamento", f.MeioPagamento, validationx.OneOf(1, 2, 3, 4, 5, 6, 7, 8, 9, sro.Outros)).
		Domain("indicadorExclusao", f.IndicadorExclusao, validationx.Range(1, 2))

	p.Size("codigoSeguradora", f.CodigoSeguradora, validationx.Length(5)).
		Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("codigoSinistro", f.CodigoSinistro, validationx.MaxLength(50)).
		Size("identificadorMovimento", f.IdentificadorMovimento, validationx.MaxLength(80)).
		Size("apoliceCodigo", f.ApoliceCodigo, validationx.MaxLength(60)).
		Size("certificado", f.Certificado, validationx.MaxLength(60)).
		Size("numeroEndosso", f.NumeroEndosso, validationx.MaxLength(60)).
		Size("valorMovimento", f.ValorMovimento, validationx.Amount).
		Size("valorMovimentoReais", f.ValorMovimentoReais, validationx.Amount).
		Size("codigoContraparte", f.CodigoContraparte, validationx.MaxLength(8)).
		Size("tipoPagamentoOutros", f.TipoPagamentoOutros, validationx.MaxLength(500)).
		Size("anotacao", f.Anotacao, validationx.MaxLength(500))

	p.Ordering("dataMovimento", f.DataMovimento, notFuture).
		Ordering("dataRegistro", f.DataRegistro, notFuture).
		Ordering("dataAlteracao", f.DataAlteracao, notFuture).
		Conditionals(movimentoConditionals, validation.Values{
			"origem":              f.Origem,
			"codigoContraparte":   f.CodigoContraparte,
			"tipoPagamento":       f.TipoPagamento,
			"tipoPagamentoOutros": f.TipoPagamentoOutros,
			"tipoMovimento":       f.TipoMovimento,
			"meioPagamento":       f.MeioPagamento,
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (m MovimentoSinistro) Fields() MovimentoSinistroFields { return sro.Detach(m.f) }

// UUID returns the record identifier
func (m MovimentoSinistro) UUID() string { return m.f.UUID }

// IdentificadorMovimento returns the movement identifier
func (m MovimentoSinistro) IdentificadorMovimento() string { return m.f.IdentificadorMovimento }

// CodigoSinistro returns the claim the movement is posted against
func (m MovimentoSinistro) CodigoSinistro() string { return m.f.CodigoSinistro }

// ValorMovimentoReais returns the movement amount in reais
func (m MovimentoSinistro) ValorMovimentoReais() mathx.Decimal { return *m.f.ValorMovimentoReais }

// Adicionais returns the additional amounts of the movement
func (m MovimentoSinistro) Adicionais() slicex.View[Adicional] { return slicex.Freeze(m.f.Adicionais) }

// ===============================
// Adicional
// ===============================

// AdicionalFields are an additional amount posted with a claim movement
type AdicionalFields struct {
	TipoAdicional                *int           `json:"tipoAdicional" yaml:"tipoAdicional"`
	ValorMovimentoAdicional      *mathx.Decimal `json:"valorMovimentoAdicional" yaml:"valorMovimentoAdicional"`
	ValorMovimentoAdicionalReais *mathx.Decimal `json:"valorMovimentoAdicionalReais" yaml:"valorMovimentoAdicionalReais"`
}

// Adicional is a validated additional amount
type Adicional struct {
	f AdicionalFields
}

// NewAdicional validates f and returns an immutable Adicional
func NewAdicional(f AdicionalFields) (Adicional, error) {
	err := validation.NewPlan("Adicional").
		Required("tipoAdicional", f.TipoAdicional).
		Required("valorMovimentoAdicional", f.ValorMovimentoAdicional).
		Required("valorMovimentoAdicionalReais", f.ValorMovimentoAdicionalReais).
		Domain("tipoAdicional", f.TipoAdicional, validationx.Range(1, 99)).
		Domain("valorMovimentoAdicional", f.ValorMovimentoAdicional, validationx.NonNegative).
		Domain("valorMovimentoAdicionalReais", f.ValorMovimentoAdicionalReais, validationx.NonNegative).
		Size("valorMovimentoAdicional", f.ValorMovimentoAdicional, validationx.Amount).
		Size("valorMovimentoAdicionalReais", f.ValorMovimentoAdicionalReais, validationx.Amount).
		Validate().
		Reject("Adicional")
	if err != nil {
		return Adicional{}, err
	}
	return Adicional{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (a Adicional) Fields() AdicionalFields { return sro.Detach(a.f) }
