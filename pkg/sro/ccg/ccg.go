// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     ccg
// Description: Guarantee counter-contract aggregate: policyholders,
//              collateral and guarantors
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package ccg implements the guarantee counter-contract ("contrato de
// contragarantia") entity graph.
package ccg

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// CcgFields are the attributes of a guarantee counter-contract
type CcgFields struct {
	UUID              string      `json:"uuid" yaml:"uuid"`
	CodigoSeguradora  string      `json:"codigoSeguradora" yaml:"codigoSeguradora"`
	CcgIdentificacao  string      `json:"ccgIdentificacao" yaml:"ccgIdentificacao"`
	DataRegistro      *timex.Date `json:"dataRegistro" yaml:"dataRegistro"`
	DataAlteracao     *timex.Date `json:"dataAlteracao" yaml:"dataAlteracao"`
	IndicadorExclusao *int        `json:"indicadorExclusao" yaml:"indicadorExclusao"`
	DataInicio        *timex.Date `json:"dataInicio" yaml:"dataInicio"`
	DataTermino       *timex.Date `json:"dataTermino,omitempty" yaml:"dataTermino,omitempty"`

	Tomadores  []Tomador   `json:"-" yaml:"-" toml:"-"`
	Colaterais []Colateral `json:"-" yaml:"-" toml:"-"`
	Fiadores   []Fiador    `json:"-" yaml:"-" toml:"-"`
}

// Ccg is a validated guarantee counter-contract
type Ccg struct {
	f CcgFields
}

// NewCcg validates f and returns an immutable Ccg
func NewCcg(f CcgFields, today timex.Date) (Ccg, error) {
	if err := ValidateCcg(f, today).Reject("Ccg"); err != nil {
		return Ccg{}, err
	}
	return Ccg{f: sro.Detach(f)}, nil
}

// MustCcg is like NewCcg but panics on rejection
func MustCcg(f CcgFields, today timex.Date) Ccg {
	c, err := NewCcg(f, today)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidateCcg reports every rule f violates
func ValidateCcg(f CcgFields, today timex.Date) validation.ValidationResult {
	notFuture := validationx.NotFuture(today)
	return validation.NewPlan("Ccg").
		Required("uuid", f.UUID).
		Required("codigoSeguradora", f.CodigoSeguradora).
		Required("ccgIdentificacao", f.CcgIdentificacao).
		Required("dataRegistro", f.DataRegistro).
		Required("dataAlteracao", f.DataAlteracao).
		Required("indicadorExclusao", f.IndicadorExclusao).
		Required("dataInicio", f.DataInicio).
		Format("uuid", f.UUID, validationx.UUID).
		Domain("indicadorExclusao", f.IndicadorExclusao, validationx.Range(1, 2)).
		Size("codigoSeguradora", f.CodigoSeguradora, validationx.Length(5)).
		Size("ccgIdentificacao", f.CcgIdentificacao, validationx.MaxLength(100)).
		Ordering("dataRegistro", f.DataRegistro, notFuture).
		Ordering("dataAlteracao", f.DataAlteracao, notFuture).
		Ordering("dataTermino", f.DataTermino, validationx.OnOrAfter("dataTermino", "dataInicio", f.DataInicio)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (c Ccg) Fields() CcgFields { return sro.Detach(c.f) }

// UUID returns the record identifier
func (c Ccg) UUID() string { return c.f.UUID }

// CcgIdentificacao returns the contract identifier
func (c Ccg) CcgIdentificacao() string { return c.f.CcgIdentificacao }

// Tomadores returns the policyholders covered by the contract
func (c Ccg) Tomadores() slicex.View[Tomador] { return slicex.Freeze(c.f.Tomadores) }

// Colaterais returns the pledged collateral
func (c Ccg) Colaterais() slicex.View[Colateral] { return slicex.Freeze(c.f.Colaterais) }

// Fiadores returns the guarantors
func (c Ccg) Fiadores() slicex.View[Fiador] { return slicex.Freeze(c.f.Fiadores) }

// ===============================
// Tomador
// ===============================

// TomadorFields describe a policyholder bound by the contract
type TomadorFields struct {
	Documento      string         `json:"documento" yaml:"documento"`
	TipoDocumento  *int           `json:"tipoDocumento" yaml:"tipoDocumento"`
	ControladorGe  *int           `json:"controladorGe" yaml:"controladorGe"`
	RazaoSocial    string         `json:"razaoSocial" yaml:"razaoSocial"`
	LimiteAprovado *mathx.Decimal `json:"limiteAprovado" yaml:"limiteAprovado"`
}

// Tomador is a validated contract policyholder
type Tomador struct {
	f TomadorFields
}

// NewTomador validates f and returns an immutable Tomador
func NewTomador(f TomadorFields) (Tomador, error) {
	p := validation.NewPlan("Tomador")
	sro.DocumentRules(p, "documento", f.Documento, "tipoDocumento", f.TipoDocumento)
	err := p.Required("controladorGe", f.ControladorGe).
		Required("razaoSocial", f.RazaoSocial).
		Required("limiteAprovado", f.LimiteAprovado).
		Domain("controladorGe", f.ControladorGe, validationx.Range(1, 2)).
		Domain("limiteAprovado", f.LimiteAprovado, validationx.NonNegative).
		Size("razaoSocial", f.RazaoSocial, validationx.MaxLength(144)).
		Size("limiteAprovado", f.LimiteAprovado, validationx.Amount).
		Validate().
		Reject("Tomador")
	if err != nil {
		return Tomador{}, err
	}
	return Tomador{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (t Tomador) Fields() TomadorFields { return sro.Detach(t.f) }

// ===============================
// Colateral
// ===============================

// ColateralFields describe an asset pledged as collateral
type ColateralFields struct {
	TipoAtivoColateral  *int           `json:"tipoAtivoColateral" yaml:"tipoAtivoColateral"`
	ValorAtivoColateral *mathx.Decimal `json:"valorAtivoColateral" yaml:"valorAtivoColateral"`
	UfAtivoColateral    string         `json:"ufAtivoColateral,omitempty" yaml:"ufAtivoColateral,omitempty"`
	PaisAtivoColateral  string         `json:"paisAtivoColateral" yaml:"paisAtivoColateral"`
}

// Colateral is a validated collateral asset
type Colateral struct {
	f ColateralFields
}

// NewColateral validates f and returns an immutable Colateral
func NewColateral(f ColateralFields) (Colateral, error) {
	err := validation.NewPlan("Colateral").
		Required("tipoAtivoColateral", f.TipoAtivoColateral).
		Required("valorAtivoColateral", f.ValorAtivoColateral).
		Required("paisAtivoColateral", f.PaisAtivoColateral).
		Domain("tipoAtivoColateral", f.TipoAtivoColateral, validationx.Range(1, 99)).
		Domain("valorAtivoColateral", f.ValorAtivoColateral, validationx.NonNegative).
		Size("valorAtivoColateral", f.ValorAtivoColateral, validationx.Amount).
		Size("ufAtivoColateral", f.UfAtivoColateral, validationx.Length(2)).
		Size("paisAtivoColateral", f.PaisAtivoColateral, validationx.MaxLength(100)).
		Validate().
		Reject("Colateral")
	if err != nil {
		return Colateral{}, err
	}
	return Colateral{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (c Colateral) Fields() ColateralFields { return sro.Detach(c.f) }

// ===============================
// Fiador
// ===============================

// FiadorFields describe a guarantor
type FiadorFields struct {
	Documento     string `json:"documento" yaml:"documento"`
	TipoDocumento *int   `json:"tipoDocumento" yaml:"tipoDocumento"`
	RazaoSocial   string `json:"razaoSocial" yaml:"razaoSocial"`
}

// Fiador is a validated guarantor
type Fiador struct {
	f FiadorFields
}

// NewFiador validates f and returns an immutable Fiador
func NewFiador(f FiadorFields) (Fiador, error) {
	p := validation.NewPlan("Fiador")
	sro.DocumentRules(p, "documento", f.Documento, "tipoDocumento", f.TipoDocumento)
	err := p.Required("razaoSocial", f.RazaoSocial).
		Size("razaoSocial", f.RazaoSocial, validationx.MaxLength(144)).
		Validate().
		Reject("Fiador")
	if err != nil {
		return Fiador{}, err
	}
	return Fiador{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (fi Fiador) Fields() FiadorFields { return sro.Detach(fi.f) }
