// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     documento
// Description: Parties of a policy document: insured, beneficiaries,
//              policyholders and intermediaries
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package documento

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// Pessoa holds the identification and address every party carries
type Pessoa struct {
	Documento     string `json:"documento" yaml:"documento"`
	TipoDocumento *int   `json:"tipoDocumento" yaml:"tipoDocumento"`
	Nome          string `json:"nome" yaml:"nome"`
	CodigoPostal  string `json:"codigoPostal" yaml:"codigoPostal"`
	Cidade        string `json:"cidade" yaml:"cidade"`
	Estado        string `json:"estado" yaml:"estado"`
	Pais          string `json:"pais" yaml:"pais"`
}

func (pe Pessoa) register(p *validation.Plan) {
	sro.DocumentRules(p, "documento", pe.Documento, "tipoDocumento", pe.TipoDocumento)
	p.Required("nome", pe.Nome).
		Required("codigoPostal", pe.CodigoPostal).
		Required("cidade", pe.Cidade).
		Required("estado", pe.Estado).
		Required("pais", pe.Pais).
		Format("pais", pe.Pais, validationx.Country).
		Size("nome", pe.Nome, validationx.MinLength(3), validationx.MaxLength(144)).
		Size("codigoPostal", pe.CodigoPostal, validationx.MaxLength(30)).
		Size("cidade", pe.Cidade, validationx.MaxLength(100)).
		Size("estado", pe.Estado, validationx.MaxLength(50))
}

// ===============================
// Segurado
// ===============================

// SeguradoFields are the attributes of an insured party
type SeguradoFields struct {
	Pessoa         `yaml:",inline"`
	DataNascimento *timex.Date `json:"dataNascimento,omitempty" yaml:"dataNascimento,omitempty"`
	Sexo           *int        `json:"sexoSeguradoParticipante,omitempty" yaml:"sexoSeguradoParticipante,omitempty"`
}

// MaioridadeAnos is the age of legal majority
const MaioridadeAnos = 18

// Segurado is a validated insured party
type Segurado struct {
	f SeguradoFields
}

// NewSegurado validates f and returns an immutable Segurado
func NewSegurado(f SeguradoFields, today timex.Date) (Segurado, error) {
	if err := ValidateSegurado(f, today).Reject("Segurado"); err != nil {
		return Segurado{}, err
	}
	return Segurado{f: sro.Detach(f)}, nil
}

// ValidateSegurado reports every rule f violates
func ValidateSegurado(f SeguradoFields, today timex.Date) validation.ValidationResult {
	p := validation.NewPlan("Segurado")
	f.Pessoa.register(p)
	p.Domain("sexoSeguradoParticipante", f.Sexo, validationx.Range(1, 3))
	// a future birth date is reported by the ordering rule alone
	if f.DataNascimento == nil || !f.DataNascimento.After(today) {
		p.Domain("dataNascimento", f.DataNascimento, validationx.AgeBetween(today, 0, 150))
	}
	p.Ordering("dataNascimento", f.DataNascimento, validationx.NotFuture(today))
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (s Segurado) Fields() SeguradoFields { return sro.Detach(s.f) }

// Documento returns the party's document number
func (s Segurado) Documento() string { return s.f.Documento }

// Nome returns the party's name
func (s Segurado) Nome() string { return s.f.Nome }

// DataNascimento returns the birth date, or nil when not informed
func (s Segurado) DataNascimento() *timex.Date { return sro.Clone(s.f.DataNascimento) }

// Idade returns the age in full years on today. The second result is false
// when no birth date was informed.
func (s Segurado) Idade(today timex.Date) (int, bool) {
	if s.f.DataNascimento == nil {
		return 0, false
	}
	return timex.Age(*s.f.DataNascimento, today), true
}

// MaiorDeIdade reports whether the insured is at least 18 years old on today
func (s Segurado) MaiorDeIdade(today timex.Date) bool {
	idade, ok := s.Idade(today)
	return ok && idade >= MaioridadeAnos
}

// ===============================
// Beneficiario and Tomador
// ===============================

// BeneficiarioFields are the attributes of a beneficiary
type BeneficiarioFields struct {
	Pessoa `yaml:",inline"`
}

// Beneficiario is a validated beneficiary
type Beneficiario struct {
	f BeneficiarioFields
}

// NewBeneficiario validates f and returns an immutable Beneficiario
func NewBeneficiario(f BeneficiarioFields) (Beneficiario, error) {
	if err := ValidateBeneficiario(f).Reject("Beneficiario"); err != nil {
		return Beneficiario{}, err
	}
	return Beneficiario{f: sro.Detach(f)}, nil
}

// ValidateBeneficiario reports every rule f violates
func ValidateBeneficiario(f BeneficiarioFields) validation.ValidationResult {
	p := validation.NewPlan("Beneficiario")
	f.Pessoa.register(p)
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (b Beneficiario) Fields() BeneficiarioFields { return sro.Detach(b.f) }

// TomadorFields are the attributes of a policyholder
type TomadorFields struct {
	Pessoa `yaml:",inline"`
}

// Tomador is a validated policyholder
type Tomador struct {
	f TomadorFields
}

// NewTomador validates f and returns an immutable Tomador
func NewTomador(f TomadorFields) (Tomador, error) {
	if err := ValidateTomador(f).Reject("Tomador"); err != nil {
		return Tomador{}, err
	}
	return Tomador{f: sro.Detach(f)}, nil
}

// ValidateTomador reports every rule f violates
func ValidateTomador(f TomadorFields) validation.ValidationResult {
	p := validation.NewPlan("Tomador")
	f.Pessoa.register(p)
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (t Tomador) Fields() TomadorFields { return sro.Detach(t.f) }

// ===============================
// Intermediario
// ===============================

// Intermediary types
const (
	IntermediarioCorretor = 1
	IntermediarioOutros   = 6
)

var intermediarioConditionals = validation.ConditionalTable{
	{
		Name:    "codigoWhenCorretor",
		When:    validation.Equals("tipo", IntermediarioCorretor),
		Field:   "codigo",
		Rule:    validationx.Required,
		Message: "is required when tipo is 1 (corretor)",
	},
}

// IntermediarioFields are the attributes of a broker or other intermediary
type IntermediarioFields struct {
	Tipo              *int   `json:"tipo" yaml:"tipo"`
	Codigo            string `json:"codigo,omitempty" yaml:"codigo,omitempty"`
	Pessoa            `yaml:",inline"`
	ValorComissao     *mathx.Decimal `json:"valorComissao" yaml:"valorComissao"`
	ValorComissaoReal *mathx.Decimal `json:"valorComissaoReal" yaml:"valorComissaoReal"`
}

// Intermediario is a validated intermediary
type Intermediario struct {
	f IntermediarioFields
}

// NewIntermediario validates f and returns an immutable Intermediario
func NewIntermediario(f IntermediarioFields) (Intermediario, error) {
	if err := ValidateIntermediario(f).Reject("Intermediario"); err != nil {
		return Intermediario{}, err
	}
	return Intermediario{f: sro.Detach(f)}, nil
}

// ValidateIntermediario reports every rule f violates
func ValidateIntermediario(f IntermediarioFields) validation.ValidationResult {
	p := validation.NewPlan("Intermediario")
	p.Required("tipo", f.Tipo)
	f.Pessoa.register(p)
	p.Required("valorComissao", f.ValorComissao).
		Required("valorComissaoReal", f.ValorComissaoReal).
		Domain("tipo", f.Tipo, validationx.Range(1, 6)).
		Domain("valorComissao", f.ValorComissao, validationx.NonNegative).
		Domain("valorComissaoReal", f.ValorComissaoReal, validationx.NonNegative).
		Size("codigo", f.Codigo, validationx.MaxLength(40)).
		Size("valorComissao", f.ValorComissao, validationx.Amount).
		Size("valorComissaoReal", f.ValorComissaoReal, validationx.Amount).
		Conditionals(intermediarioConditionals, validation.Values{
			"tipo":   f.Tipo,
			"codigo": f.Codigo,
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (i Intermediario) Fields() IntermediarioFields { return sro.Detach(i.f) }

// Tipo returns the intermediary type
func (i Intermediario) Tipo() int { return *i.f.Tipo }

// ValorComissao returns the commission in the policy currency
func (i Intermediario) ValorComissao() mathx.Decimal { return *i.f.ValorComissao }
