// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     documento
// Description: Policy document aggregate: header, parties, insured objects,
//              coverages, premium and coinsurance
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package documento implements the policy document ("documento") entity
// graph. Children are built first and handed to the parent already valid:
//
//	seg, err := documento.NewSegurado(segFields, today)
//	...
//	doc, err := documento.NewDocumento(documento.DocumentoFields{
//		Apolice:              header,
//		TipoDocumentoEmitido: &tipo,
//		Segurados:            []documento.Segurado{seg},
//	}, today)
//
// Every constructor returns either an immutable value or a
// *validation.Rejection carrying all violated rules.
package documento

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// Emission types
const (
	EmissaoPropria         = 1
	EmissaoCosseguroAceito = 2
)

// Apolice is the policy header shared by documents and endorsements
type Apolice struct {
	UUID                     string         `json:"uuid" yaml:"uuid"`
	Anotacao                 string         `json:"anotacao,omitempty" yaml:"anotacao,omitempty"`
	CodigoSeguradora         string         `json:"codigoSeguradora" yaml:"codigoSeguradora"`
	DataRegistro             *timex.Date    `json:"dataRegistro" yaml:"dataRegistro"`
	DataAlteracao            *timex.Date    `json:"dataAlteracao" yaml:"dataAlteracao"`
	DataEmissao              *timex.Date    `json:"dataEmissao" yaml:"dataEmissao"`
	IndicadorExclusao        *int           `json:"indicadorExclusao" yaml:"indicadorExclusao"`
	ApoliceCodigo            string         `json:"apoliceCodigo" yaml:"apoliceCodigo"`
	NumeroSusepApolice       string         `json:"numeroSusepApolice,omitempty" yaml:"numeroSusepApolice,omitempty"`
	CertificadoCodigo        string         `json:"certificadoCodigo,omitempty" yaml:"certificadoCodigo,omitempty"`
	TipoEmissao              *int           `json:"tipoEmissao" yaml:"tipoEmissao"`
	DataInicio               *timex.Date    `json:"dataInicio" yaml:"dataInicio"`
	DataTermino              *timex.Date    `json:"dataTermino" yaml:"dataTermino"`
	CodigoFilial             string         `json:"codigoFilial" yaml:"codigoFilial"`
	CodigoSeguradoraLider    string         `json:"codigoSeguradoraLider,omitempty" yaml:"codigoSeguradoraLider,omitempty"`
	ApoliceCodigoLider       string         `json:"apoliceCodigoLider,omitempty" yaml:"apoliceCodigoLider,omitempty"`
	MoedaApolice             string         `json:"moedaApolice" yaml:"moedaApolice"`
	LimiteMaximoGarantia     *mathx.Decimal `json:"limiteMaximoGarantia" yaml:"limiteMaximoGarantia"`
	LimiteMaximoGarantiaReal *mathx.Decimal `json:"limiteMaximoGarantiaReal" yaml:"limiteMaximoGarantiaReal"`
	CoberturaBasica          *int           `json:"coberturaBasica,omitempty" yaml:"coberturaBasica,omitempty"`
}

// ApoliceConditionals returns the conditional rules of the policy header.
// tipoField names the document type field the certificate rule is keyed on.
func ApoliceConditionals(tipoField string) validation.ConditionalTable {
	certificado := []int{4, 7, 10}
	return validation.ConditionalTable{
		{
			Name:    "certificadoWhenIndividual",
			When:    validation.In(tipoField, certificado...),
			Field:   "certificadoCodigo",
			Rule:    validationx.Required,
			Message: "is required when " + tipoField + " is " + validation.Describe(certificado...),
		},
		{
			Name:    "seguradoraLiderWhenCosseguroAceito",
			When:    validation.Equals("tipoEmissao", EmissaoCosseguroAceito),
			Field:   "codigoSeguradoraLider",
			Rule:    validationx.Required,
			Message: "is required when tipoEmissao is 2 (cosseguro aceito)",
		},
		{
			Name:    "apoliceLiderWhenCosseguroAceito",
			When:    validation.Equals("tipoEmissao", EmissaoCosseguroAceito),
			Field:   "apoliceCodigoLider",
			Rule:    validationx.Required,
			Message: "is required when tipoEmissao is 2 (cosseguro aceito)",
		},
	}
}

// Register adds the header rules to p. The document type lives outside the
// header because documents and endorsements name it differently.
func (a Apolice) Register(p *validation.Plan, table validation.ConditionalTable, tipoField string, tipo *int, today timex.Date) *validation.Plan {
	notFuture := validationx.NotFuture(today)

	p.Required("uuid", a.UUID).
		Required("codigoSeguradora", a.CodigoSeguradora).
		Required("dataRegistro", a.DataRegistro).
		Required("dataAlteracao", a.DataAlteracao).
		Required("dataEmissao", a.DataEmissao).
		Required("indicadorExclusao", a.IndicadorExclusao).
		Required(tipoField, tipo).
		Required("apoliceCodigo", a.ApoliceCodigo).
		Required("tipoEmissao", a.TipoEmissao).
		Required("dataInicio", a.DataInicio).
		Required("dataTermino", a.DataTermino).
		Required("codigoFilial", a.CodigoFilial).
		Required("moedaApolice", a.MoedaApolice).
		Required("limiteMaximoGarantia", a.LimiteMaximoGarantia).
		Required("limiteMaximoGarantiaReal", a.LimiteMaximoGarantiaReal)

	p.Format("uuid", a.UUID, validationx.UUID).
		Format("moedaApolice", a.MoedaApolice, validationx.Currency)

	p.Domain("indicadorExclusao", a.IndicadorExclusao, validationx.Range(1, 2)).
		Domain(tipoField, tipo, validationx.Range(1, 11)).
		Domain("tipoEmissao", a.TipoEmissao, validationx.Range(1, 2)).
		Domain("limiteMaximoGarantia", a.LimiteMaximoGarantia, validationx.NonNegative).
		Domain("limiteMaximoGarantiaReal", a.LimiteMaximoGarantiaReal, validationx.NonNegative).
		Domain("coberturaBasica", a.CoberturaBasica, validationx.Range(1, 2))

	p.Size("anotacao", a.Anotacao, validationx.MaxLength(500)).
		Size("codigoSeguradora", a.CodigoSeguradora, validationx.Length(5)).
		Size("apoliceCodigo", a.ApoliceCodigo, validationx.MaxLength(60)).
		Size("numeroSusepApolice", a.NumeroSusepApolice, validationx.MaxLength(30)).
		Size("certificadoCodigo", a.CertificadoCodigo, validationx.MaxLength(60)).
		Size("codigoFilial", a.CodigoFilial, validationx.Length(4)).
		Size("codigoSeguradoraLider", a.CodigoSeguradoraLider, validationx.Length(5)).
		Size("apoliceCodigoLider", a.ApoliceCodigoLider, validationx.MaxLength(60)).
		Size("limiteMaximoGarantia", a.LimiteMaximoGarantia, validationx.Amount).
		Size("limiteMaximoGarantiaReal", a.LimiteMaximoGarantiaReal, validationx.Amount)

	p.Ordering("dataRegistro", a.DataRegistro, notFuture).
		Ordering("dataAlteracao", a.DataAlteracao, notFuture).
		Ordering("dataEmissao", a.DataEmissao, notFuture).
		Ordering("dataTermino", a.DataTermino, validationx.OnOrAfter("dataTermino", "dataInicio", a.DataInicio))

	return p.Conditionals(table, validation.Values{
		tipoField:               tipo,
		"tipoEmissao":           a.TipoEmissao,
		"certificadoCodigo":     a.CertificadoCodigo,
		"codigoSeguradoraLider": a.CodigoSeguradoraLider,
		"apoliceCodigoLider":    a.ApoliceCodigoLider,
	})
}

// ===============================
// Documento
// ===============================

var documentoConditionals = ApoliceConditionals("tipoDocumentoEmitido")

// DocumentoFields are the attributes of a policy document. Nested lists hold
// entities that were already validated by their own constructors.
type DocumentoFields struct {
	Apolice              `yaml:",inline"`
	TipoDocumentoEmitido *int `json:"tipoDocumentoEmitido" yaml:"tipoDocumentoEmitido"`

	Ccgs             []CcgRef         `json:"-" yaml:"-" toml:"-"`
	Segurados        []Segurado       `json:"-" yaml:"-" toml:"-"`
	Beneficiarios    []Beneficiario   `json:"-" yaml:"-" toml:"-"`
	Tomadores        []Tomador        `json:"-" yaml:"-" toml:"-"`
	Intermediarios   []Intermediario  `json:"-" yaml:"-" toml:"-"`
	ObjetosSegurados []ObjetoSegurado `json:"-" yaml:"-" toml:"-"`
	PremioApolice    *PremioApolice   `json:"-" yaml:"-" toml:"-"`
	Cosseguro        *Cosseguro       `json:"-" yaml:"-" toml:"-"`
}

// Documento is a validated policy document
type Documento struct {
	f DocumentoFields
}

// NewDocumento validates f and returns an immutable Documento
func NewDocumento(f DocumentoFields, today timex.Date) (Documento, error) {
	if err := ValidateDocumento(f, today).Reject("Documento"); err != nil {
		return Documento{}, err
	}
	return Documento{f: sro.Detach(f)}, nil
}

// MustDocumento is like NewDocumento but panics on rejection
func MustDocumento(f DocumentoFields, today timex.Date) Documento {
	d, err := NewDocumento(f, today)
	if err != nil {
		panic(err)
	}
	return d
}

// ValidateDocumento reports every rule f violates
func ValidateDocumento(f DocumentoFields, today timex.Date) validation.ValidationResult {
	p := validation.NewPlan("Documento")
	return f.Apolice.Register(p, documentoConditionals, "tipoDocumentoEmitido", f.TipoDocumentoEmitido, today).Validate()
}

// Fields returns a copy of the validated attributes
func (d Documento) Fields() DocumentoFields { return sro.Detach(d.f) }

// UUID returns the record identifier
func (d Documento) UUID() string { return d.f.UUID }

// CodigoSeguradora returns the insurer code
func (d Documento) CodigoSeguradora() string { return d.f.CodigoSeguradora }

// ApoliceCodigo returns the policy number
func (d Documento) ApoliceCodigo() string { return d.f.ApoliceCodigo }

// TipoDocumentoEmitido returns the emitted document type
func (d Documento) TipoDocumentoEmitido() int { return *d.f.TipoDocumentoEmitido }

// DataInicio returns the start of the policy term
func (d Documento) DataInicio() timex.Date { return *d.f.DataInicio }

// DataTermino returns the end of the policy term
func (d Documento) DataTermino() timex.Date { return *d.f.DataTermino }

// LimiteMaximoGarantia returns the maximum guarantee in the policy currency
func (d Documento) LimiteMaximoGarantia() mathx.Decimal { return *d.f.LimiteMaximoGarantia }

// Ccgs returns the linked guarantee contracts
func (d Documento) Ccgs() slicex.View[CcgRef] { return slicex.Freeze(d.f.Ccgs) }

// Segurados returns the insured parties
func (d Documento) Segurados() slicex.View[Segurado] { return slicex.Freeze(d.f.Segurados) }

// Beneficiarios returns the beneficiaries
func (d Documento) Beneficiarios() slicex.View[Beneficiario] { return slicex.Freeze(d.f.Beneficiarios) }

// Tomadores returns the policyholders
func (d Documento) Tomadores() slicex.View[Tomador] { return slicex.Freeze(d.f.Tomadores) }

// Intermediarios returns the intermediaries
func (d Documento) Intermediarios() slicex.View[Intermediario] {
	return slicex.Freeze(d.f.Intermediarios)
}

// ObjetosSegurados returns the insured objects
func (d Documento) ObjetosSegurados() slicex.View[ObjetoSegurado] {
	return slicex.Freeze(d.f.ObjetosSegurados)
}

// PremioApolice returns the policy premium, if any
func (d Documento) PremioApolice() (PremioApolice, bool) {
	if d.f.PremioApolice == nil {
		return PremioApolice{}, false
	}
	return *d.f.PremioApolice, true
}

// Cosseguro returns the coinsurance arrangement, if any
func (d Documento) Cosseguro() (Cosseguro, bool) {
	if d.f.Cosseguro == nil {
		return Cosseguro{}, false
	}
	return *d.f.Cosseguro, true
}
