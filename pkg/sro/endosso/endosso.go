// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     endosso
// Description: Endorsement aggregate: a policy header amended by an
//              endorsement, with the document's nested lists
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package endosso implements the endorsement entity. An endorsement carries
// the full policy header of the document it amends; the certificate rule is
// keyed on the endorsed document type instead of the emitted one.
package endosso

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
	"github.com/msto63/sro/pkg/sro/documento"
)

// EndossoTipoDescritivo is the endorsement type whose description is mandatory
const EndossoTipoDescritivo = 3

var endossoConditionals = append(documento.ApoliceConditionals("tipoDocumentoEndossado"),
	validation.ConditionalRule{
		Name:    "descricaoWhenDescritivo",
		When:    validation.Equals("endossoTipo", EndossoTipoDescritivo),
		Field:   "endossoDescricao",
		Rule:    validationx.Required,
		Message: "is required when endossoTipo is 3",
	},
)

// EndossoFields are the attributes of an endorsement
type EndossoFields struct {
	documento.Apolice      `yaml:",inline"`
	TipoDocumentoEndossado *int        `json:"tipoDocumentoEndossado" yaml:"tipoDocumentoEndossado"`
	EndossoCodigo          string      `json:"endossoCodigo" yaml:"endossoCodigo"`
	EndossoDescricao       string      `json:"endossoDescricao,omitempty" yaml:"endossoDescricao,omitempty"`
	EndossoTipo            *int        `json:"endossoTipo" yaml:"endossoTipo"`
	EndossoAverbavel       *int        `json:"endossoAverbavel" yaml:"endossoAverbavel"`
	DataInicioDocumento    *timex.Date `json:"dataInicioDocumento,omitempty" yaml:"dataInicioDocumento,omitempty"`
	DataTerminoDocumento   *timex.Date `json:"dataTerminoDocumento,omitempty" yaml:"dataTerminoDocumento,omitempty"`

	EndossosAssociados []EndossoAssociado         `json:"-" yaml:"-" toml:"-"`
	Ccgs               []documento.CcgRef         `json:"-" yaml:"-" toml:"-"`
	Segurados          []documento.Segurado       `json:"-" yaml:"-" toml:"-"`
	Beneficiarios      []documento.Beneficiario   `json:"-" yaml:"-" toml:"-"`
	Tomadores          []documento.Tomador        `json:"-" yaml:"-" toml:"-"`
	Intermediarios     []documento.Intermediario  `json:"-" yaml:"-" toml:"-"`
	ObjetosSegurados   []documento.ObjetoSegurado `json:"-" yaml:"-" toml:"-"`
	PremioApolice      *documento.PremioApolice   `json:"-" yaml:"-" toml:"-"`
	Cosseguro          *documento.Cosseguro       `json:"-" yaml:"-" toml:"-"`
}

// Endosso is a validated endorsement
type Endosso struct {
	f EndossoFields
}

// NewEndosso validates f and returns an immutable Endosso
func NewEndosso(f EndossoFields, today timex.Date) (Endosso, error) {
	if err := ValidateEndosso(f, today).Reject("Endosso"); err != nil {
		return Endosso{}, err
	}
	return Endosso{f: sro.Detach(f)}, nil
}

// MustEndosso is like NewEndosso but panics on rejection
func MustEndosso(f EndossoFields, today timex.Date) Endosso {
	e, err := NewEndosso(f, today)
	if err != nil {
		panic(err)
	}
	return e
}

// ValidateEndosso reports every rule f violates
func ValidateEndosso(f EndossoFields, today timex.Date) validation.ValidationResult {
	p := validation.NewPlan("Endosso")
	f.Apolice.Register(p, endossoConditionals, "tipoDocumentoEndossado", f.TipoDocumentoEndossado, today)
	p.Required("endossoCodigo", f.EndossoCodigo).
		Required("endossoTipo", f.EndossoTipo).
		Required("endossoAverbavel", f.EndossoAverbavel).
		Domain("endossoTipo", f.EndossoTipo, validationx.Range(1, 99)).
		Domain("endossoAverbavel", f.EndossoAverbavel, validationx.Range(1, 2)).
		Size("endossoCodigo", f.EndossoCodigo, validationx.MaxLength(60)).
		Size("endossoDescricao", f.EndossoDescricao, validationx.MaxLength(1024)).
		Ordering("dataTerminoDocumento", f.DataTerminoDocumento,
			validationx.OnOrAfter("dataTerminoDocumento", "dataInicioDocumento", f.DataInicioDocumento))
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (e Endosso) Fields() EndossoFields { return sro.Detach(e.f) }

// UUID returns the record identifier
func (e Endosso) UUID() string { return e.f.UUID }

// ApoliceCodigo returns the endorsed policy number
func (e Endosso) ApoliceCodigo() string { return e.f.ApoliceCodigo }

// EndossoCodigo returns the endorsement number
func (e Endosso) EndossoCodigo() string { return e.f.EndossoCodigo }

// EndossoTipo returns the endorsement type
func (e Endosso) EndossoTipo() int { return *e.f.EndossoTipo }

// EndossosAssociados returns the endorsements this one relates to
func (e Endosso) EndossosAssociados() slicex.View[EndossoAssociado] {
	return slicex.Freeze(e.f.EndossosAssociados)
}

// Ccgs returns the linked guarantee contracts
func (e Endosso) Ccgs() slicex.View[documento.CcgRef] { return slicex.Freeze(e.f.Ccgs) }

// Segurados returns the insured parties
func (e Endosso) Segurados() slicex.View[documento.Segurado] { return slicex.Freeze(e.f.Segurados) }

// Beneficiarios returns the beneficiaries
func (e Endosso) Beneficiarios() slicex.View[documento.Beneficiario] {
	return slicex.Freeze(e.f.Beneficiarios)
}

// Tomadores returns the policyholders
func (e Endosso) Tomadores() slicex.View[documento.Tomador] { return slicex.Freeze(e.f.Tomadores) }

// Intermediarios returns the intermediaries
func (e Endosso) Intermediarios() slicex.View[documento.Intermediario] {
	return slicex.Freeze(e.f.Intermediarios)
}

// ObjetosSegurados returns the insured objects
func (e Endosso) ObjetosSegurados() slicex.View[documento.ObjetoSegurado] {
	return slicex.Freeze(e.f.ObjetosSegurados)
}

// PremioApolice returns the amended premium, if any
func (e Endosso) PremioApolice() (documento.PremioApolice, bool) {
	if e.f.PremioApolice == nil {
		return documento.PremioApolice{}, false
	}
	return *e.f.PremioApolice, true
}

// Cosseguro returns the amended coinsurance, if any
func (e Endosso) Cosseguro() (documento.Cosseguro, bool) {
	if e.f.Cosseguro == nil {
		return documento.Cosseguro{}, false
	}
	return *e.f.Cosseguro, true
}

// ===============================
// EndossoAssociado
// ===============================

// EndossoAssociadoFields reference a related endorsement
type EndossoAssociadoFields struct {
	Codigo string `json:"codigo" yaml:"codigo"`
}

// EndossoAssociado is a validated endorsement reference
type EndossoAssociado struct {
	f EndossoAssociadoFields
}

// NewEndossoAssociado validates f and returns an immutable EndossoAssociado
func NewEndossoAssociado(f EndossoAssociadoFields) (EndossoAssociado, error) {
	err := validation.NewPlan("EndossoAssociado").
		Required("codigo", f.Codigo).
		Size("codigo", f.Codigo, validationx.MaxLength(60)).
		Validate().
		Reject("EndossoAssociado")
	if err != nil {
		return EndossoAssociado{}, err
	}
	return EndossoAssociado{f: f}, nil
}

// Codigo returns the referenced endorsement number
func (e EndossoAssociado) Codigo() string { return e.f.Codigo }
