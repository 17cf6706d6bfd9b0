// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     sinistro
// Description: Claim aggregate: status, dates, denial reasons and the
//              documents, coverages, rural surveys and vehicles involved
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package sinistro implements the claim ("sinistro") entity graph.
package sinistro

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// SinistroFields are the attributes of a claim
type SinistroFields struct {
	UUID                   string      `json:"uuid" yaml:"uuid"`
	CodigoSeguradora       string      `json:"codigoSeguradora" yaml:"codigoSeguradora"`
	CodigoSinistro         string      `json:"codigoSinistro" yaml:"codigoSinistro"`
	DataRegistro           *timex.Date `json:"dataRegistro" yaml:"dataRegistro"`
	DataAlteracao          *timex.Date `json:"dataAlteracao" yaml:"dataAlteracao"`
	IndicadorExclusao      *int        `json:"indicadorExclusao" yaml:"indicadorExclusao"`
	Status                 *int        `json:"status" yaml:"status"`
	DataAlteracaoStatus    *timex.Date `json:"dataAlteracaoStatus" yaml:"dataAlteracaoStatus"`
	DataOcorrencia         *timex.Date `json:"dataOcorrencia" yaml:"dataOcorrencia"`
	DataAviso              *timex.Date `json:"dataAviso" yaml:"dataAviso"`
	DataRegistroSeguradora *timex.Date `json:"dataRegistroSeguradora" yaml:"dataRegistroSeguradora"`
	DataReclamacaoTerceiro *timex.Date `json:"dataReclamacaoTerceiro,omitempty" yaml:"dataReclamacaoTerceiro,omitempty"`

	Justificativas     []JustificativaNegativa `json:"-" yaml:"-" toml:"-"`
	DocumentosAfetados []DocumentoAfetado      `json:"-" yaml:"-" toml:"-"`
	CoberturasAfetadas []CoberturaAfetada      `json:"-" yaml:"-" toml:"-"`
	VistoriasRurais    []VistoriaRural         `json:"-" yaml:"-" toml:"-"`
	Automoveis         []Automovel             `json:"-" yaml:"-" toml:"-"`
}

// Sinistro is a validated claim
type Sinistro struct {
	f SinistroFields
}

// NewSinistro validates f and returns an immutable Sinistro
func NewSinistro(f SinistroFields, today timex.Date) (Sinistro, error) {
	if err := ValidateSinistro(f, today).Reject("Sinistro"); err != nil {
		return Sinistro{}, err
	}
	return Sinistro{f: sro.Detach(f)}, nil
}

// MustSinistro is like NewSinistro but panics on rejection
func MustSinistro(f SinistroFields, today timex.Date) Sinistro {
	s, err := NewSinistro(f, today)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateSinistro reports every rule f violates
func ValidateSinistro(f SinistroFields, today timex.Date) validation.ValidationResult {
	notFuture := validationx.NotFuture(today)

	p := validation.NewPlan("Sinistro")
	p.Required("uuid", f.UUID).
		Required("codigoSeguradora", f.CodigoSeguradora).
		Required("codigoSinistro", f.CodigoSinistro).
		Required("dataRegistro", f.DataRegistro).
		Required("dataAlteracao", f.DataAlteracao).
		Required("indicadorExclusao", f.IndicadorExclusao).
		Required("status", f.Status).
		Required("dataAlteracaoStatus", f.DataAlteracaoStatus).
		Required("dataOcorrencia", f.DataOcorrencia).
		Required("dataAviso", f.DataAviso).
		Required("dataRegistroSeguradora", f.DataRegistroSeguradora)

	p.Format("uuid", f.UUID, validationx.UUID).
		Domain("indicadorExclusao", f.IndicadorExclusao, validationx.Range(1, 2)).
		Domain("status", f.Status, validationx.Range(1, 6)).
		Size("codigoSeguradora", f.CodigoSeguradora, validationx.Length(5)).
		Size("codigoSinistro", f.CodigoSinistro, validationx.MaxLength(50))

	p.Ordering("dataRegistro", f.DataRegistro, notFuture).
		Ordering("dataAlteracao", f.DataAlteracao, notFuture).
		Ordering("dataAlteracaoStatus", f.DataAlteracaoStatus, notFuture).
		Ordering("dataOcorrencia", f.DataOcorrencia, notFuture).
		Ordering("dataAviso", f.DataAviso, notFuture,
			validationx.OnOrAfter("dataAviso", "dataOcorrencia", f.DataOcorrencia)).
		Ordering("dataRegistroSeguradora", f.DataRegistroSeguradora, notFuture).
		Ordering("dataReclamacaoTerceiro", f.DataReclamacaoTerceiro, notFuture)
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (s Sinistro) Fields() SinistroFields { return sro.Detach(s.f) }

// UUID returns the record identifier
func (s Sinistro) UUID() string { return s.f.UUID }

// CodigoSinistro returns the insurer's claim number
func (s Sinistro) CodigoSinistro() string { return s.f.CodigoSinistro }

// Status returns the claim status code
func (s Sinistro) Status() int { return *s.f.Status }

// DataOcorrencia returns the date of loss
func (s Sinistro) DataOcorrencia() timex.Date { return *s.f.DataOcorrencia }

// Justificativas returns the denial reasons
func (s Sinistro) Justificativas() slicex.View[JustificativaNegativa] {
	return slicex.Freeze(s.f.Justificativas)
}

// DocumentosAfetados returns the policies the claim is filed against
func (s Sinistro) DocumentosAfetados() slicex.View[DocumentoAfetado] {
	return slicex.Freeze(s.f.DocumentosAfetados)
}

// CoberturasAfetadas returns the coverages the claim touches
func (s Sinistro) CoberturasAfetadas() slicex.View[CoberturaAfetada] {
	return slicex.Freeze(s.f.CoberturasAfetadas)
}

// VistoriasRurais returns the rural surveys
func (s Sinistro) VistoriasRurais() slicex.View[VistoriaRural] { return slicex.Freeze(s.f.VistoriasRurais) }

// Automoveis returns the vehicles involved
func (s Sinistro) Automoveis() slicex.View[Automovel] { return slicex.Freeze(s.f.Automoveis) }
