package documento

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// ===============================
// PremioApolice
// ===============================

// PremioApoliceFields are the premium totals of a policy
type PremioApoliceFields struct {
	ValorTotal             *mathx.Decimal `json:"valorTotal" yaml:"valorTotal"`
	ValorTotalReal         *mathx.Decimal `json:"valorTotalReal" yaml:"valorTotalReal"`
	AdicionalFracionamento *mathx.Decimal `json:"adicionalFracionamento,omitempty" yaml:"adicionalFracionamento,omitempty"`
	IOF                    *mathx.Decimal `json:"iof,omitempty" yaml:"iof,omitempty"`
	NumeroParcelas         *int           `json:"numeroParcelas" yaml:"numeroParcelas"`
}

// PremioApolice is a validated policy premium
type PremioApolice struct {
	f PremioApoliceFields
}

// NewPremioApolice validates f and returns an immutable PremioApolice
func NewPremioApolice(f PremioApoliceFields) (PremioApolice, error) {
	if err := ValidatePremioApolice(f).Reject("PremioApolice"); err != nil {
		return PremioApolice{}, err
	}
	return PremioApolice{f: sro.Detach(f)}, nil
}

// ValidatePremioApolice reports every rule f violates
func ValidatePremioApolice(f PremioApoliceFields) validation.ValidationResult {
	return validation.NewPlan("PremioApolice").
		Required("valorTotal", f.ValorTotal).
		Required("valorTotalReal", f.ValorTotalReal).
		Required("numeroParcelas", f.NumeroParcelas).
		Domain("valorTotal", f.ValorTotal, validationx.NonNegative).
		Domain("valorTotalReal", f.ValorTotalReal, validationx.NonNegative).
		Domain("adicionalFracionamento", f.AdicionalFracionamento, validationx.NonNegative).
		Domain("iof", f.IOF, validationx.NonNegative).
		Domain("numeroParcelas", f.NumeroParcelas, validationx.Range(1, 999)).
		Size("valorTotal", f.ValorTotal, validationx.Amount).
		Size("valorTotalReal", f.ValorTotalReal, validationx.Amount).
		Validate()
}

// Fields returns a copy of the validated attributes
func (pa PremioApolice) Fields() PremioApoliceFields { return sro.Detach(pa.f) }

// ValorTotal returns the total premium in the policy currency
func (pa PremioApolice) ValorTotal() mathx.Decimal { return *pa.f.ValorTotal }

// NumeroParcelas returns the number of installments
func (pa PremioApolice) NumeroParcelas() int { return *pa.f.NumeroParcelas }

// ===============================
// Cosseguro
// ===============================

// CosseguroFields describe the coinsurance of a policy
type CosseguroFields struct {
	PercentualRetido *mathx.Decimal `json:"percentualRetido" yaml:"percentualRetido"`

	Cessionarias []CessionariasCosseguro `json:"-" yaml:"-" toml:"-"`
}

// Cosseguro is a validated coinsurance arrangement
type Cosseguro struct {
	f CosseguroFields
}

// NewCosseguro validates f and returns an immutable Cosseguro
func NewCosseguro(f CosseguroFields) (Cosseguro, error) {
	if err := ValidateCosseguro(f).Reject("Cosseguro"); err != nil {
		return Cosseguro{}, err
	}
	return Cosseguro{f: sro.Detach(f)}, nil
}

// ValidateCosseguro reports every rule f violates
func ValidateCosseguro(f CosseguroFields) validation.ValidationResult {
	return validation.NewPlan("Cosseguro").
		Required("percentualRetido", f.PercentualRetido).
		Domain("percentualRetido", f.PercentualRetido, validationx.Range(0, 100)).
		Size("percentualRetido", f.PercentualRetido, validationx.Percentage).
		Validate()
}

// Fields returns a copy of the validated attributes
func (c Cosseguro) Fields() CosseguroFields { return sro.Detach(c.f) }

// Cessionarias returns the coinsurers the risk was ceded to
func (c Cosseguro) Cessionarias() slicex.View[CessionariasCosseguro] {
	return slicex.Freeze(c.f.Cessionarias)
}

// CessionariasCosseguroFields describe one coinsurer share
type CessionariasCosseguroFields struct {
	CodigoCosseguradora string         `json:"codigoCosseguradora" yaml:"codigoCosseguradora"`
	PercentualCedido    *mathx.Decimal `json:"percentualCedido" yaml:"percentualCedido"`
}

// CessionariasCosseguro is a validated coinsurer share
type CessionariasCosseguro struct {
	f CessionariasCosseguroFields
}

// NewCessionariasCosseguro validates f and returns an immutable share
func NewCessionariasCosseguro(f CessionariasCosseguroFields) (CessionariasCosseguro, error) {
	if err := ValidateCessionariasCosseguro(f).Reject("CessionariasCosseguro"); err != nil {
		return CessionariasCosseguro{}, err
	}
	return CessionariasCosseguro{f: sro.Detach(f)}, nil
}

// ValidateCessionariasCosseguro reports every rule f violates
func ValidateCessionariasCosseguro(f CessionariasCosseguroFields) validation.ValidationResult {
	return validation.NewPlan("CessionariasCosseguro").
		Required("codigoCosseguradora", f.CodigoCosseguradora).
		Required("percentualCedido", f.PercentualCedido).
		Domain("percentualCedido", f.PercentualCedido, validationx.NonNegative).
		Size("codigoCosseguradora", f.CodigoCosseguradora, validationx.Length(5)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (c CessionariasCosseguro) Fields() CessionariasCosseguroFields { return sro.Detach(c.f) }

// ===============================
// CcgRef
// ===============================

// CcgRefFields link a policy to a guarantee contract
type CcgRefFields struct {
	CcgIdentificacao string      `json:"ccgIdentificacao" yaml:"ccgIdentificacao"`
	DataVinculacao   *timex.Date `json:"dataVinculacao,omitempty" yaml:"dataVinculacao,omitempty"`
}

// CcgRef is a validated guarantee contract link
type CcgRef struct {
	f CcgRefFields
}

// NewCcgRef validates f and returns an immutable CcgRef
func NewCcgRef(f CcgRefFields, today timex.Date) (CcgRef, error) {
	if err := ValidateCcgRef(f, today).Reject("CcgRef"); err != nil {
		return CcgRef{}, err
	}
	return CcgRef{f: sro.Detach(f)}, nil
}

// ValidateCcgRef reports every rule f violates
func ValidateCcgRef(f CcgRefFields, today timex.Date) validation.ValidationResult {
	return validation.NewPlan("CcgRef").
		Required("ccgIdentificacao", f.CcgIdentificacao).
		Size("ccgIdentificacao", f.CcgIdentificacao, validationx.MaxLength(100)).
		Ordering("dataVinculacao", f.DataVinculacao, validationx.NotFuture(today)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (c CcgRef) Fields() CcgRefFields { return sro.Detach(c.f) }

// CcgIdentificacao returns the linked contract identifier
func (c CcgRef) CcgIdentificacao() string { return c.f.CcgIdentificacao }
