// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Provides the validation interfaces, result types, phases, the
//              entity validation Plan, conditional rule tables and the
//              Rejection error for the SRO engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-17 v0.2.0: Plan, ConditionalTable and Rejection

/*
Package validation provides the core validation framework infrastructure.

This package contains no concrete validators; those live in
foundation/utils/validationx. It provides:

  - Validator, ValidatorFunc and ValidatorChain
  - ValidationResult and ValidationError with code, field, rule and phase
  - Plan, the ordered per-entity rule set
  - ConditionalTable, declarative rules gated by sibling field values
  - Rejection, the error returned by entity constructors

# Phases

Rules registered on a Plan run in this order, whatever the registration order:

	presence -> format -> domain -> size -> cross-field

Cross-field holds the conditional tables and the date rules. Within one phase
rules run in registration order. A Plan collects every violation; the first
violation of a Rejection is what a fail-fast constructor would report.

# Absence

nil, nil pointers and "" are absent. Only presence checks fail on absent
values; every other rule skips them, so an optional but constrained field is
two independent registrations.

# Usage

	var conditionals = validation.ConditionalTable{
		{
			Name:  "descricaoTipoWhenOther",
			When:  validation.Equals("tipo", 99),
			Field: "descricaoTipo",
			Rule:  validationx.Required,
		},
	}

	result := validation.NewPlan("objetoSegurado").
		Required("codigo", f.Codigo).
		Domain("tipo", f.Tipo, validationx.Range(1, 99)).
		Size("codigo", f.Codigo, validationx.MaxLength(50)).
		Conditionals(conditionals, validation.Values{
			"tipo":          f.Tipo,
			"descricaoTipo": f.DescricaoTipo,
		}).
		Validate()

	if err := result.Reject("objetoSegurado"); err != nil {
		return ObjetoSegurado{}, err
	}
*/
package validation
