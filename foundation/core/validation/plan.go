// File: plan.go
// Title: Entity Validation Plan
// Description: A Plan collects the rules of one entity grouped by phase and
//              evaluates them in fixed phase order. Violations are collected
//              across all phases; registration order is kept within a phase.
//              Fields that failed presence are not checked again.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package validation

import "strings"

type check struct {
	field string
	value interface{}
	rule  Validator
	code  string
	table ConditionalTable
	vals  Values
}

// Plan is the ordered rule set of one entity construction
type Plan struct {
	entity           string
	phases           [phaseCount][]check
	stopOnFirstError bool
}

// NewPlan creates an empty plan for the named entity
func NewPlan(entity string) *Plan {
	return &Plan{entity: entity}
}

// Entity returns the entity name the plan validates
func (p *Plan) Entity() string {
	return p.entity
}

// StopOnFirstError makes Validate return after the first violation
func (p *Plan) StopOnFirstError(stop bool) *Plan {
	p.stopOnFirstError = stop
	return p
}

// Required registers presence checks. Blank strings count as missing.
func (p *Plan) Required(field string, value interface{}) *Plan {
	return p.add(PhasePresence, CodeRequired, field, value, presence)
}

// Format registers pattern and checksum rules
func (p *Plan) Format(field string, value interface{}, rules ...Validator) *Plan {
	return p.add(PhaseFormat, CodeFormat, field, value, rules...)
}

// Domain registers coded-value, range and sign rules
func (p *Plan) Domain(field string, value interface{}, rules ...Validator) *Plan {
	return p.add(PhaseDomain, CodeRange, field, value, rules...)
}

// Size registers length and digit-count rules
func (p *Plan) Size(field string, value interface{}, rules ...Validator) *Plan {
	return p.add(PhaseSize, CodeLength, field, value, rules...)
}

// Ordering registers date rules: paired-date order and not-in-future facts
func (p *Plan) Ordering(field string, value interface{}, rules ...Validator) *Plan {
	return p.add(PhaseCrossField, CodeOrdering, field, value, rules...)
}

// Conditionals registers a conditional rule table evaluated against values
func (p *Plan) Conditionals(table ConditionalTable, values Values) *Plan {
	if len(table) == 0 {
		return p
	}
	p.phases[PhaseCrossField] = append(p.phases[PhaseCrossField], check{table: table, vals: values})
	return p
}

func (p *Plan) add(phase Phase, code, field string, value interface{}, rules ...Validator) *Plan {
	if len(rules) == 0 {
		return p
	}
	rule := rules[0]
	if len(rules) > 1 {
		rule = NewValidatorChain(field).Add(rules...).StopOnFirstError(true)
	}
	p.phases[phase] = append(p.phases[phase], check{field: field, value: value, rule: rule, code: code})
	return p
}

// Validate runs every registered rule in phase order
func (p *Plan) Validate() ValidationResult {
	result := NewValidationResult()
	missing := make(map[string]bool)

	for phase := 0; phase < phaseCount; phase++ {
		for _, c := range p.phases[phase] {
			var errs []ValidationError
			if c.table != nil {
				errs = c.table.Evaluate(c.vals).Errors
				for i := range errs {
					errs[i].Phase = Phase(phase)
				}
			} else {
				errs = p.run(Phase(phase), c, missing)
			}
			for _, e := range errs {
				result.Valid = false
				result.Errors = append(result.Errors, e)
				if p.stopOnFirstError {
					return result
				}
			}
		}
	}
	return result
}

func (p *Plan) run(phase Phase, c check, missing map[string]bool) []ValidationError {
	value, present := Resolve(c.value)
	if phase != PhasePresence {
		if missing[c.field] || !present {
			return nil
		}
	}

	r := c.rule.Validate(c.value)
	if r.Valid {
		return nil
	}
	if phase == PhasePresence {
		missing[c.field] = true
	}

	errs := make([]ValidationError, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, ValidationError{
			Code:    c.code,
			Field:   c.field,
			Rule:    e.Rule,
			Phase:   phase,
			Message: composeMessage(c.field, e.Message),
			Value:   value,
		})
	}
	return errs
}

// composeMessage prefixes rule messages of the form "must ..." or "is ..."
// with the field name. Messages that name their fields are kept.
func composeMessage(field, message string) string {
	if field == "" {
		return message
	}
	if strings.HasPrefix(message, "must ") || strings.HasPrefix(message, "is ") {
		return field + " " + message
	}
	return message
}

var presence ValidatorFunc = func(value interface{}) ValidationResult {
	if IsBlank(value) {
		return NewRuleError(CodeRequired, "required", "is required")
	}
	return NewValidationResult()
}
