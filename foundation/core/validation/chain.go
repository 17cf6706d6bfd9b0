// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that combine several rules
//              for one value into a single validator. A Plan builds one chain
//              per registered field and phase.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-17 v0.2.0: Removed context plumbing and parallel validator

package validation

import "fmt"

// ValidatorChain represents a chain of validators that can be executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{
		validators: make([]Validator, 0),
		name:       chainName,
	}
}

// Add adds validators to the chain
func (c *ValidatorChain) Add(validators ...Validator) *ValidatorChain {
	c.validators = append(c.validators, validators...)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		result := validator.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}
