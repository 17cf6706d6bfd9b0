// Package validationx provides the primitive validators of the SRO engine.
//
// Package: validationx
// Title: Primitive Validators and Check Digits
// Description: Stateless rule constructors used by entity validation plans:
//              presence, character length, integer domains, amount layouts,
//              calendar-date rules, fixed formats (UUID, ISO 4217, ISO 3166-1
//              alpha-3, CEP) and CPF/CNPJ check digits. Patterns are compiled
//              once at package initialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: SRO primitives and check digits
//
// Absent values (nil, nil pointers, "") pass every validator except Required.
// Messages start with "must" or "is" so that a plan can prefix the field name:
//
//	validationx.Length(5)("1234").FirstError().Message
//	// "must have exactly 5 characters"
//
//	validationx.Range(1, 10)(ptr(11)).FirstError().Message
//	// "must be between 1 and 10"
//
//	validationx.IsValidCPF("11144477735") // true
//	validationx.IsValidCNPJ("11222333000181") // true
package validationx
