// File: phase.go
// Title: Validation Phases
// Description: Ordered phases of entity construction. Rules registered on a
//              Plan always run in phase order regardless of registration order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial phase definitions

package validation

import "fmt"

// Phase identifies one step of the construction pipeline
type Phase int

const (
	PhasePresence Phase = iota
	PhaseFormat
	PhaseDomain
	PhaseSize
	PhaseCrossField

	phaseCount = int(PhaseCrossField) + 1
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePresence:
		return "presence"
	case PhaseFormat:
		return "format"
	case PhaseDomain:
		return "domain"
	case PhaseSize:
		return "size"
	case PhaseCrossField:
		return "cross-field"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase name
func (p *Phase) UnmarshalText(text []byte) error {
	for i := 0; i < phaseCount; i++ {
		if Phase(i).String() == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown validation phase %q", string(text))
}
