// ============================================================================
// SRO - Registro de Operações
// ============================================================================
//
// Package:     sro
// Description: Shared pieces of the SRO entity packages: entity kinds,
//              pointer cloning and the document number rule set
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package sro holds what the entity packages under pkg/sro share. Each
// entity package (documento, endosso, movimentopremio, sinistro,
// movimentosinistro, complauto, ccg) exposes one constructor per entity:
//
//	seg, err := documento.NewSegurado(fields, today)
//
// Constructors either return a frozen value or a *validation.Rejection
// listing every violated rule in phase order.
package sro

import (
	"reflect"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/validationx"
)

// Kind names an aggregate root accepted by the intake pipeline
type Kind string

const (
	KindDocumento         Kind = "documento"
	KindEndosso           Kind = "endosso"
	KindMovimentoPremio   Kind = "movimento-premio"
	KindSinistro          Kind = "sinistro"
	KindMovimentoSinistro Kind = "movimento-sinistro"
	KindComplAuto         Kind = "compl-auto"
	KindCcg               Kind = "ccg"
)

// Outros is the reserved "other" code of coded enumerations. Choosing it
// makes the companion free-text description mandatory.
const Outros = 99

// Kinds lists every aggregate root kind
var Kinds = []Kind{
	KindDocumento,
	KindEndosso,
	KindMovimentoPremio,
	KindSinistro,
	KindMovimentoSinistro,
	KindComplAuto,
	KindCcg,
}

// ParseKind resolves a kind name
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Clone returns a copy of the value p points to, or nil
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Detach returns a copy of a fields struct that shares no memory with v:
// pointer fields point to fresh copies and slices are copied. Embedded
// structs are detached recursively.
func Detach[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Struct {
		detach(rv)
	}
	return v
}

func detach(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.Struct && rv.Type().Field(i).Anonymous {
			detach(f)
			continue
		}
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			cp := reflect.New(f.Elem().Type())
			cp.Elem().Set(f.Elem())
			f.Set(cp)
		case reflect.Slice:
			if f.IsNil() {
				continue
			}
			cp := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
			reflect.Copy(cp, f)
			f.Set(cp)
		}
	}
}

// DocumentRules registers the rules of a document number and its type code:
// both required, the number checked as CPF or CNPJ when the type says so,
// the type in 1..99 and the number at most 40 characters.
func DocumentRules(p *validation.Plan, docField, doc, tipoField string, tipo *int) *validation.Plan {
	return p.
		Required(docField, doc).
		Required(tipoField, tipo).
		Format(docField, doc, validationx.Document(tipo)).
		Domain(tipoField, tipo, validationx.Range(1, 99)).
		Size(docField, doc, validationx.MaxLength(40))
}
