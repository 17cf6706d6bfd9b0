package intake

import (
	"fmt"
	"strings"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/timex"
)

// Builder constructs entities from records, children first. A parent is
// only returned when every child was constructed; otherwise the child
// rejections are returned with their index path, as in "segurados[2].nome",
// together with the parent's own violations.
type Builder struct {
	today timex.Date
}

// NewBuilder creates a builder evaluating date rules against today
func NewBuilder(today timex.Date) *Builder {
	return &Builder{today: today}
}

// Today returns the reference date
func (b *Builder) Today() timex.Date {
	return b.today
}

// Build constructs the entity of rec. The error is a *validation.Rejection
// when the record or one of its children breaks an invariant.
func (b *Builder) Build(rec Record) (any, error) {
	return rec.build(b)
}

// collector gathers the rejections of children under their path
type collector struct {
	violations []validation.ValidationError
}

func (c *collector) add(path string, err error) {
	if rej, ok := validation.AsRejection(err); ok {
		c.violations = append(c.violations, rej.Prefix(path).Violations...)
		return
	}
	c.violations = append(c.violations, validation.ValidationError{
		Code:    validation.CodeType,
		Field:   path,
		Message: fmt.Sprintf("%s: %v", path, err),
	})
}

func (c *collector) failed() bool {
	return len(c.violations) > 0
}

func (c *collector) rejection(entity string) error {
	return &validation.Rejection{Entity: entity, Violations: c.violations}
}

// each constructs every item of a child list. Failed items are recorded in
// c and left out of the result.
func each[F, T any](c *collector, name string, items []F, build func(F) (T, error)) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := build(item)
		if err != nil {
			c.add(fmt.Sprintf("%s[%d]", name, i), err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// one constructs an optional single child
func one[F, T any](c *collector, name string, item *F, build func(F) (T, error)) *T {
	if item == nil {
		return nil
	}
	v, err := build(*item)
	if err != nil {
		c.add(name, err)
		return nil
	}
	return &v
}

// construct runs the parent constructor on the children that were built.
// When a child failed, the parent's own violations follow the child
// rejections, except those on a field whose children were rejected.
func construct[T any](c *collector, entity string, build func() (T, error)) (T, error) {
	v, err := build()
	if !c.failed() {
		return v, err
	}
	if err != nil {
		c.merge(err)
	}
	var zero T
	return zero, c.rejection(entity)
}

// merge appends the parent violations of err not already covered by a
// rejected child
func (c *collector) merge(err error) {
	rej, ok := validation.AsRejection(err)
	if !ok {
		c.violations = append(c.violations, validation.ValidationError{
			Code:    validation.CodeType,
			Message: err.Error(),
		})
		return
	}
	rejected := make(map[string]bool, len(c.violations))
	for _, v := range c.violations {
		rejected[fieldRoot(v.Field)] = true
	}
	for _, v := range rej.Violations {
		if rejected[fieldRoot(v.Field)] {
			continue
		}
		c.violations = append(c.violations, v)
	}
}

// fieldRoot returns the top-level field of a path: "segurados[2].nome"
// gives "segurados"
func fieldRoot(path string) string {
	if i := strings.IndexAny(path, "[."); i >= 0 {
		return path[:i]
	}
	return path
}
