package intake

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/internal/metrics"
	"github.com/msto63/sro/internal/report"
	"github.com/msto63/sro/pkg/core/logging"
	"github.com/msto63/sro/pkg/sro"
)

// DefaultConcurrency is used when no limit is configured
const DefaultConcurrency = 8

// Validator validates batches into reports
type Validator struct {
	builder     *Builder
	metrics     *metrics.Metrics
	logger      *logging.Logger
	concurrency int
}

// Option configures a Validator
type Option func(*Validator)

// WithMetrics records every outcome in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// WithConcurrency limits the records validated in parallel
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

// NewValidator creates a validator constructing entities with builder
func NewValidator(builder *Builder, opts ...Option) *Validator {
	v := &Validator{
		builder:     builder,
		logger:      logging.Nop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Builder returns the builder records are constructed with
func (v *Validator) Builder() *Builder {
	return v.builder
}

// ValidateRecord constructs one record and reports its outcome
func (v *Validator) ValidateRecord(kind sro.Kind, index int, rec Record) report.RecordOutcome {
	start := time.Now()
	_, err := v.builder.Build(rec)
	elapsed := time.Since(start)

	var outcome report.RecordOutcome
	if err != nil {
		outcome = report.Rejected(index, rec.Key(), err)
	} else {
		outcome = report.Accepted(index, rec.Key())
	}

	kinds := make([]string, len(outcome.Violations))
	for i, viol := range outcome.Violations {
		kinds[i] = viol.Kind
	}
	v.metrics.ObserveRecord(string(kind), elapsed, kinds)

	if !outcome.Valid {
		v.logger.Debug("record rejected",
			"entity", string(kind), "index", index, "key", outcome.Key, "violations", len(outcome.Violations))
	}
	return outcome
}

// ValidateBatch validates every record of batch concurrently. The report
// lists outcomes in record order. A cancelled context aborts the run.
func (v *Validator) ValidateBatch(ctx context.Context, batch Batch) (*report.Report, error) {
	rep := report.New(batch.Source, string(batch.Kind))
	timer := v.logger.StartTimer("validate_batch").
		WithField("entity", string(batch.Kind)).
		WithField("records", len(batch.Records))

	outcomes := make([]report.RecordOutcome, len(batch.Records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, rec := range batch.Records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = v.ValidateRecord(batch.Kind, i, rec)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		timer.StopWithError(err)
		return nil, cancelled(err)
	}

	for _, o := range outcomes {
		rep.Add(o)
	}
	rep.Finish()
	timer.Stop()

	v.logger.Info("batch validated",
		"entity", rep.Entity, "source", rep.Source,
		"records", rep.Total, "valid", rep.Valid, "rejected", rep.Rejected)
	return rep, nil
}

func cancelled(err error) error {
	code := mdwerror.CodeCanceled
	if errors.Is(err, context.DeadlineExceeded) {
		code = mdwerror.CodeTimeout
	}
	return mdwerror.Wrap(err, "batch validation aborted").
		WithCode(code).
		WithOperation("intake.ValidateBatch")
}
