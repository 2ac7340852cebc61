// SPDX-License-Identifier: MIT

package ladder

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/weavesolve/bfs"
)

var (
	tracer = otel.Tracer("weavesolve.ladder")
	meter  = otel.Meter("weavesolve.ladder")
)

var (
	solveLatency metric.Float64Histogram
	solveTotal   metric.Int64Counter
	ladderSteps  metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"ladder_solve_duration_seconds",
			metric.WithDescription("Duration of shortest ladder queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"ladder_solve_total",
			metric.WithDescription("Total number of ladder queries by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		ladderSteps, err = meter.Int64Histogram(
			"ladder_steps",
			metric.WithDescription("Number of steps in returned ladders"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startSolveSpan(ctx context.Context, start, stop string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "ladder.Solve",
		trace.WithAttributes(
			attribute.String("ladder.start", start),
			attribute.String("ladder.stop", stop),
		),
	)
}

// recordSolve annotates span and records the query metrics.
func recordSolve(ctx context.Context, span trace.Span, d time.Duration, steps int, err error) {
	outcome := outcomeOf(err)
	span.SetAttributes(attribute.String("ladder.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	} else {
		span.SetAttributes(attribute.Int("ladder.steps", steps))
	}

	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	solveLatency.Record(ctx, d.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	if err == nil {
		ladderSteps.Record(ctx, int64(steps))
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, bfs.ErrNoPath):
		return "no_path"
	case errors.Is(err, bfs.ErrInvalidWord):
		return "invalid_word"
	case errors.Is(err, ErrLengthMismatch):
		return "length_mismatch"
	default:
		return "error"
	}
}
