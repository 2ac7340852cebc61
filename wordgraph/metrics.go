// SPDX-License-Identifier: MIT
// Package: weavesolve/wordgraph
//
// metrics.go — OpenTelemetry instrumentation for Build.
//
// Instruments come from the global providers, which are no-ops unless the
// application installs an SDK (see internal/telemetry).

package wordgraph

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("weavesolve.wordgraph")
	meter  = otel.Meter("weavesolve.wordgraph")
)

var (
	buildLatency metric.Float64Histogram
	buildTotal   metric.Int64Counter
	wordsLoaded  metric.Int64Histogram
	edgesCreated metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"wordgraph_build_duration_seconds",
			metric.WithDescription("Duration of word graph construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"wordgraph_build_total",
			metric.WithDescription("Total number of word graph builds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		wordsLoaded, err = meter.Int64Histogram(
			"wordgraph_words",
			metric.WithDescription("Number of vertices per build"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesCreated, err = meter.Int64Histogram(
			"wordgraph_edges",
			metric.WithDescription("Number of undirected edges per build"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordBuildMetrics(ctx context.Context, d time.Duration, wordCount, edgeCount int) {
	if err := initMetrics(); err != nil {
		return
	}
	buildLatency.Record(ctx, d.Seconds())
	buildTotal.Add(ctx, 1)
	wordsLoaded.Record(ctx, int64(wordCount))
	edgesCreated.Record(ctx, int64(edgeCount))
}

func startBuildSpan(ctx context.Context, inputCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "wordgraph.Build",
		trace.WithAttributes(
			attribute.Int("wordgraph.input_count", inputCount),
		),
	)
}

func setBuildSpanResult(span trace.Span, wordCount, edgeCount int) {
	span.SetAttributes(
		attribute.Int("wordgraph.word_count", wordCount),
		attribute.Int("wordgraph.edge_count", edgeCount),
	)
}
