package runner

import (
	"context"
	"sync"
	"time"

	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("oqtopus-braket.runner")
	meter  = otel.Meter("oqtopus-braket.runner")
)

var (
	taskLatency metric.Float64Histogram
	taskTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		taskLatency, err = meter.Float64Histogram(
			"braket_task_duration_seconds",
			metric.WithDescription("Duration of circuit dispatches to a Braket device"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		taskTotal, err = meter.Int64Counter(
			"braket_task_total",
			metric.WithDescription("Total number of circuit dispatches to a Braket device"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// dispatch runs f inside a span and records one metrics entry for it.
func dispatch(ctx context.Context, device braket.Device, kind string, qubits, shots int,
	f func(ctx context.Context) (*braket.TaskResult, error)) (*braket.TaskResult, error) {
	ctx, span := tracer.Start(ctx, "BraketRunner."+kind,
		trace.WithAttributes(
			attribute.String("braket.device", device.Name()),
			attribute.String("braket.device_type", string(device.Type())),
			attribute.Int("braket.qubits", qubits),
			attribute.Int("braket.shots", shots),
		),
	)
	defer span.End()

	started := time.Now()
	res, err := f(ctx)
	elapsed := time.Since(started)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if initMetrics() == nil {
		attrs := metric.WithAttributes(
			attribute.String("device", device.Name()),
			attribute.String("kind", kind),
			attribute.Bool("success", err == nil),
		)
		taskLatency.Record(ctx, elapsed.Seconds(), attrs)
		taskTotal.Add(ctx, 1, attrs)
	}
	log.RecordTask(log.TaskMetrics{
		Device:  device.Name(),
		Kind:    kind,
		Shots:   shots,
		Qubits:  qubits,
		Elapsed: elapsed,
		Err:     err,
	})
	return res, err
}
