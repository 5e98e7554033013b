package toast

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for toastkit stores.
const defaultTracerName = "toastkit"

// WithTracing enables an OpenTelemetry span per dispatch, using the
// globally registered tracer provider. Pass an empty name to use the
// default tracer name.
func WithTracing(tracerName string) Option {
	return func(s *Store) {
		if tracerName == "" {
			tracerName = defaultTracerName
		}
		s.tracer = otel.Tracer(tracerName)
	}
}

// startDispatchSpan opens a span for one dispatch cycle.
// Returns nil when tracing is disabled.
func (s *Store) startDispatchSpan(action Action) trace.Span {
	if s.tracer == nil {
		return nil
	}
	_, span := s.tracer.Start(context.Background(), "toast.dispatch",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("toast.action", action.Type.String()),
		),
	)
	return span
}

// endDispatchSpan records the resulting toast count and closes the span.
func (s *Store) endDispatchSpan(span trace.Span, toasts int) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int("toast.count", toasts))
	span.End()
}
