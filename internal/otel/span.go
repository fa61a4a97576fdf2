// Package otel provides OpenTelemetry span helpers shared by the dashboard packages.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys attached to dashboard spans
const (
	AttrCraneID     = attribute.Key("crane.id")
	AttrCacheKey    = attribute.Key("cache.key")
	AttrCacheHit    = attribute.Key("cache.hit")
	AttrPassID      = attribute.Key("sync.pass_id")
	AttrSyncTrigger = attribute.Key("sync.trigger")
	AttrSourceType  = attribute.Key("source.type")
	AttrSheetName   = attribute.Key("source.sheet")
	AttrResultCount = attribute.Key("result.count")
)

// StartSpan starts a new span if the tracer is non-nil, otherwise returns the span already in ctx
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err on span and marks it failed. Nil spans and nil errors are ignored.
// The status description stays generic; details live in the recorded event.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
