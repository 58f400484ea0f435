/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tele

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cloudify-azure-plugin"

// Tracer returns the default opentelemetry tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// Option configures a span started by StartSpanWithLogger.
type Option func(*spanConfig)

type spanConfig struct {
	kvps []kvp
}

type kvp struct {
	key   string
	value string
}

// KVP adds a key-value pair to both the span attributes and the returned logger.
func KVP(key, value string) Option {
	return func(c *spanConfig) {
		c.kvps = append(c.kvps, kvp{key: key, value: value})
	}
}

// StartSpanWithLogger starts a new span with the global tracer and returns a
// logger that is bound to both the span and the logger found in ctx.
// Callers must call the returned func when the span ends:
//
//	ctx, log, done := tele.StartSpanWithLogger(ctx, "virtualmachines.Service.Reconcile")
//	defer done()
func StartSpanWithLogger(ctx context.Context, spanName string, opts ...Option) (context.Context, logr.Logger, func()) {
	cfg := &spanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, corrID := ctxWithCorrID(ctx)

	attrs := make([]attribute.KeyValue, 0, len(cfg.kvps)+1)
	vals := make([]interface{}, 0, 2*len(cfg.kvps)+2)
	if corrID != "" {
		attrs = append(attrs, attribute.String(string(CorrIDKeyVal), string(corrID)))
		vals = append(vals, string(CorrIDKeyVal), string(corrID))
	}
	for _, kv := range cfg.kvps {
		attrs = append(attrs, attribute.String(kv.key, kv.value))
		vals = append(vals, kv.key, kv.value)
	}

	ctx, span := Tracer().Start(ctx, spanName, trace.WithAttributes(attrs...))

	base := logr.FromContextOrDiscard(ctx)
	sink := base.GetSink()
	if cd, ok := sink.(logr.CallDepthLogSink); ok {
		// account for the frame added by spanLogSink
		sink = cd.WithCallDepth(1)
	}
	log := logr.New(&spanLogSink{
		sink: sink,
		span: span,
		name: spanName,
		vals: vals,
	})
	ctx = logr.NewContext(ctx, base)

	return ctx, log, func() { span.End() }
}
