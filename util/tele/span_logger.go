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
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// spanLogSink records log lines as span events and forwards them to the
// wrapped sink. A nil wrapped sink only records span events.
type spanLogSink struct {
	sink logr.LogSink
	span trace.Span
	name string
	vals []interface{}
}

var _ logr.LogSink = (*spanLogSink)(nil)

// Init is a no-op: the wrapped sink was initialized by the logger it came from.
func (s *spanLogSink) Init(logr.RuntimeInfo) {}

func (s *spanLogSink) Enabled(level int) bool {
	if s.sink == nil {
		return true
	}
	return s.sink.Enabled(level)
}

func (s *spanLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if s.span != nil {
		s.span.AddEvent(msg, trace.WithAttributes(s.attributes(keysAndValues)...))
	}
	if s.sink != nil {
		s.sink.Info(level, msg, append(s.vals[:len(s.vals):len(s.vals)], keysAndValues...)...)
	}
}

func (s *spanLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if s.span != nil {
		s.span.RecordError(err, trace.WithAttributes(s.attributes(keysAndValues)...))
		s.span.SetStatus(codes.Error, msg)
	}
	if s.sink != nil {
		s.sink.Error(err, msg, append(s.vals[:len(s.vals):len(s.vals)], keysAndValues...)...)
	}
}

func (s *spanLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	vals := make([]interface{}, 0, len(s.vals)+len(keysAndValues))
	vals = append(vals, s.vals...)
	vals = append(vals, keysAndValues...)
	return &spanLogSink{
		sink: s.sink,
		span: s.span,
		name: s.name,
		vals: vals,
	}
}

func (s *spanLogSink) WithName(name string) logr.LogSink {
	var sink logr.LogSink
	if s.sink != nil {
		sink = s.sink.WithName(name)
	}
	return &spanLogSink{
		sink: sink,
		span: s.span,
		name: s.name + "." + name,
		vals: s.vals,
	}
}

func (s *spanLogSink) attributes(keysAndValues []interface{}) []attribute.KeyValue {
	all := append(s.vals[:len(s.vals):len(s.vals)], keysAndValues...)
	attrs := make([]attribute.KeyValue, 0, len(all)/2)
	for i := 0; i+1 < len(all); i += 2 {
		attrs = append(attrs, attribute.String(fmt.Sprint(all[i]), fmt.Sprint(all[i+1])))
	}
	return attrs
}
