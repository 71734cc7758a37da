// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package model

// SpanKind is the Zipkin span kind.
type SpanKind string

const (
	SpanKindClient   SpanKind = "CLIENT"
	SpanKindServer   SpanKind = "SERVER"
	SpanKindProducer SpanKind = "PRODUCER"
	SpanKindConsumer SpanKind = "CONSUMER"
	// SpanKindUnset is the zero value; Zipkin omits the field entirely.
	SpanKindUnset SpanKind = ""
)

// Endpoint is the Zipkin service identity attached to a span.
type Endpoint struct {
	ServiceName string `json:"serviceName,omitempty"`
	IPv4        string `json:"ipv4,omitempty"`
	IPv6        string `json:"ipv6,omitempty"`
	Port        int    `json:"port,omitempty"`
}

// Annotation is a timestamped point event within a span.
type Annotation struct {
	Timestamp int64  `json:"timestamp"`
	Value     string `json:"value"`
}

// Span is one unit of work in the Zipkin v2 JSON wire format, as returned
// by the Zipkin query API. Timestamp is microseconds since epoch, Duration
// is microseconds. Both are pointers because the API may omit them.
type Span struct {
	TraceID        string            `json:"traceId"`
	ID             string            `json:"id"`
	ParentID       string            `json:"parentId,omitempty"`
	Name           string            `json:"name,omitempty"`
	Kind           SpanKind          `json:"kind,omitempty"`
	Timestamp      *int64            `json:"timestamp,omitempty"`
	Duration       *int64            `json:"duration,omitempty"`
	LocalEndpoint  *Endpoint         `json:"localEndpoint,omitempty"`
	RemoteEndpoint *Endpoint         `json:"remoteEndpoint,omitempty"`
	Annotations    []Annotation      `json:"annotations,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
}

// Tag returns the value of the given tag key and whether it is present.
func (s *Span) Tag(key string) (string, bool) {
	v, ok := s.Tags[key]
	return v, ok
}

// HasTag returns true if the span carries the given tag key,
// regardless of its value.
func (s *Span) HasTag(key string) bool {
	_, ok := s.Tags[key]
	return ok
}

// TagOrDefault returns the tag value, or def when the key is absent.
func (s *Span) TagOrDefault(key, def string) string {
	if v, ok := s.Tags[key]; ok {
		return v
	}
	return def
}

// DurationMicros returns the span duration, or 0 when the field is absent.
func (s *Span) DurationMicros() int64 {
	if s.Duration == nil {
		return 0
	}
	return *s.Duration
}

// Trace is the ordered sequence of spans believed to share one trace id.
// The sharing is an invariant of the trace store, checked by the validator
// rather than assumed here.
type Trace []Span

// Traces is the shape of a Zipkin query API response: a list of traces,
// each a list of spans.
type Traces []Trace

// SpanCount returns the total number of spans across all traces.
func (ts Traces) SpanCount() int {
	n := 0
	for _, t := range ts {
		n += len(t)
	}
	return n
}
