// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package validator holds post-hoc invariant checks over fetched traces.
// A failed check is an assertion-style failure meant to fail an acceptance
// run, not to be suppressed; the errors carry enough context (expected vs
// actual trace id, offending span) to diagnose the trace store.
package validator

import (
	"fmt"

	"github.com/tracecheck/tracecheck/internal/model"
)

// Check validates one trace's span sequence.
type Check func(model.Trace) error

// Sequence combines checks into one, applied in order, stopping at the
// first failure.
func Sequence(checks ...Check) Check {
	return func(trace model.Trace) error {
		for _, check := range checks {
			if err := check(trace); err != nil {
				return err
			}
		}
		return nil
	}
}

// ContiguityError reports a span whose trace id differs from the first
// span's trace id within the same trace.
type ContiguityError struct {
	Expected string
	Actual   string
	SpanID   string
}

func (e *ContiguityError) Error() string {
	return fmt.Sprintf("trace contiguity violation: span %s has traceId %s, expected %s",
		e.SpanID, e.Actual, e.Expected)
}

// DurationError reports a span carrying a negative duration.
type DurationError struct {
	SpanID   string
	Duration int64
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("duration violation: span %s has negative duration %d", e.SpanID, e.Duration)
}

// CheckContiguity verifies that every span in the trace shares the first
// span's trace id. Traces with at most one span trivially pass.
func CheckContiguity(trace model.Trace) error {
	if len(trace) <= 1 {
		return nil
	}
	expected := trace[0].TraceID
	for i := 1; i < len(trace); i++ {
		if trace[i].TraceID != expected {
			return &ContiguityError{
				Expected: expected,
				Actual:   trace[i].TraceID,
				SpanID:   trace[i].ID,
			}
		}
	}
	return nil
}

// CheckDurations verifies that every span with a duration has a
// non-negative one. Spans without the field pass.
func CheckDurations(trace model.Trace) error {
	for i := range trace {
		if trace[i].Duration != nil && *trace[i].Duration < 0 {
			return &DurationError{SpanID: trace[i].ID, Duration: *trace[i].Duration}
		}
	}
	return nil
}

// CheckTrace runs all standard checks over one trace.
var CheckTrace = Sequence(CheckContiguity, CheckDurations)

// CheckAll runs the standard checks over every trace in the batch,
// reporting the index of the first failing trace.
func CheckAll(traces model.Traces) error {
	for i, trace := range traces {
		if err := CheckTrace(trace); err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return nil
}
