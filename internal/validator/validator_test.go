// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracecheck/tracecheck/internal/model"
)

func spanWithTrace(id, traceID string) model.Span {
	return model.Span{ID: id, TraceID: traceID}
}

func TestCheckContiguity(t *testing.T) {
	tests := []struct {
		name    string
		trace   model.Trace
		wantErr bool
	}{
		{
			name:  "empty trace passes",
			trace: model.Trace{},
		},
		{
			name:  "single span passes regardless of trace id",
			trace: model.Trace{spanWithTrace("1", "abc")},
		},
		{
			name: "matching trace ids pass",
			trace: model.Trace{
				spanWithTrace("1", "abc"),
				spanWithTrace("2", "abc"),
				spanWithTrace("3", "abc"),
			},
		},
		{
			name: "second span with different trace id fails",
			trace: model.Trace{
				spanWithTrace("1", "abc"),
				spanWithTrace("2", "def"),
			},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := CheckContiguity(test.trace)
			if test.wantErr {
				require.Error(t, err)
				var contigErr *ContiguityError
				require.ErrorAs(t, err, &contigErr)
				assert.Equal(t, "abc", contigErr.Expected)
				assert.Equal(t, "def", contigErr.Actual)
				assert.Equal(t, "2", contigErr.SpanID)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckDurations(t *testing.T) {
	pos := int64(100)
	zero := int64(0)
	neg := int64(-1)

	tests := []struct {
		name    string
		trace   model.Trace
		wantErr bool
	}{
		{
			name:  "absent durations pass",
			trace: model.Trace{{ID: "1"}},
		},
		{
			name:  "non-negative durations pass",
			trace: model.Trace{{ID: "1", Duration: &pos}, {ID: "2", Duration: &zero}},
		},
		{
			name:    "negative duration fails",
			trace:   model.Trace{{ID: "1", Duration: &pos}, {ID: "2", Duration: &neg}},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := CheckDurations(test.trace)
			if test.wantErr {
				var durErr *DurationError
				require.ErrorAs(t, err, &durErr)
				assert.Equal(t, "2", durErr.SpanID)
				assert.Equal(t, int64(-1), durErr.Duration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSequenceStopsAtFirstFailure(t *testing.T) {
	calls := 0
	failing := func(model.Trace) error {
		calls++
		return &DurationError{SpanID: "x", Duration: -5}
	}
	neverReached := func(model.Trace) error {
		t.Fatal("second check should not run")
		return nil
	}

	err := Sequence(failing, neverReached)(model.Trace{})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCheckAllReportsTraceIndex(t *testing.T) {
	traces := model.Traces{
		{spanWithTrace("1", "abc")},
		{spanWithTrace("1", "abc"), spanWithTrace("2", "def")},
	}

	err := CheckAll(traces)
	require.Error(t, err)
	assert.ErrorContains(t, err, "trace 1")

	var contigErr *ContiguityError
	require.ErrorAs(t, err, &contigErr)
}
