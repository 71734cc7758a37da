// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package poller implements the wait-until-traces-arrive loop. Spans are
// exported out-of-band, so a successful query against the trace store can
// legitimately return nothing for a while; the poller retries an injected
// fetch on a fixed interval until data appears or a deadline passes. It
// deliberately does not retry fetch failures: those indicate a broken
// collaborator, not eventual-arrival latency, and propagate immediately.
package poller

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tracecheck/tracecheck/internal/model"
)

const (
	DefaultInterval = 2 * time.Second
	DefaultTimeout  = 30 * time.Second
)

// FetchFunc queries the trace store once. An empty result with a nil error
// means "no traces yet".
type FetchFunc func(ctx context.Context) (model.Traces, error)

// TimeoutError is returned when no non-empty result arrived within the
// deadline. It is a distinct type so callers can tell "no traces ever"
// apart from a fetch failure.
type TimeoutError struct {
	Timeout  time.Duration
	Elapsed  time.Duration
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no traces arrived within %v (elapsed %v, %d attempts)",
		e.Timeout, e.Elapsed.Round(time.Millisecond), e.Attempts)
}

// Poller retries a fetch serially on a fixed interval, bounded by a
// wall-clock timeout. The zero value uses the defaults and a nop logger.
type Poller struct {
	Interval time.Duration
	Timeout  time.Duration
	Logger   *zap.Logger
}

// AwaitNonEmpty invokes fetch until it returns a non-empty batch. The
// first fetch happens immediately. Once the remaining budget is smaller
// than the interval the poller fails without issuing one more fetch beyond
// the bound. Fetch errors are propagated as-is on the first occurrence.
func (p Poller) AwaitNonEmpty(ctx context.Context, fetch FetchFunc) (model.Traces, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	deadline := start.Add(timeout)
	attempts := 0

	for {
		attempts++
		traces, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if len(traces) > 0 {
			logger.Debug("traces arrived",
				zap.Int("traces", len(traces)),
				zap.Int("spans", traces.SpanCount()),
				zap.Int("attempts", attempts),
				zap.Duration("elapsed", time.Since(start)))
			return traces, nil
		}

		if time.Until(deadline) < interval {
			return nil, &TimeoutError{
				Timeout:  timeout,
				Elapsed:  time.Since(start),
				Attempts: attempts,
			}
		}

		logger.Debug("no traces yet, retrying",
			zap.Duration("interval", interval),
			zap.Int("attempts", attempts))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
