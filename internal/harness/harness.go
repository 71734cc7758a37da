// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package harness composes the acceptance-check building blocks into one
// reusable fixture value. The harness is created once per run and passed
// to every consumer; it holds no process-wide state, so independent runs
// can coexist in the same process.
package harness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tracecheck/tracecheck/internal/a2a"
	"github.com/tracecheck/tracecheck/internal/model"
	"github.com/tracecheck/tracecheck/internal/poller"
	"github.com/tracecheck/tracecheck/internal/summary"
	"github.com/tracecheck/tracecheck/internal/validator"
)

// TraceReader is the trace-store query collaborator. The Zipkin reader
// implements it; tests inject stubs.
type TraceReader interface {
	FindTraces(ctx context.Context) (model.Traces, error)
}

// Harness bundles the agent client, the trace reader and the polling
// policy for one acceptance run.
type Harness struct {
	Agent  *a2a.Client
	Traces TraceReader
	Logger *zap.Logger

	PollInterval time.Duration
	PollTimeout  time.Duration
}

// New creates a harness with default polling policy and a nop logger if
// none is given.
func New(agent *a2a.Client, traces TraceReader, logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harness{
		Agent:        agent,
		Traces:       traces,
		Logger:       logger,
		PollInterval: poller.DefaultInterval,
		PollTimeout:  poller.DefaultTimeout,
	}
}

// WaitUntilReady polls the agent server until it answers, bounded by the
// given timeout. Traces exported before readiness do not exist, so every
// run starts here.
func (h *Harness) WaitUntilReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		if lastErr = h.Agent.Ping(ctx); lastErr == nil {
			h.Logger.Info("agent server is ready")
			return nil
		}
		if time.Until(deadline) < h.PollInterval {
			return fmt.Errorf("agent server did not become ready within %v: %w", timeout, lastErr)
		}
		h.Logger.Debug("agent server not ready, retrying", zap.Error(lastErr))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(h.PollInterval):
		}
	}
}

// Send posts one payload to the agent and checks the JSON-RPC envelope
// against the expected request id.
func (h *Harness) Send(ctx context.Context, payload []byte, requestID string) (*a2a.Reply, error) {
	reply, err := h.Agent.SendMessage(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := reply.CheckCompliance(requestID); err != nil {
		return reply, err
	}
	return reply, nil
}

// AwaitTraces polls the trace reader until a non-empty batch arrives.
// A *poller.TimeoutError means the traces never showed up; a plain error
// means the reader itself failed.
func (h *Harness) AwaitTraces(ctx context.Context) (model.Traces, error) {
	p := poller.Poller{
		Interval: h.PollInterval,
		Timeout:  h.PollTimeout,
		Logger:   h.Logger,
	}
	return p.AwaitNonEmpty(ctx, h.Traces.FindTraces)
}

// CheckTraces runs the invariant checks over every fetched trace.
func (*Harness) CheckTraces(traces model.Traces) error {
	return validator.CheckAll(traces)
}

// Summarize folds the batch into a trace summary.
func (*Harness) Summarize(traces model.Traces) *summary.TraceSummary {
	return summary.FromTraces(traces)
}

// LogTraces logs the shape of each trace at debug level, for diagnosing
// runs whose assertions fail.
func (h *Harness) LogTraces(traces model.Traces) {
	for i, trace := range traces {
		names := make([]string, 0, len(trace))
		for _, span := range trace {
			names = append(names, span.Name)
		}
		h.Logger.Debug("trace",
			zap.Int("index", i),
			zap.Int("spans", len(trace)),
			zap.Strings("spanNames", names))
	}
}
