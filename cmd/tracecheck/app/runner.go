// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tracecheck/tracecheck/internal/a2a"
	"github.com/tracecheck/tracecheck/internal/harness"
	"github.com/tracecheck/tracecheck/internal/poller"
	"github.com/tracecheck/tracecheck/internal/storage/zipkin"
)

// Run performs one acceptance pass: wait for the agent, send the payload,
// await the exported traces, validate them and print the summary report
// to out. Returns an error when the pass fails; the caller decides the
// exit code.
func Run(ctx context.Context, options *Options, logger *zap.Logger, out io.Writer) error {
	agent := a2a.NewClient(options.AgentURL, logger)
	reader := zipkin.NewReader(zipkin.Config{
		BaseURL:     options.ZipkinURL,
		ServiceName: options.ServiceName,
		Lookback:    options.Lookback,
		Limit:       options.Limit,
	}, logger)

	h := harness.New(agent, reader, logger)
	h.PollInterval = options.PollInterval
	h.PollTimeout = options.PollTimeout

	if !options.SkipSend {
		if options.PayloadFile == "" {
			return errors.New("either --payload or --skip.send is required")
		}
		payload, err := a2a.LoadPayload(options.PayloadFile)
		if err != nil {
			return err
		}
		if err := h.WaitUntilReady(ctx, options.ReadyTimeout); err != nil {
			return err
		}
		reply, err := h.Send(ctx, payload, options.RequestID)
		if err != nil {
			return fmt.Errorf("A2A message failed: %w", err)
		}
		logger.Info("A2A message accepted", zap.Int("status", reply.StatusCode))
	}

	traces, err := h.AwaitTraces(ctx)
	if err != nil {
		var timeoutErr *poller.TimeoutError
		if errors.As(err, &timeoutErr) {
			return fmt.Errorf("traces never arrived: %w", err)
		}
		return fmt.Errorf("trace store query failed: %w", err)
	}

	h.LogTraces(traces)
	if err := h.CheckTraces(traces); err != nil {
		return fmt.Errorf("trace validation failed: %w", err)
	}

	s := h.Summarize(traces)
	fmt.Fprint(out, s.Format())
	return nil
}
