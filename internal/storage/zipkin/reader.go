// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package zipkin reads traces back from a Zipkin server's query API.
// This is the concrete fetch collaborator behind the poller: it performs
// one bounded query per call and does no retrying of its own.
package zipkin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tracecheck/tracecheck/internal/model"
)

const (
	tracesEndpoint = "/api/v2/traces"

	DefaultLookback = 10 * time.Minute
	DefaultLimit    = 100
)

// Config holds the query parameters for the Zipkin trace search.
type Config struct {
	// BaseURL is the Zipkin server root, e.g. "http://localhost:9411".
	BaseURL string
	// ServiceName filters traces to those emitted by one service.
	ServiceName string
	// Lookback bounds how far back from endTs the search goes.
	Lookback time.Duration
	// Limit caps the number of traces returned.
	Limit int
}

// Reader queries the Zipkin API for traces.
type Reader struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

// NewReader creates a Reader with the given config. Zero config fields
// fall back to defaults.
func NewReader(config Config, logger *zap.Logger) *Reader {
	if config.Lookback <= 0 {
		config.Lookback = DefaultLookback
	}
	if config.Limit <= 0 {
		config.Limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		config: config,
		client: &http.Client{},
		logger: logger,
	}
}

// FindTraces runs one trace search and decodes the response. An empty
// slice with a nil error means the store has no matching traces yet.
func (r *Reader) FindTraces(ctx context.Context) (model.Traces, error) {
	u, err := url.Parse(r.config.BaseURL + tracesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid zipkin base URL %q: %w", r.config.BaseURL, err)
	}
	q := u.Query()
	if r.config.ServiceName != "" {
		q.Set("serviceName", r.config.ServiceName)
	}
	q.Set("endTs", strconv.FormatInt(time.Now().UnixMilli(), 10))
	q.Set("lookback", strconv.FormatInt(r.config.Lookback.Milliseconds(), 10))
	q.Set("limit", strconv.Itoa(r.config.Limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying zipkin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("zipkin query returned %d: %s", resp.StatusCode, body)
	}

	var traces model.Traces
	if err := json.NewDecoder(resp.Body).Decode(&traces); err != nil {
		return nil, fmt.Errorf("decoding zipkin response: %w", err)
	}

	r.logger.Debug("zipkin query completed",
		zap.Int("traces", len(traces)),
		zap.Int("spans", traces.SpanCount()))
	return traces, nil
}
