// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package a2a is a minimal client for an agent server's A2A endpoint:
// it posts JSON-RPC 2.0 message payloads and checks the response envelope
// for protocol compliance. Payload bodies are opaque to this package;
// building and asserting on agent-specific content belongs to the caller.
package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

const (
	// Endpoint is the conventional A2A message path on the agent server.
	Endpoint = "/a2a"

	// Version is the only JSON-RPC version the protocol speaks.
	Version = "2.0"
)

// Error is a JSON-RPC error object.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// Envelope is a JSON-RPC 2.0 response envelope. ID is kept raw because
// servers may echo string or numeric ids.
type Envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Reply is a decoded A2A response plus the transport status code.
type Reply struct {
	StatusCode int
	Envelope
}

// Client posts messages to one agent server.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the agent server at baseURL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  logger,
	}
}

// SendMessage posts one JSON-RPC payload to the A2A endpoint and decodes
// the envelope. A non-JSON body on an accepted request yields an empty
// envelope rather than an error, since some servers reply 202 with no body.
func (c *Client) SendMessage(ctx context.Context, payload []byte) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending A2A message", zap.Int("payloadBytes", len(payload)))
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting A2A message: %w", err)
	}
	defer resp.Body.Close()

	reply := &Reply{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&reply.Envelope); err != nil && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("decoding A2A response (status %d): %w", resp.StatusCode, err)
	}
	c.logger.Debug("A2A response received", zap.Int("status", resp.StatusCode))
	return reply, nil
}

// Ping checks whether the agent server answers on its base URL. Used by
// the harness readiness wait before the first message is sent.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("agent server not ready: status %d", resp.StatusCode)
	}
	return nil
}

// CheckCompliance verifies the JSON-RPC contract: the server accepted the
// message (200 or 202), echoed the protocol version and request id, and
// returned either a result or an error object.
func (r *Reply) CheckCompliance(requestID string) error {
	if r.StatusCode != http.StatusOK && r.StatusCode != http.StatusAccepted {
		return fmt.Errorf("server should accept the message with 200 or 202, got %d", r.StatusCode)
	}
	if r.JSONRPC != Version {
		return fmt.Errorf("jsonrpc version mismatch: got %q, want %q", r.JSONRPC, Version)
	}
	if got := r.IDString(); got != requestID {
		return fmt.Errorf("request id not echoed: got %q, want %q", got, requestID)
	}
	if r.Result == nil && r.Error == nil {
		return fmt.Errorf("response carries neither result nor error")
	}
	return nil
}

// IDString renders the echoed id for comparison, handling both string
// and numeric ids.
func (r *Reply) IDString() string {
	if len(r.ID) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(r.ID, &v); err != nil {
		return string(r.ID)
	}
	return fmt.Sprint(v)
}

// LoadPayload reads a JSON-RPC payload from a file, with a pointed error
// when the file is missing.
func LoadPayload(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("payload file not found: %s", path)
		}
		return nil, err
	}
	return data, nil
}
