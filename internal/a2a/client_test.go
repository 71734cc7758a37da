// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func startAgentStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	router := mux.NewRouter()
	router.HandleFunc(Endpoint, handler).Methods(http.MethodPost)
	router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestSendMessage(t *testing.T) {
	var gotBody map[string]any
	server := startAgentStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"req-1","result":{"kind":"message"}}`))
	})

	client := NewClient(server.URL, zaptest.NewLogger(t))
	payload := []byte(`{"jsonrpc":"2.0","id":"req-1","method":"message/send","params":{}}`)

	reply, err := client.SendMessage(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.Equal(t, "message/send", gotBody["method"])
	require.NoError(t, reply.CheckCompliance("req-1"))
}

func TestSendMessage_AcceptedWithoutBody(t *testing.T) {
	server := startAgentStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	client := NewClient(server.URL, zaptest.NewLogger(t))
	reply, err := client.SendMessage(context.Background(), []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, reply.StatusCode)
}

func TestCheckCompliance(t *testing.T) {
	result := json.RawMessage(`{"ok":true}`)
	tests := []struct {
		name      string
		reply     Reply
		requestID string
		expErr    string
	}{
		{
			name: "compliant with result",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope:   Envelope{JSONRPC: "2.0", ID: json.RawMessage(`"req-1"`), Result: result},
			},
			requestID: "req-1",
		},
		{
			name: "compliant with error object",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope: Envelope{
					JSONRPC: "2.0",
					ID:      json.RawMessage(`"req-1"`),
					Error:   &Error{Code: -32600, Message: "invalid request"},
				},
			},
			requestID: "req-1",
		},
		{
			name: "numeric id matches string form",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope:   Envelope{JSONRPC: "2.0", ID: json.RawMessage(`7`), Result: result},
			},
			requestID: "7",
		},
		{
			name: "rejected status",
			reply: Reply{
				StatusCode: http.StatusBadRequest,
				Envelope:   Envelope{JSONRPC: "2.0", ID: json.RawMessage(`"req-1"`), Result: result},
			},
			requestID: "req-1",
			expErr:    "200 or 202",
		},
		{
			name: "wrong jsonrpc version",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope:   Envelope{JSONRPC: "1.0", ID: json.RawMessage(`"req-1"`), Result: result},
			},
			requestID: "req-1",
			expErr:    "version mismatch",
		},
		{
			name: "id not echoed",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope:   Envelope{JSONRPC: "2.0", ID: json.RawMessage(`"other"`), Result: result},
			},
			requestID: "req-1",
			expErr:    "not echoed",
		},
		{
			name: "neither result nor error",
			reply: Reply{
				StatusCode: http.StatusOK,
				Envelope:   Envelope{JSONRPC: "2.0", ID: json.RawMessage(`"req-1"`)},
			},
			requestID: "req-1",
			expErr:    "neither result nor error",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.reply.CheckCompliance(test.requestID)
			if test.expErr == "" {
				require.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, test.expErr)
			}
		})
	}
}

func TestPing(t *testing.T) {
	server := startAgentStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	client := NewClient(server.URL, zaptest.NewLogger(t))
	require.NoError(t, client.Ping(context.Background()))

	server.Close()
	require.Error(t, client.Ping(context.Background()))
}

func TestLoadPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jsonrpc":"2.0"}`), 0o600))

	data, err := LoadPayload(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0"}`, string(data))

	_, err = LoadPayload(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "payload file not found")
}
