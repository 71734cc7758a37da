// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import "time"

const (
	// DefaultAgentURL is the default base URL of the agent server
	DefaultAgentURL = "http://localhost:8080"
	// DefaultZipkinURL is the default base URL of the Zipkin server
	DefaultZipkinURL = "http://localhost:9411"
	// DefaultReadyTimeout is the default wait for agent server readiness
	DefaultReadyTimeout = 60 * time.Second
)
