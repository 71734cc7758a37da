// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package testutils

import (
	"testing"

	"go.uber.org/goleak"
)

// IgnoreOpts returns goleak options that ignore goroutines kept alive by
// the net/http client connection pool, which outlive individual tests that
// talk to httptest servers.
func IgnoreOpts() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	}
}

// VerifyGoLeaks verifies that a test main does not leak goroutines.
// Intended for use in package_test.go files of packages that start timers
// or talk to test servers.
func VerifyGoLeaks(m *testing.M) {
	goleak.VerifyTestMain(m, IgnoreOpts()...)
}
