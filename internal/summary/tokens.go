// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package summary

import (
	"strconv"
	"strings"
)

// TokenUsage accumulates input/output/total token counts for one model.
// It forms a commutative monoid under Accumulate with (0,0,0) identity.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// Accumulate adds the given counts component-wise.
func (u *TokenUsage) Accumulate(input, output, total int64) {
	u.InputTokens += input
	u.OutputTokens += output
	u.TotalTokens += total
}

// parseTokenCount parses a numeric tag value. Missing or malformed
// telemetry must not abort aggregation, so any unparsable value is 0.
func parseTokenCount(value string) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
