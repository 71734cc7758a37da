// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package summary

import (
	"strings"

	"github.com/tracecheck/tracecheck/internal/model"
)

// Classification is the result of inspecting one span's tags and name.
// The flags are independent: a span can legitimately be more than one of
// these at once (e.g. a tool call that also failed), so this is a set of
// booleans rather than an exclusive variant.
type Classification struct {
	IsLLMCall  bool
	IsToolCall bool
	IsError    bool

	// ToolName is the reported tool identity, set only when IsToolCall:
	// the toolName tag value if present, otherwise the span's own name.
	ToolName string
}

// Classify inspects a single span in isolation. It is total: absent or
// malformed tags yield the neutral classification, never an error.
func Classify(span *model.Span) Classification {
	op := span.TagOrDefault(TagOperationName, "")

	var c Classification
	c.IsLLMCall = op == opChat

	toolName, hasToolName := span.Tag(TagToolName)
	if op == opTool || hasToolName {
		c.IsToolCall = true
		if hasToolName {
			c.ToolName = toolName
		} else {
			c.ToolName = span.Name
		}
	}

	c.IsError = isError(span)
	return c
}

// isError reports whether the span carries any of the three error signals.
// Multiple simultaneous signals still count as a single error.
func isError(span *model.Span) bool {
	if span.HasTag(TagError) {
		return true
	}
	if v, ok := span.Tag(TagOtelStatusCode); ok && v == statusError {
		return true
	}
	if v, ok := span.Tag(TagException); ok && !strings.EqualFold(v, exceptionNone) {
		return true
	}
	return false
}

// ResolveModel returns the model name for an LLM-call span: the response
// model if present, falling back to the request model when the response
// model is absent or the literal "none" (case-insensitive), and finally
// "unknown" when neither tag has a usable value.
func ResolveModel(span *model.Span) string {
	m := span.TagOrDefault(TagResponseModel, span.TagOrDefault(TagRequestModel, modelUnknown))
	if strings.EqualFold(m, modelNone) {
		m = span.TagOrDefault(TagRequestModel, modelUnknown)
	}
	return m
}
