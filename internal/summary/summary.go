// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

// Package summary reduces a batch of Zipkin traces produced by an agentic
// run into one deterministic metrics summary: how many LLM calls were made,
// how many tokens were consumed and by which model, which tools were
// invoked, whether anything went wrong, and how long the LLM work took.
package summary

import (
	"github.com/tracecheck/tracecheck/internal/model"
)

// ModelUsage pairs a model name with its accumulated token counts.
type ModelUsage struct {
	Model string
	Usage TokenUsage
}

// TraceSummary is the aggregate over one batch of traces. It is built by
// a single fold over the input and never mutated afterwards.
//
// ModelUsages, ToolNames and ErrorSpanNames preserve first-encounter order
// while scanning traces then spans in the given order; the name lists keep
// duplicates. Order is part of the contract, which is why the per-model
// breakdown is an ordered slice rather than a map.
type TraceSummary struct {
	TraceCount             int
	ModelCallCount         int
	ToolCallCount          int
	ErrorCount             int
	TotalLLMDurationMicros int64

	ModelUsages    []ModelUsage
	ToolNames      []string
	ErrorSpanNames []string

	modelIndex map[string]int
}

// FromTraces folds the full trace-store response into a summary. The fold
// is pure and deterministic: identical input in identical order yields an
// identical summary. Malformed telemetry (missing tags, unparsable token
// counts) degrades to zero and never fails the aggregation.
func FromTraces(traces model.Traces) *TraceSummary {
	s := &TraceSummary{
		TraceCount: len(traces),
		modelIndex: make(map[string]int),
	}
	for _, trace := range traces {
		for i := range trace {
			s.addSpan(&trace[i])
		}
	}
	return s
}

// addSpan applies every applicable classification to one span. The checks
// are independent: a span that is both a tool call and an error bumps both
// counters.
func (s *TraceSummary) addSpan(span *model.Span) {
	c := Classify(span)

	if c.IsLLMCall {
		s.ModelCallCount++
		s.TotalLLMDurationMicros += span.DurationMicros()
		s.usageFor(ResolveModel(span)).Accumulate(
			parseTokenCount(span.TagOrDefault(TagInputTokens, "")),
			parseTokenCount(span.TagOrDefault(TagOutputTokens, "")),
			parseTokenCount(span.TagOrDefault(TagTotalTokens, "")),
		)
	}

	if c.IsToolCall {
		s.ToolCallCount++
		s.ToolNames = append(s.ToolNames, c.ToolName)
	}

	if c.IsError {
		s.ErrorCount++
		s.ErrorSpanNames = append(s.ErrorSpanNames, span.Name)
	}
}

// usageFor returns the accumulator for the given model, creating the
// entry in first-seen position if it is new.
func (s *TraceSummary) usageFor(modelName string) *TokenUsage {
	if i, ok := s.modelIndex[modelName]; ok {
		return &s.ModelUsages[i].Usage
	}
	s.modelIndex[modelName] = len(s.ModelUsages)
	s.ModelUsages = append(s.ModelUsages, ModelUsage{Model: modelName})
	return &s.ModelUsages[len(s.ModelUsages)-1].Usage
}

// UsageByModel returns the accumulated token usage for one model.
func (s *TraceSummary) UsageByModel(modelName string) (TokenUsage, bool) {
	i, ok := s.modelIndex[modelName]
	if !ok {
		return TokenUsage{}, false
	}
	return s.ModelUsages[i].Usage, true
}

// TotalUsage returns token usage summed across all models.
func (s *TraceSummary) TotalUsage() TokenUsage {
	var total TokenUsage
	for _, mu := range s.ModelUsages {
		total.Accumulate(mu.Usage.InputTokens, mu.Usage.OutputTokens, mu.Usage.TotalTokens)
	}
	return total
}
