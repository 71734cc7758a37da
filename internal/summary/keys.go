// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package summary

// OpenTelemetry gen-AI semantic convention tag keys, as emitted by
// Spring AI / Micrometer instrumentation on Zipkin spans. These are part
// of the wire contract and must match exactly.
const (
	// TagOperationName distinguishes chat vs tool vs framework operations.
	TagOperationName = "gen_ai.operation.name"

	// TagResponseModel is the model actually used for the response,
	// which may differ from the requested model.
	TagResponseModel = "gen_ai.response.model"

	// TagRequestModel is the model requested by the caller.
	TagRequestModel = "gen_ai.request.model"

	TagInputTokens  = "gen_ai.usage.input_tokens"
	TagOutputTokens = "gen_ai.usage.output_tokens"
	TagTotalTokens  = "gen_ai.usage.total_tokens"

	// TagToolName is present on tool invocation spans that do not carry
	// the gen_ai operation marker.
	TagToolName = "toolName"

	// TagError is present only when a span records a failure; the value
	// is irrelevant.
	TagError = "error"

	// TagOtelStatusCode signals a failure when its value is "ERROR".
	TagOtelStatusCode = "otel.status_code"

	// TagException holds "none" when there is no error, otherwise the
	// exception class name.
	TagException = "exception"
)

const (
	opChat        = "chat"
	opTool        = "tool"
	statusError   = "ERROR"
	exceptionNone = "none"
	modelNone     = "none"
	modelUnknown  = "unknown"
)
