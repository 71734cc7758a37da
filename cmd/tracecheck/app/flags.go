// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"
	"time"

	"github.com/spf13/viper"

	"github.com/tracecheck/tracecheck/internal/poller"
	"github.com/tracecheck/tracecheck/internal/storage/zipkin"
)

const (
	agentURLFlag     = "agent.url"
	zipkinURLFlag    = "zipkin.url"
	serviceNameFlag  = "zipkin.service-name"
	lookbackFlag     = "zipkin.lookback"
	limitFlag        = "zipkin.limit"
	payloadFlag      = "payload"
	requestIDFlag    = "request.id"
	pollIntervalFlag = "poll.interval"
	pollTimeoutFlag  = "poll.timeout"
	readyTimeoutFlag = "ready.timeout"
	skipSendFlag     = "skip.send"
)

// Options holds the configuration for one acceptance pass.
type Options struct {
	AgentURL     string
	ZipkinURL    string
	ServiceName  string
	Lookback     time.Duration
	Limit        int
	PayloadFile  string
	RequestID    string
	PollInterval time.Duration
	PollTimeout  time.Duration
	ReadyTimeout time.Duration
	SkipSend     bool
}

// AddFlags registers CLI flags for the acceptance pass.
func AddFlags(fs *flag.FlagSet) {
	fs.String(agentURLFlag, DefaultAgentURL, "base URL of the agent server's A2A endpoint")
	fs.String(zipkinURLFlag, DefaultZipkinURL, "base URL of the Zipkin server")
	fs.String(serviceNameFlag, "", "service name to filter traces by (empty matches all)")
	fs.Duration(lookbackFlag, zipkin.DefaultLookback, "how far back to search for traces")
	fs.Int(limitFlag, zipkin.DefaultLimit, "maximum number of traces to fetch per query")
	fs.String(payloadFlag, "", "path to the JSON-RPC message payload file")
	fs.String(requestIDFlag, "", "JSON-RPC request id the server must echo")
	fs.Duration(pollIntervalFlag, poller.DefaultInterval, "delay between trace store queries")
	fs.Duration(pollTimeoutFlag, poller.DefaultTimeout, "total time to wait for traces to arrive")
	fs.Duration(readyTimeoutFlag, DefaultReadyTimeout, "total time to wait for the agent server to answer")
	fs.Bool(skipSendFlag, false, "skip sending a message; only await and summarize traces")
}

// InitFromViper initializes Options with values from viper (flags or env).
func (o *Options) InitFromViper(v *viper.Viper) *Options {
	o.AgentURL = v.GetString(agentURLFlag)
	o.ZipkinURL = v.GetString(zipkinURLFlag)
	o.ServiceName = v.GetString(serviceNameFlag)
	o.Lookback = v.GetDuration(lookbackFlag)
	o.Limit = v.GetInt(limitFlag)
	o.PayloadFile = v.GetString(payloadFlag)
	o.RequestID = v.GetString(requestIDFlag)
	o.PollInterval = v.GetDuration(pollIntervalFlag)
	o.PollTimeout = v.GetDuration(pollTimeoutFlag)
	o.ReadyTimeout = v.GetDuration(readyTimeoutFlag)
	o.SkipSend = v.GetBool(skipSendFlag)
	return o
}
