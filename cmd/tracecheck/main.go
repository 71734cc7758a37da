// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tracecheck/tracecheck/cmd/tracecheck/app"
	"github.com/tracecheck/tracecheck/internal/config"
	"github.com/tracecheck/tracecheck/internal/version"
)

var logger, _ = zap.NewDevelopment()

func main() {
	v := viper.New()

	command := &cobra.Command{
		Use:   "tracecheck",
		Short: "Tracecheck verifies an agent server run through its exported traces",
		Long: `Tracecheck sends a JSON-RPC message to an agent server, waits for the
run's Zipkin traces to arrive, validates them and prints a gen-AI metrics
summary (model calls, token usage per model, tool invocations, errors).`,
		RunE: func(cmd *cobra.Command, _ /* args */ []string) error {
			options := new(app.Options).InitFromViper(v)
			return app.Run(context.Background(), options, logger, cmd.OutOrStdout())
		},
	}

	config.AddFlags(v, command, app.AddFlags)

	command.AddCommand(version.Command())

	if err := command.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
