// Copyright (c) 2025 The Tracecheck Authors.
// SPDX-License-Identifier: Apache-2.0

package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const reportRuler = "═══════════════════════════════════════════════════════════"

// Format renders the summary as a human-readable block suitable for test
// and CLI output. The layout is presentation only; the numbers are exactly
// the TraceSummary fields.
func (s *TraceSummary) Format() string {
	var sb strings.Builder

	sb.WriteString(reportRuler + "\n")
	sb.WriteString("                   TRACE SUMMARY\n")
	sb.WriteString(reportRuler + "\n")

	fmt.Fprintf(&sb, "  Traces                : %d\n", s.TraceCount)
	fmt.Fprintf(&sb, "  Model calls           : %d\n", s.ModelCallCount)
	fmt.Fprintf(&sb, "  Tool calls            : %d\n", s.ToolCallCount)
	if len(s.ToolNames) > 0 {
		fmt.Fprintf(&sb, "  Tools invoked         : %s\n", strings.Join(s.ToolNames, ", "))
	}
	fmt.Fprintf(&sb, "  Errors / Exceptions   : %d\n", s.ErrorCount)
	if len(s.ErrorSpanNames) > 0 {
		fmt.Fprintf(&sb, "  Error spans           : %s\n", strings.Join(s.ErrorSpanNames, ", "))
	}
	fmt.Fprintf(&sb, "  Total LLM time        : %.2f s\n", float64(s.TotalLLMDurationMicros)/1e6)

	sb.WriteString("\n  Token Usage by Model:\n")
	if len(s.ModelUsages) == 0 {
		sb.WriteString("    (no token data recorded)\n")
	} else {
		s.writeTokenTable(&sb)
	}

	sb.WriteString(reportRuler + "\n")
	return sb.String()
}

func (s *TraceSummary) writeTokenTable(sb *strings.Builder) {
	table := tablewriter.NewTable(sb,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
		}),
		tablewriter.WithHeader([]string{"Model", "Input", "Output", "Total"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
	)

	for _, mu := range s.ModelUsages {
		_ = table.Append(usageRow(mu.Model, mu.Usage))
	}
	if len(s.ModelUsages) > 1 {
		_ = table.Append(usageRow("TOTAL", s.TotalUsage()))
	}
	_ = table.Render()
}

func usageRow(name string, u TokenUsage) []string {
	return []string{
		name,
		strconv.FormatInt(u.InputTokens, 10),
		strconv.FormatInt(u.OutputTokens, 10),
		strconv.FormatInt(u.TotalTokens, 10),
	}
}
