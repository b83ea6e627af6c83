// Package format renders a normalized Run for the consumers outside the
// pipeline: human-readable Markdown, a compact JSON artifact, and the
// plain text context block handed to an LLM caller.
package format

import (
	"fmt"
	"strings"

	"github.com/relaylabs/relaylog/internal/transcript"
)

// Markdown renders the run and its causality edges as a Markdown document.
func Markdown(run *transcript.Run, edges []transcript.Edge) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run %s\n\n", run.ID)

	for _, ev := range run.Events {
		fmt.Fprintf(&b, "## %d. %s %s\n\n", ev.Seq, ev.Role, ev.Type)

		meta := eventMeta(ev)
		if len(meta) > 0 {
			for _, m := range meta {
				fmt.Fprintf(&b, "- %s\n", m)
			}
			b.WriteString("\n")
		}

		if ev.Text != "" {
			b.WriteString(ev.Text)
			b.WriteString("\n\n")
		}

		if ev.Data != nil && len(ev.Data.Calls) > 0 {
			b.WriteString("Calls:\n\n")
			for _, call := range ev.Data.Calls {
				fmt.Fprintf(&b, "- `%s(%s)`\n", call.Tool, call.ArgsRaw)
			}
			b.WriteString("\n")
		}
	}

	if len(edges) > 0 {
		b.WriteString("## Causality\n\n")
		for _, e := range edges {
			fmt.Fprintf(&b, "- %d (%s) -> %d (%s)\n", e.From, e.FromType, e.To, e.ToType)
		}
		b.WriteString("\n")
	}

	if len(run.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range run.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func eventMeta(ev transcript.Event) []string {
	meta := make([]string, 0, 4)
	if ev.Time != "" {
		meta = append(meta, "time: "+ev.Time)
	}
	if ev.Model != "" {
		meta = append(meta, "model: "+ev.Model)
	}
	if ev.ToolName != "" {
		meta = append(meta, "tool: "+ev.ToolName)
	}
	if ev.ToolCallID != "" {
		meta = append(meta, "call id: "+ev.ToolCallID)
	}
	return meta
}
