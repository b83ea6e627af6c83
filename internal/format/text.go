package format

import (
	"fmt"
	"strings"

	"github.com/relaylabs/relaylog/internal/transcript"
)

// Text serializes the run as a plain text context block, one event after
// another. This is the representation handed to an LLM question-answering
// caller; it stays close to the transcript so the model can quote it.
func Text(run *transcript.Run) string {
	var b strings.Builder

	for _, ev := range run.Events {
		fmt.Fprintf(&b, "[%d] %s %s", ev.Seq, ev.Role, ev.Type)
		if ev.Time != "" {
			fmt.Fprintf(&b, " at %s", ev.Time)
		}
		if ev.Model != "" {
			fmt.Fprintf(&b, " (model %s)", ev.Model)
		}
		if ev.ToolName != "" {
			fmt.Fprintf(&b, " tool=%s", ev.ToolName)
		}
		if ev.ToolCallID != "" {
			fmt.Fprintf(&b, " id=%s", ev.ToolCallID)
		}
		b.WriteString("\n")
		if ev.Text != "" {
			b.WriteString(ev.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(run.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range run.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
