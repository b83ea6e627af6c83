package transcript

import "fmt"

// Validate returns a new Run whose warnings list has grown by one entry
// per consistency problem found: role/type mismatches, tool_results that
// reference no known tool_call, results with no identification at all,
// and timestamps that do not match the HH:MM:SS shape. Only the textual
// shape of a timestamp is checked, never its numeric range. Events are
// never mutated; warnings are appended in event order.
func Validate(run *Run) *Run {
	out := run.clone()

	warn := func(format string, args ...any) {
		out.Warnings = append(out.Warnings, fmt.Sprintf(format, args...))
	}

	// call id -> seq of the tool_call that declared it, in event order
	callIDs := make(map[string]int)

	for _, ev := range out.Events {
		switch ev.Type {
		case TypeToolCall:
			if ev.Role != RoleAssistant {
				warn("event %d: tool_call has role %q, expected %q", ev.Seq, ev.Role, RoleAssistant)
			}
			if ev.ToolCallID != "" {
				callIDs[ev.ToolCallID] = ev.Seq
			}

		case TypeToolResult:
			if ev.Role != RoleTool {
				warn("event %d: tool_result has role %q, expected %q", ev.Seq, ev.Role, RoleTool)
			}
			if ev.ToolCallID != "" {
				if _, ok := callIDs[ev.ToolCallID]; !ok {
					warn("event %d: tool_result references id %q with no matching tool_call", ev.Seq, ev.ToolCallID)
				}
			}
			if ev.ToolName == "" && ev.ToolCallID == "" {
				warn("event %d: tool_result has neither tool name nor call id", ev.Seq)
			}
		}

		if ev.Time != "" && !timeRe.MatchString(ev.Time) {
			warn("event %d: malformed time %q", ev.Seq, ev.Time)
		}
	}

	return out
}
