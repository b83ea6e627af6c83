package transcript

// Enrich returns a new Run with missing tool-call correlation filled in:
// a tool_result that has a tool name but no call id inherits the call id
// of the nearest preceding tool_call with the same tool name. Correlation
// is strictly backward in time; forward references are never considered.
// Every tool_call without a payload gets an empty calls list. Nothing
// already present is altered, so Enrich is idempotent.
func Enrich(run *Run) *Run {
	out := run.clone()
	for i := range out.Events {
		ev := &out.Events[i]

		if ev.Type == TypeToolResult && ev.ToolCallID == "" && ev.ToolName != "" {
			for j := i - 1; j >= 0; j-- {
				prev := &run.Events[j]
				if prev.Type == TypeToolCall && prev.ToolName == ev.ToolName {
					ev.ToolCallID = prev.ToolCallID
					break
				}
			}
		}

		if ev.Type == TypeToolCall && ev.Data == nil {
			ev.Data = &ToolCallPayload{Calls: make([]CallRecord, 0)}
		}
	}
	return out
}
