package transcript

// Link derives the causality edge list over an enriched and validated
// event sequence:
//
//   - tool_call -> tool_result, resolved through the call id; when an id
//     is declared more than once, the most recent declaration wins
//   - thought -> immediately following tool_call
//   - tool_result -> immediately following assistant thought or message
//
// Edges always point from an earlier sequence number to a later one by
// construction, so no cycle detection is needed.
func Link(run *Run) []Edge {
	edges := make([]Edge, 0)

	calls := make(map[string]*Event)
	for i := range run.Events {
		ev := &run.Events[i]
		switch ev.Type {
		case TypeToolCall:
			if ev.ToolCallID != "" {
				calls[ev.ToolCallID] = ev
			}
		case TypeToolResult:
			if ev.ToolCallID == "" {
				continue
			}
			if call, ok := calls[ev.ToolCallID]; ok {
				edges = append(edges, Edge{
					From:     call.Seq,
					FromType: call.Type,
					To:       ev.Seq,
					ToType:   ev.Type,
				})
			}
		}
	}

	for i := 0; i+1 < len(run.Events); i++ {
		cur, next := &run.Events[i], &run.Events[i+1]
		if cur.Type == TypeThought && next.Type == TypeToolCall {
			edges = append(edges, Edge{From: cur.Seq, FromType: cur.Type, To: next.Seq, ToType: next.Type})
		}
		if cur.Type == TypeToolResult && next.Role == RoleAssistant &&
			(next.Type == TypeThought || next.Type == TypeMessage) {
			edges = append(edges, Edge{From: cur.Seq, FromType: cur.Type, To: next.Seq, ToType: next.Type})
		}
	}

	return edges
}
