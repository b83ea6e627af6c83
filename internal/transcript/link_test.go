package transcript

import "testing"

func TestLink_CallToResult(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Role: RoleAssistant, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
			{Seq: 2, Role: RoleTool, Type: TypeToolResult, ToolName: "search", ToolCallID: "call_1"},
		},
	}

	edges := Link(run)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %v", len(edges), edges)
	}
	assertEqual(t, "From", 1, edges[0].From)
	assertEqual(t, "FromType", TypeToolCall, edges[0].FromType)
	assertEqual(t, "To", 2, edges[0].To)
	assertEqual(t, "ToType", TypeToolResult, edges[0].ToType)
}

func TestLink_MostRecentCallWins(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolCallID: "call_1"},
			{Seq: 2, Type: TypeToolCall, ToolCallID: "call_1"},
			{Seq: 3, Type: TypeToolResult, ToolCallID: "call_1"},
		},
	}

	edges := Link(run)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %v", len(edges), edges)
	}
	assertEqual(t, "From", 2, edges[0].From)
	assertEqual(t, "To", 3, edges[0].To)
}

func TestLink_EdgesNeverPointBackward(t *testing.T) {
	// A result between two calls with the same id must link to the call
	// before it, not the one after.
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolCallID: "call_1"},
			{Seq: 2, Type: TypeToolResult, ToolCallID: "call_1"},
			{Seq: 3, Type: TypeToolCall, ToolCallID: "call_1"},
		},
	}

	edges := Link(run)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %v", len(edges), edges)
	}
	assertEqual(t, "From", 1, edges[0].From)
	assertEqual(t, "To", 2, edges[0].To)
}

func TestLink_UnresolvableResultHasNoEdge(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolResult, ToolCallID: "call_9"},
		},
	}

	edges := Link(run)
	assertEqual(t, "edges", 0, len(edges))
}

func TestLink_ThoughtToAdjacentToolCall(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Role: RoleAssistant, Type: TypeThought},
			{Seq: 2, Role: RoleAssistant, Type: TypeToolCall},
		},
	}

	edges := Link(run)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %v", len(edges), edges)
	}
	assertEqual(t, "From", 1, edges[0].From)
	assertEqual(t, "To", 2, edges[0].To)
}

func TestLink_ResultToNextAssistantTurn(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Role: RoleTool, Type: TypeToolResult},
			{Seq: 2, Role: RoleAssistant, Type: TypeMessage},
			{Seq: 3, Role: RoleTool, Type: TypeToolResult},
			{Seq: 4, Role: RoleAssistant, Type: TypeThought},
			{Seq: 5, Role: RoleTool, Type: TypeToolResult},
			{Seq: 6, Role: RoleAssistant, Type: TypeToolCall},
		},
	}

	edges := Link(run)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d: %v", len(edges), edges)
	}
	assertEqual(t, "first To", 2, edges[0].To)
	assertEqual(t, "second To", 4, edges[1].To)
}

func TestLink_ResultToUserIsNotLinked(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Role: RoleTool, Type: TypeToolResult},
			{Seq: 2, Role: RoleUser, Type: TypeMessage},
		},
	}

	edges := Link(run)
	assertEqual(t, "edges", 0, len(edges))
}

func TestLink_FullPipeline(t *testing.T) {
	input := "ASSISTANT [THINKING]\nI should search.\n" +
		"ASSISTANT [TOOL_CALL]\nTool: search\nID: call_1\n- search({\"q\":\"go\"})\n" +
		"TOOL [TOOL_RESULT]\nTool: search\nfound it\n" +
		"ASSISTANT [THINKING]\nDone.\n"

	run := Validate(Enrich(Parse(input)))
	edges := Link(run)

	// thought->call, call->result, result->thought
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.From >= e.To {
			t.Errorf("edge points backward: %+v", e)
		}
	}
}
