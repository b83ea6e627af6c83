package transcript

import (
	"reflect"
	"testing"
)

func TestEnrich_BackfillsCallID(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Role: RoleAssistant, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
			{Seq: 2, Role: RoleTool, Type: TypeToolResult, ToolName: "search", Text: "ok"},
		},
	}

	out := Enrich(run)
	assertEqual(t, "ToolCallID", "call_1", out.Events[1].ToolCallID)
}

func TestEnrich_PicksNearestPrecedingCall(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
			{Seq: 2, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_2"},
			{Seq: 3, Type: TypeToolResult, ToolName: "search"},
		},
	}

	out := Enrich(run)
	assertEqual(t, "ToolCallID", "call_2", out.Events[2].ToolCallID)
}

func TestEnrich_NeverLooksForward(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolResult, ToolName: "search"},
			{Seq: 2, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
		},
	}

	out := Enrich(run)
	assertEqual(t, "ToolCallID", "", out.Events[0].ToolCallID)
}

func TestEnrich_LeavesExistingIDAlone(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
			{Seq: 2, Type: TypeToolResult, ToolName: "search", ToolCallID: "call_other"},
		},
	}

	out := Enrich(run)
	assertEqual(t, "ToolCallID", "call_other", out.Events[1].ToolCallID)
}

func TestEnrich_InitializesToolCallPayload(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolName: "search"},
			{Seq: 2, Type: TypeMessage, Text: "hi"},
		},
	}

	out := Enrich(run)
	if out.Events[0].Data == nil {
		t.Fatal("expected payload on tool_call")
	}
	assertEqual(t, "Calls", 0, len(out.Events[0].Data.Calls))
	if out.Events[1].Data != nil {
		t.Error("expected no payload on message")
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	run := Parse("ASSISTANT [TOOL_CALL]\nTool: search\nID: call_1\n- search({})\nTOOL [TOOL_RESULT]\nTool: search\nfound it\n")

	once := Enrich(run)
	twice := Enrich(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("enrich is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	run := &Run{
		Events: []Event{
			{Seq: 1, Type: TypeToolCall, ToolName: "search", ToolCallID: "call_1"},
			{Seq: 2, Type: TypeToolResult, ToolName: "search"},
		},
	}

	Enrich(run)
	assertEqual(t, "ToolCallID", "", run.Events[1].ToolCallID)
	if run.Events[0].Data != nil {
		t.Error("input payload was initialized in place")
	}
}
