package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/relaylabs/relaylog/internal/transcript"
)

func testRun() (*transcript.Run, []transcript.Edge) {
	input := "USER\nfind go docs\n" +
		"ASSISTANT [TOOL_CALL]\nTool: search\nID: call_1\n- search({\"q\":\"go\"})\n" +
		"TOOL [TOOL_RESULT]\nID: call_1\nfound golang.org\n"
	run := transcript.Validate(transcript.Enrich(transcript.Parse(input)))
	return run, transcript.Link(run)
}

func TestMarkdown(t *testing.T) {
	run, edges := testRun()
	md := Markdown(run, edges)

	for _, want := range []string{
		"# Run " + run.ID,
		"## 1. user message",
		"## 2. assistant tool_call",
		"- tool: search",
		"`search({\"q\":\"go\"})`",
		"## Causality",
		"2 (tool_call) -> 3 (tool_result)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdown_WarningsSection(t *testing.T) {
	run := transcript.Validate(transcript.Parse("TOOL [TOOL_RESULT]\nID: call_9\noops\n"))
	md := Markdown(run, nil)

	if !strings.Contains(md, "## Warnings") {
		t.Errorf("markdown missing warnings section:\n%s", md)
	}
	if !strings.Contains(md, "call_9") {
		t.Errorf("warning text not rendered:\n%s", md)
	}
}

func TestCompactJSON(t *testing.T) {
	run, edges := testRun()
	out, err := CompactJSON(run, edges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(out, &artifact); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if artifact.RunID != run.ID {
		t.Errorf("run_id: expected %q, got %q", run.ID, artifact.RunID)
	}
	if len(artifact.Events) != 3 {
		t.Errorf("expected 3 events, got %d", len(artifact.Events))
	}
	if len(artifact.Edges) != 1 {
		t.Errorf("expected 1 edge, got %d", len(artifact.Edges))
	}
	if strings.Contains(string(out), "\n") {
		t.Error("compact output should be a single line")
	}
}

func TestText(t *testing.T) {
	run, _ := testRun()
	text := Text(run)

	for _, want := range []string{
		"[1] user message",
		"find go docs",
		"[2] assistant tool_call tool=search id=call_1",
		"[3] tool tool_result id=call_1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}
