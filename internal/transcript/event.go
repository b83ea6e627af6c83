// Package transcript normalizes line-oriented agent transcripts into an
// ordered sequence of typed, cross-referenced events. The pipeline is
// Parse -> Enrich -> Validate -> Link; every stage after Parse is a pure
// function of its input Run.
package transcript

import "encoding/json"

// Role identifies who produced an event.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// EventType categorizes what an event records.
type EventType string

const (
	TypeMessage    EventType = "message"
	TypeThought    EventType = "thought"
	TypeToolCall   EventType = "tool_call"
	TypeToolResult EventType = "tool_result"
	TypeError      EventType = "error"
	TypeArtifact   EventType = "artifact"
)

// CallRecord is one parsed tool invocation from a tool-call bullet line.
// ArgsRaw always holds the trimmed argument text; Args is set only when
// the arguments parsed as JSON.
type CallRecord struct {
	Tool    string          `json:"tool"`
	ArgsRaw string          `json:"args_raw"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// ToolCallPayload is the structured payload attached to tool_call events.
type ToolCallPayload struct {
	Calls []CallRecord `json:"calls"`
}

// Event is one normalized unit of a transcript.
type Event struct {
	Seq        int              `json:"seq"`
	Role       Role             `json:"role"`
	Type       EventType        `json:"type"`
	Time       string           `json:"time,omitempty"`
	Model      string           `json:"model,omitempty"`
	ToolName   string           `json:"tool_name,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	Text       string           `json:"text"`
	Data       *ToolCallPayload `json:"data,omitempty"`
}

// Run is the result of parsing one transcript: the normalized raw input,
// the emitted events in order, and any warnings accumulated so far.
type Run struct {
	ID       string   `json:"id"`
	Raw      string   `json:"raw"`
	Events   []Event  `json:"events"`
	Warnings []string `json:"warnings"`
}

// Edge is a directed causality link between two events, identified by
// sequence number. Edges are derived for presentation and never stored
// on the events themselves.
type Edge struct {
	From     int       `json:"from"`
	FromType EventType `json:"from_type"`
	To       int       `json:"to"`
	ToType   EventType `json:"to_type"`
}

// clone returns a copy of the run with its own events and warnings
// slices, so pipeline stages can add to it without touching the input.
func (r *Run) clone() *Run {
	out := &Run{
		ID:       r.ID,
		Raw:      r.Raw,
		Events:   make([]Event, len(r.Events)),
		Warnings: make([]string, len(r.Warnings)),
	}
	copy(out.Events, r.Events)
	copy(out.Warnings, r.Warnings)
	return out
}
