package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// pendingMeta buffers metadata fields seen while no event is open. They
// are applied to the next event that a header opens, then cleared.
type pendingMeta struct {
	time       string
	model      string
	toolName   string
	toolCallID string
}

// parseState is the mutable parser state: the event being accumulated,
// the pending metadata buffer, and the sequence counter. Each Parse call
// gets a fresh instance.
type parseState struct {
	current *Event
	pending pendingMeta
	seq     int
	events  []Event
}

// Parse converts a raw transcript into a Run. It never fails: malformed
// input degrades to an empty or partial event list. Content lines seen
// before any section header are dropped without a warning.
func Parse(raw string) *Run {
	norm := normalizeNewlines(raw)

	st := &parseState{events: make([]Event, 0)}
	for _, line := range strings.Split(norm, "\n") {
		st.consume(line)
	}
	st.flush()

	return &Run{
		ID:       uuid.NewString(),
		Raw:      norm,
		Events:   st.events,
		Warnings: make([]string, 0),
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// consume dispatches one line against the classifier and updates state.
func (st *parseState) consume(line string) {
	if strings.TrimSpace(line) == "" {
		// Blank lines inside an event preserve paragraph breaks.
		if st.current != nil {
			st.current.Text += "\n"
		}
		return
	}

	c := classifyLine(line)
	switch c.kind {
	case lineDivider:
		st.flush()

	case lineHeader:
		st.flush()
		ev := &Event{Role: c.role, Type: c.typ}
		if st.pending.time != "" {
			ev.Time = st.pending.time
		}
		if st.pending.model != "" {
			ev.Model = st.pending.model
		}
		if st.pending.toolName != "" {
			ev.ToolName = st.pending.toolName
		}
		if st.pending.toolCallID != "" {
			ev.ToolCallID = st.pending.toolCallID
		}
		st.pending = pendingMeta{}
		st.current = ev

	case lineMeta:
		st.applyMeta(c)

	case lineBullet:
		if st.current == nil {
			return
		}
		st.current.Text += line + "\n"
		if st.current.Type != TypeToolCall {
			return
		}
		if st.current.Data == nil {
			st.current.Data = &ToolCallPayload{Calls: make([]CallRecord, 0)}
		}
		st.current.Data.Calls = append(st.current.Data.Calls, CallRecord{
			Tool:    c.bulletTool,
			ArgsRaw: c.bulletArgs,
			Args:    parseCallArgs(c.bulletArgs),
		})

	default:
		if st.current != nil {
			st.current.Text += line + "\n"
		}
	}
}

// applyMeta attaches a metadata field to the current event, or buffers it
// for the next header when no event is open. Time is first-wins on the
// current event; model, tool name and call id are last-wins.
func (st *parseState) applyMeta(c classified) {
	if st.current == nil {
		if c.time != "" {
			st.pending.time = c.time
		}
		if c.model != "" {
			st.pending.model = c.model
		}
		if c.toolName != "" {
			st.pending.toolName = c.toolName
		}
		if c.toolCallID != "" {
			st.pending.toolCallID = c.toolCallID
		}
		return
	}

	if c.time != "" && st.current.Time == "" {
		st.current.Time = c.time
	}
	if c.model != "" {
		st.current.Model = c.model
	}
	if c.toolName != "" {
		st.current.ToolName = c.toolName
	}
	if c.toolCallID != "" {
		st.current.ToolCallID = c.toolCallID
	}
}

// flush emits the current event if it carries any content or metadata
// worth keeping: non-empty text, a tool name, or a model. Events with
// none of those are discarded silently. Sequence numbers are assigned at
// emission, so they stay contiguous even when events are discarded.
func (st *parseState) flush() {
	if st.current == nil {
		return
	}
	ev := *st.current
	ev.Text = strings.TrimRight(ev.Text, " \t\n")
	if ev.Text != "" || ev.ToolName != "" || ev.Model != "" {
		st.seq++
		ev.Seq = st.seq
		st.events = append(st.events, ev)
	}
	st.current = nil
	st.pending = pendingMeta{}
}

// parseCallArgs parses tool-call arguments best-effort: plain JSON first,
// then a retry with literal newlines escaped. Returns nil when neither
// attempt yields valid JSON; the raw text is kept regardless.
func parseCallArgs(args string) json.RawMessage {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	escaped := strings.ReplaceAll(trimmed, "\n", `\n`)
	if json.Valid([]byte(escaped)) {
		return json.RawMessage(escaped)
	}
	return nil
}

// jsonMessage is one entry of the alternative JSON ingestion format.
type jsonMessage struct {
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Timestamp string          `json:"timestamp,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// ParseJSON ingests the alternative JSON transcript format: either a bare
// array of messages or an object with a "messages" array. Every entry
// becomes one message-type event, sequenced in array order. This path
// applies no enrichment or validation, and it is the only place the
// pipeline fails hard: syntactically invalid JSON returns an error.
func ParseJSON(raw []byte) (*Run, error) {
	var msgs []jsonMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		var wrapper struct {
			Messages []jsonMessage `json:"messages"`
		}
		if err2 := json.Unmarshal(raw, &wrapper); err2 != nil {
			return nil, fmt.Errorf("failed to parse JSON transcript: %w", err2)
		}
		msgs = wrapper.Messages
	}

	events := make([]Event, 0, len(msgs))
	for i, m := range msgs {
		events = append(events, Event{
			Seq:  i + 1,
			Role: Role(m.Role),
			Type: TypeMessage,
			Time: m.Timestamp,
			Text: m.Content,
		})
	}

	return &Run{
		ID:       uuid.NewString(),
		Raw:      string(raw),
		Events:   events,
		Warnings: make([]string, 0),
	}, nil
}
