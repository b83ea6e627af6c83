package transcript

import (
	"regexp"
	"strings"
)

// lineKind tags one input line with the grammar element it matched.
type lineKind int

const (
	lineContent lineKind = iota
	lineDivider
	lineHeader
	lineMeta
	lineBullet
)

// classified is a line-kind tag plus whatever groups the match captured.
type classified struct {
	kind lineKind

	// header
	role Role
	typ  EventType

	// metadata
	time       string
	model      string
	toolName   string
	toolCallID string

	// tool-call bullet
	bulletTool string
	bulletArgs string
}

var (
	headerUserRe       = regexp.MustCompile(`(?i)^USER$`)
	headerThinkingRe   = regexp.MustCompile(`(?i)^ASSISTANT \[THINKING\]$`)
	headerToolCallRe   = regexp.MustCompile(`(?i)^ASSISTANT \[TOOL_CALL\]$`)
	headerToolResultRe = regexp.MustCompile(`(?i)^TOOL \[TOOL_RESULT\]$`)

	timeRe      = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	modelTimeRe = regexp.MustCompile(`^Model:\s*(.+?)\s*-\s*(\d{2}:\d{2}:\d{2})$`)
	callIDRe    = regexp.MustCompile(`^ID:\s*(\S.*)$`)
	toolNameRe  = regexp.MustCompile(`^Tool:\s*(\S.*)$`)

	bulletRe = regexp.MustCompile(`^[-*]\s*([A-Za-z0-9_.\-]+)\((.*)\)\s*$`)
)

// classifyLine categorizes one newline-normalized input line. Priority is
// divider, then section header, then metadata field, then tool-call
// bullet; anything else (including blank lines) is content. First match
// wins. Every pattern must match the whole line: a divider is a line that
// is exactly U, A or T, and whitespace-padded structural lines stay
// content rather than flushing or opening events.
func classifyLine(line string) classified {
	switch line {
	case "U", "A", "T":
		return classified{kind: lineDivider}
	}

	switch {
	case headerUserRe.MatchString(line):
		return classified{kind: lineHeader, role: RoleUser, typ: TypeMessage}
	case headerThinkingRe.MatchString(line):
		return classified{kind: lineHeader, role: RoleAssistant, typ: TypeThought}
	case headerToolCallRe.MatchString(line):
		return classified{kind: lineHeader, role: RoleAssistant, typ: TypeToolCall}
	case headerToolResultRe.MatchString(line):
		return classified{kind: lineHeader, role: RoleTool, typ: TypeToolResult}
	}

	if timeRe.MatchString(line) {
		return classified{kind: lineMeta, time: line}
	}
	if m := modelTimeRe.FindStringSubmatch(line); m != nil {
		return classified{kind: lineMeta, model: m[1], time: m[2]}
	}
	if m := callIDRe.FindStringSubmatch(line); m != nil {
		return classified{kind: lineMeta, toolCallID: strings.TrimSpace(m[1])}
	}
	if m := toolNameRe.FindStringSubmatch(line); m != nil {
		return classified{kind: lineMeta, toolName: strings.TrimSpace(m[1])}
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return classified{kind: lineBullet, bulletTool: m[1], bulletArgs: strings.TrimSpace(m[2])}
	}

	return classified{kind: lineContent}
}
