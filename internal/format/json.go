package format

import (
	"encoding/json"
	"fmt"

	"github.com/relaylabs/relaylog/internal/transcript"
)

// Artifact is the compact JSON envelope produced for machine consumers.
// The raw input is omitted; the events already carry everything derived
// from it.
type Artifact struct {
	RunID    string             `json:"run_id"`
	Events   []transcript.Event `json:"events"`
	Edges    []transcript.Edge  `json:"edges"`
	Warnings []string           `json:"warnings"`
}

// CompactJSON encodes the run and its edges as a single-line JSON artifact.
func CompactJSON(run *transcript.Run, edges []transcript.Edge) ([]byte, error) {
	out, err := json.Marshal(Artifact{
		RunID:    run.ID,
		Events:   run.Events,
		Edges:    edges,
		Warnings: run.Warnings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode run: %w", err)
	}
	return out, nil
}

// IndentedJSON encodes the same artifact with indentation for humans.
func IndentedJSON(run *transcript.Run, edges []transcript.Edge) ([]byte, error) {
	out, err := json.MarshalIndent(Artifact{
		RunID:    run.ID,
		Events:   run.Events,
		Edges:    edges,
		Warnings: run.Warnings,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode run: %w", err)
	}
	return out, nil
}
