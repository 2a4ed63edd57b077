package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Verdict is one contextual judgment returned by the model for a
// candidate filler occurrence.
type Verdict struct {
	Index      int     `json:"index"`
	IsFiller   bool    `json:"is_filler"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
	Suggestion string  `json:"suggestion"`
}

// extractJSON pulls a JSON payload out of a chat completion that may
// wrap it in markdown fences or surrounding prose.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```"); idx >= 0 {
		rest := content[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		content = strings.TrimSpace(rest)
	}

	start := strings.IndexAny(content, "[{")
	if start < 0 {
		return content
	}
	end := strings.LastIndexAny(content, "]}")
	if end < start {
		return content
	}
	return content[start : end+1]
}

// ParseVerdicts decodes the model response into verdicts. The model is
// asked for a JSON array; a single object is tolerated.
func ParseVerdicts(content string) ([]Verdict, error) {
	payload := extractJSON(content)

	var verdicts []Verdict
	if err := json.Unmarshal([]byte(payload), &verdicts); err == nil {
		return verdicts, nil
	}

	var single Verdict
	if err := json.Unmarshal([]byte(payload), &single); err == nil {
		return []Verdict{single}, nil
	}

	return nil, fmt.Errorf("failed to parse verdicts from model response")
}
