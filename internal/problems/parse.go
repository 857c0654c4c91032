package problems

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rahulv/mathquest/internal/llm"
)

// fencedJSON matches a markdown code fence, with or without a language tag,
// and captures its body. Models sometimes wrap JSON this way despite being
// told not to.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON strips markdown fences and surrounding whitespace from a raw
// model response, returning the JSON payload candidate.
func ExtractJSON(raw string) string {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	s := strings.TrimSpace(raw)
	// Unclosed fence: strip what is there.
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseProblem extracts, validates, and decodes a generated problem from a
// raw model response.
func ParseProblem(raw string) (*GeneratedProblem, error) {
	cleaned := ExtractJSON(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrParse)
	}
	if err := llm.ValidateSchema(ProblemSchema, json.RawMessage(cleaned)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var p GeneratedProblem
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &p, nil
}
