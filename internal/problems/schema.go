package problems

import "github.com/rahulv/mathquest/internal/llm"

// ProblemSchema validates the JSON object the model returns for a
// problem-generation request.
var ProblemSchema = &llm.Schema{
	Name:        "math-word-problem",
	Description: "A generated math word problem with its answer and suggested hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem_text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"correct_answer": map[string]any{
				"type": "number",
			},
			"hints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"maxItems": HintBatchSize,
			},
		},
		"required":             []any{"problem_text", "correct_answer"},
		"additionalProperties": false,
	},
}
