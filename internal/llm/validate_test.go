package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem_text":   map[string]any{"type": "string"},
				"correct_answer": map[string]any{"type": "number"},
				"grade":          map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"problem_text", "correct_answer"},
		},
	}
}

func TestValidateSchema_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 2+2?","correct_answer":4,"grade":"A"}`)
	if err := ValidateSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateSchema_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 2+2?","correct_answer":4}`)
	if err := ValidateSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateSchema_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 2+2?"}`)
	err := ValidateSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateSchema_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 2+2?","correct_answer":"four"}`)
	err := ValidateSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateSchema_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	err := ValidateSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateSchema_NilSchemaIsNoop(t *testing.T) {
	if err := ValidateSchema(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("expected nil schema to skip validation, got: %v", err)
	}
}
