package problems

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"fence with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with preamble", "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", `{"a":1}`},
		{"unclosed fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.expected {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseProblem_Valid(t *testing.T) {
	raw := "```json\n{\"problem_text\":\"Sara has 12 apples and buys 8 more. How many does she have?\",\"correct_answer\":20,\"hints\":[\"Count what Sara starts with.\",\"Adding means combining groups.\",\"Add 12 and 8.\"]}\n```"

	p, err := ParseProblem(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CorrectAnswer != 20 {
		t.Errorf("expected answer 20, got %v", p.CorrectAnswer)
	}
	if len(p.Hints) != 3 {
		t.Errorf("expected 3 hints, got %d", len(p.Hints))
	}
}

func TestParseProblem_WithoutHints(t *testing.T) {
	raw := `{"problem_text":"What is 7 times 6?","correct_answer":42}`

	p, err := ParseProblem(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ProblemText == "" {
		t.Error("expected problem text")
	}
	if p.Hints != nil {
		t.Errorf("expected no hints, got %v", p.Hints)
	}
}

func TestParseProblem_FractionalAnswer(t *testing.T) {
	raw := `{"problem_text":"Share 5 pizzas among 4 friends.","correct_answer":1.25}`

	p, err := ParseProblem(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CorrectAnswer != 1.25 {
		t.Errorf("expected 1.25, got %v", p.CorrectAnswer)
	}
}

func TestParseProblem_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prose", "I cannot generate a problem right now."},
		{"missing answer", `{"problem_text":"What is 2+2?"}`},
		{"answer as string", `{"problem_text":"What is 2+2?","correct_answer":"4"}`},
		{"empty problem text", `{"problem_text":"","correct_answer":4}`},
		{"truncated", `{"problem_text":"What is 2+2?","correct_an`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProblem(tt.input)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got: %v", err)
			}
		})
	}
}
