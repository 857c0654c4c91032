package problems

import (
	"strings"
	"testing"
)

func TestBuildGeneratePrompt_IncludesParameters(t *testing.T) {
	p := buildGeneratePrompt(DifficultyHard, OperationDivision)

	if !strings.Contains(p, "Difficulty: hard") {
		t.Error("prompt missing difficulty")
	}
	if !strings.Contains(p, "Operation: division") {
		t.Error("prompt missing operation")
	}
	if !strings.Contains(p, `"problem_text"`) || !strings.Contains(p, `"correct_answer"`) {
		t.Error("prompt missing JSON format instructions")
	}
}

func TestBuildHintPrompt_LevelLabels(t *testing.T) {
	tests := []struct {
		level int
		label string
	}{
		{1, "basic guidance"},
		{2, "problem-solving strategy"},
		{3, "detailed approach"},
	}
	for _, tt := range tests {
		p := buildHintPrompt("A problem.", DifficultyEasy, OperationAddition, tt.level)
		if !strings.Contains(p, tt.label) {
			t.Errorf("level %d prompt missing label %q", tt.level, tt.label)
		}
	}
}

func TestBuildSolutionPrompt_FormatsAnswer(t *testing.T) {
	p := buildSolutionPrompt("Share 5 pizzas among 4 friends.", DifficultyMedium, OperationDivision, 1.25)

	if !strings.Contains(p, "Final answer: 1.25") {
		t.Errorf("prompt missing formatted answer:\n%s", p)
	}
	if strings.Contains(p, "e+") || strings.Contains(p, "e-") {
		t.Error("answer rendered in scientific notation")
	}
}

func TestBuildFeedbackPrompt_IncludesBothAnswers(t *testing.T) {
	p := buildFeedbackPrompt("What is 12 + 8?", 20, 18, false)

	if !strings.Contains(p, "Correct answer: 20") {
		t.Error("prompt missing correct answer")
	}
	if !strings.Contains(p, "Student's answer: 18") {
		t.Error("prompt missing student's answer")
	}
	if !strings.Contains(p, "Is correct: false") {
		t.Error("prompt missing correctness flag")
	}
}

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{20, "20"},
		{1.25, "1.25"},
		{0.5, "0.5"},
		{1000000, "1000000"},
	}
	for _, tt := range tests {
		if got := formatAnswer(tt.input); got != tt.expected {
			t.Errorf("formatAnswer(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
