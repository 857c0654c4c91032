package problems

import (
	"fmt"
	"strconv"
	"strings"
)

const generateSystemPrompt = `You are a math tutor creating practice word problems for elementary school students (11-12 years old).

Rules:
- Generate a single word problem matching the requested difficulty and operation.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols.
- The problem must have one clear numerical answer.
- Make it engaging and grounded in a real-world situation.
- Include every number the student needs; nothing should be ambiguous.
- Suggest three progressive hints: the first gives basic guidance, the second a problem-solving strategy, the third a detailed approach. None may reveal the answer.`

const hintSystemPrompt = `You are a math tutor helping an elementary school student who is stuck on a word problem. You give one hint at a time. Hints guide the student towards the solution without giving it away. Be encouraging and use age-appropriate language. Return only the hint text with no formatting or quotes.`

const solutionSystemPrompt = `You are a math tutor writing a worked solution for an elementary school student. Break the problem into clear numbered steps, explain the reasoning at each step, show all calculations, and conclude with the final answer and a check. Return only the solution text with no formatting or quotes.`

const feedbackSystemPrompt = `You are a math tutor giving brief, encouraging feedback to an elementary school student who just attempted a word problem. Keep it concise but insightful. If the answer is wrong, briefly point at the mistake without revealing the correct answer. Return only the feedback text with no formatting or quotes.`

// hintLevelLabels describes how each progressive hint should escalate.
var hintLevelLabels = map[int]string{
	1: "basic guidance",
	2: "problem-solving strategy",
	3: "detailed approach",
}

// buildGeneratePrompt produces the user message for problem generation.
// The caller is expected to have validated difficulty and operation.
func buildGeneratePrompt(difficulty Difficulty, operation Operation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Operation: %s\n", operation)
	b.WriteString("\nReturn the response in this JSON format only, with no markdown fences:\n")
	b.WriteString(`{
  "problem_text": "The complete word problem text",
  "correct_answer": number,
  "hints": ["first hint", "second hint", "third hint"]
}`)
	return b.String()
}

// buildHintPrompt produces the user message for one hint level (1 to 3).
func buildHintPrompt(problemText string, difficulty Difficulty, operation Operation, level int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Operation: %s\n", operation)
	fmt.Fprintf(&b, "Hint level: %d of %d (%s)\n", level, HintBatchSize, hintLevelLabels[level])
	b.WriteString("\nWrite the hint for this level. Help the student identify key information or the next step, but do not reveal the complete solution.")
	return b.String()
}

// buildSolutionPrompt produces the user message for the worked solution.
func buildSolutionPrompt(problemText string, difficulty Difficulty, operation Operation, correctAnswer float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Operation: %s\n", operation)
	fmt.Fprintf(&b, "Final answer: %s\n", formatAnswer(correctAnswer))
	b.WriteString("\nWrite the step-by-step solution. Each step should be a sentence or two, clearly numbered.")
	return b.String()
}

// buildFeedbackPrompt produces the user message for submission feedback.
func buildFeedbackPrompt(problemText string, correctAnswer, userAnswer float64, isCorrect bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Correct answer: %s\n", formatAnswer(correctAnswer))
	fmt.Fprintf(&b, "Student's answer: %s\n", formatAnswer(userAnswer))
	fmt.Fprintf(&b, "Is correct: %t\n", isCorrect)
	b.WriteString("\nWrite the feedback.")
	return b.String()
}

// formatAnswer renders a numeric answer without scientific notation or
// trailing zeros, so prompts read naturally.
func formatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
