package problems

// Difficulty is the requested difficulty of a generated problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a generate request omits the field.
const DefaultDifficulty = DifficultyMedium

// Valid reports whether d is one of the three recognized difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Points returns the point value a session of this difficulty is worth.
// Fixed at session creation and used verbatim for scoring.
func (d Difficulty) Points() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 30
	default:
		return 20
	}
}

// Operation is the arithmetic focus of a generated problem.
type Operation string

const (
	OperationAddition       Operation = "addition"
	OperationSubtraction    Operation = "subtraction"
	OperationMultiplication Operation = "multiplication"
	OperationDivision       Operation = "division"
)

// DefaultOperation is used when a generate request omits the field.
const DefaultOperation = OperationAddition

// Valid reports whether op is one of the four recognized operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationAddition, OperationSubtraction, OperationMultiplication, OperationDivision:
		return true
	}
	return false
}

// HintBatchSize is the fixed number of progressive hints per session.
const HintBatchSize = 3

// GeneratedProblem is the structured object extracted from the model's
// response to a problem-generation prompt.
type GeneratedProblem struct {
	ProblemText   string   `json:"problem_text"`
	CorrectAnswer float64  `json:"correct_answer"`
	Hints         []string `json:"hints,omitempty"`
}
