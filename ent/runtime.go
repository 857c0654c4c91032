// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rahulv/mathquest/ent/hint"
	"github.com/rahulv/mathquest/ent/llmrequestevent"
	"github.com/rahulv/mathquest/ent/problemsession"
	"github.com/rahulv/mathquest/ent/schema"
	"github.com/rahulv/mathquest/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	hintFields := schema.Hint{}.Fields()
	_ = hintFields
	// hintDescSessionID is the schema descriptor for session_id field.
	hintDescSessionID := hintFields[0].Descriptor()
	// hint.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hint.SessionIDValidator = hintDescSessionID.Validators[0].(func(string) error)
	// hintDescHintText is the schema descriptor for hint_text field.
	hintDescHintText := hintFields[1].Descriptor()
	// hint.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hint.HintTextValidator = hintDescHintText.Validators[0].(func(string) error)
	// hintDescHintOrder is the schema descriptor for hint_order field.
	hintDescHintOrder := hintFields[2].Descriptor()
	// hint.HintOrderValidator is a validator for the "hint_order" field. It is called by the builders before save.
	hint.HintOrderValidator = hintDescHintOrder.Validators[0].(func(int) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	problemsessionFields := schema.ProblemSession{}.Fields()
	_ = problemsessionFields
	// problemsessionDescProblemText is the schema descriptor for problem_text field.
	problemsessionDescProblemText := problemsessionFields[1].Descriptor()
	// problemsession.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	problemsession.ProblemTextValidator = problemsessionDescProblemText.Validators[0].(func(string) error)
	// problemsessionDescHintsAvailable is the schema descriptor for hints_available field.
	problemsessionDescHintsAvailable := problemsessionFields[7].Descriptor()
	// problemsession.DefaultHintsAvailable holds the default value on creation for the hints_available field.
	problemsession.DefaultHintsAvailable = problemsessionDescHintsAvailable.Default.(int)
	// problemsessionDescCreatedAt is the schema descriptor for created_at field.
	problemsessionDescCreatedAt := problemsessionFields[8].Descriptor()
	// problemsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemsession.DefaultCreatedAt = problemsessionDescCreatedAt.Default.(func() time.Time)
	// problemsessionDescID is the schema descriptor for id field.
	problemsessionDescID := problemsessionFields[0].Descriptor()
	// problemsession.DefaultID holds the default value on creation for the id field.
	problemsession.DefaultID = problemsessionDescID.Default.(func() string)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescSessionID is the schema descriptor for session_id field.
	submissionDescSessionID := submissionFields[0].Descriptor()
	// submission.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submission.SessionIDValidator = submissionDescSessionID.Validators[0].(func(string) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[5].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
}
