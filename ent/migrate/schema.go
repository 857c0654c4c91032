// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HintsColumns holds the columns for the "hints" table.
	HintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "hint_order", Type: field.TypeInt},
	}
	// HintsTable holds the schema information for the "hints" table.
	HintsTable = &schema.Table{
		Name:       "hints",
		Columns:    HintsColumns,
		PrimaryKey: []*schema.Column{HintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hint_session_id_hint_order",
				Unique:  true,
				Columns: []*schema.Column{HintsColumns[1], HintsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ProblemSessionsColumns holds the columns for the "problem_sessions" table.
	ProblemSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "problem_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}},
		{Name: "problem_type", Type: field.TypeEnum, Enums: []string{"addition", "subtraction", "multiplication", "division"}},
		{Name: "solution_steps", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "hints_available", Type: field.TypeInt, Default: 3},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProblemSessionsTable holds the schema information for the "problem_sessions" table.
	ProblemSessionsTable = &schema.Table{
		Name:       "problem_sessions",
		Columns:    ProblemSessionsColumns,
		PrimaryKey: []*schema.Column{ProblemSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProblemSessionsColumns[8]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeFloat64},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "feedback_text", Type: field.TypeString},
		{Name: "points_earned", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HintsTable,
		LlmRequestEventsTable,
		ProblemSessionsTable,
		SubmissionsTable,
	}
)

func init() {
}
