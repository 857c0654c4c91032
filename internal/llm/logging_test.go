package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rahulv/mathquest/internal/store"
)

// captureEventRepo records appended events in memory.
type captureEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *captureEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *captureEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *captureEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func TestLogging_RecordsProviderNameAndModel(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 8}},
	)
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "hint")
	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "write a hint"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" {
		t.Errorf("Provider = %q, want the provider name %q", e.Provider, "gemini")
	}
	if e.Model != "mock" {
		t.Errorf("Model = %q, want %q", e.Model, "mock")
	}
	if e.Purpose != "hint" {
		t.Errorf("Purpose = %q, want %q", e.Purpose, "hint")
	}
	if e.InputTokens != 12 || e.OutputTokens != 8 {
		t.Errorf("tokens = %d/%d, want 12/8", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("expected success recorded")
	}
	if !strings.Contains(e.RequestBody, "write a hint") {
		t.Errorf("request body not captured: %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("response body not captured: %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "anthropic", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", e.Provider, "anthropic")
	}
	if e.Success {
		t.Error("expected failure recorded")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
}
