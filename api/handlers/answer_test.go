package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/history"
)

// mockAnswerResolver is a mock implementation of the answer poller
type mockAnswerResolver struct {
	resolveFunc func(ctx context.Context, correlationID string) domain.GeneratedAnswer
}

func (m *mockAnswerResolver) Resolve(ctx context.Context, correlationID string) domain.GeneratedAnswer {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, correlationID)
	}
	return domain.GeneratedAnswer{Status: domain.AnswerReady, Text: "answer"}
}

func TestAnswerHandler_ResolveAnswer_Ready(t *testing.T) {
	resolver := &mockAnswerResolver{
		resolveFunc: func(ctx context.Context, correlationID string) domain.GeneratedAnswer {
			if correlationID != "abc-123" {
				t.Errorf("Expected correlation id abc-123, got %q", correlationID)
			}
			return domain.GeneratedAnswer{Status: domain.AnswerReady, Text: "Coffee is a brewed drink."}
		},
	}

	handler := NewAnswerHandler(resolver, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/answer", map[string]interface{}{
		"search_id": "abc-123",
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body responses.AnswerResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "ready" {
		t.Errorf("Expected ready status, got %q", body.Status)
	}
	if body.Text != "Coffee is a brewed drink." {
		t.Errorf("Unexpected answer text: %q", body.Text)
	}
}

func TestAnswerHandler_ResolveAnswer_FailureStillReturns200(t *testing.T) {
	resolver := &mockAnswerResolver{
		resolveFunc: func(ctx context.Context, correlationID string) domain.GeneratedAnswer {
			return domain.GeneratedAnswer{
				Status: domain.AnswerFailed,
				Text:   "I couldn't generate a response for this query at this time. Please try again later.",
			}
		},
	}

	handler := NewAnswerHandler(resolver, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/answer", map[string]interface{}{
		"search_id": "abc-123",
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200 even on failed resolution, got %d", resp.Code)
	}

	var body responses.AnswerResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "failed" {
		t.Errorf("Expected failed status, got %q", body.Status)
	}
	if body.Text == "" {
		t.Error("Expected fallback text on failed resolution")
	}
}

func TestAnswerHandler_MissingSearchIDRejected(t *testing.T) {
	handler := NewAnswerHandler(&mockAnswerResolver{}, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/answer", map[string]interface{}{})
	if resp.Code != 422 {
		t.Errorf("Expected status 422 for missing search_id, got %d", resp.Code)
	}
}

func TestAnswerHandler_AttachesAnswerToSession(t *testing.T) {
	session := history.NewSession()
	session.Append(domain.ResultBundle{SearchID: "abc-123", Query: domain.Query{Text: "coffee"}, Answer: domain.PendingAnswer()})

	handler := NewAnswerHandler(&mockAnswerResolver{}, session)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/answer", map[string]interface{}{
		"search_id": "abc-123",
	})
	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	items := session.Items()
	if items[0].Answer.Status != domain.AnswerReady {
		t.Errorf("Expected the session entry to carry the resolved answer, got %s", items[0].Answer.Status)
	}
}
