package handlers

import (
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/history"
)

func sessionWith(ids ...string) *history.Session {
	session := history.NewSession()
	for _, id := range ids {
		session.Append(domain.ResultBundle{
			SearchID: id,
			Query:    domain.Query{Text: "query " + id},
			Answer:   domain.PendingAnswer(),
		})
	}
	return session
}

func TestSessionHandler_ListSession(t *testing.T) {
	handler := NewSessionHandler(sessionWith("a", "b"))
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/session")
	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body responses.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(body.Entries))
	}
	if body.Entries[0].SearchID != "a" {
		t.Errorf("Expected submission order, got %q first", body.Entries[0].SearchID)
	}
	if !body.Entries[0].Expanded {
		t.Error("Expected entries to start expanded")
	}
}

func TestSessionHandler_RemoveEntry(t *testing.T) {
	session := sessionWith("a", "b")
	handler := NewSessionHandler(session)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Delete("/session/a")
	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if session.Len() != 1 {
		t.Errorf("Expected 1 remaining entry, got %d", session.Len())
	}
}

func TestSessionHandler_RemoveUnknownEntry(t *testing.T) {
	handler := NewSessionHandler(sessionWith("a"))
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Delete("/session/missing")
	if resp.Code != 404 {
		t.Errorf("Expected status 404 for unknown entry, got %d", resp.Code)
	}
}

func TestSessionHandler_ToggleEntry(t *testing.T) {
	handler := NewSessionHandler(sessionWith("a"))
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/session/a/toggle", map[string]interface{}{})
	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body struct {
		Expanded bool `json:"expanded"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Expanded {
		t.Error("Expected the first toggle to collapse the entry")
	}
}

func TestSessionHandler_ToggleUnknownEntry(t *testing.T) {
	handler := NewSessionHandler(sessionWith("a"))
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/session/missing/toggle", map[string]interface{}{})
	if resp.Code != 404 {
		t.Errorf("Expected status 404 for unknown entry, got %d", resp.Code)
	}
}
