// ABOUTME: Session-history handlers for the Huma API
// ABOUTME: Lists, removes, and collapses the current session's result stack

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpage-api/api/dto/mappers"
	"searchpage-api/api/dto/responses"
	"searchpage-api/core/history"
)

// SessionHandler handles session-history HTTP requests
type SessionHandler struct {
	session *history.Session
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session *history.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

// RegisterRoutes registers the session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listSession",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "List the session history",
		Description: "Returns this session's submitted queries in submission order with their answer status and display state",
		Tags:        []string{"Session"},
	}, h.ListSession)

	huma.Register(api, huma.Operation{
		OperationID: "removeSessionEntry",
		Method:      http.MethodDelete,
		Path:        "/session/{searchID}",
		Summary:     "Remove one history entry",
		Tags:        []string{"Session"},
	}, h.RemoveEntry)

	huma.Register(api, huma.Operation{
		OperationID: "toggleSessionEntry",
		Method:      http.MethodPost,
		Path:        "/session/{searchID}/toggle",
		Summary:     "Collapse or expand one history entry",
		Tags:        []string{"Session"},
	}, h.ToggleEntry)
}

// ListSessionOutput defines the output for the ListSession operation
type ListSessionOutput struct {
	Body responses.SessionResponse
}

// ListSession handles the GET /session endpoint
func (h *SessionHandler) ListSession(ctx context.Context, input *struct{}) (*ListSessionOutput, error) {
	return &ListSessionOutput{Body: *mappers.ToSessionResponse(h.session.Items())}, nil
}

// SessionEntryInput identifies one history entry by its search id
type SessionEntryInput struct {
	SearchID string `path:"searchID" doc:"Correlation identifier of the entry"`
}

// RemoveEntryOutput defines the output for the RemoveEntry operation
type RemoveEntryOutput struct {
	Body struct {
		Removed bool `json:"removed"`
	}
}

// RemoveEntry handles the DELETE /session/{searchID} endpoint
func (h *SessionHandler) RemoveEntry(ctx context.Context, input *SessionEntryInput) (*RemoveEntryOutput, error) {
	if !h.session.Remove(input.SearchID) {
		return nil, huma.Error404NotFound("session entry not found")
	}

	out := &RemoveEntryOutput{}
	out.Body.Removed = true
	return out, nil
}

// ToggleEntryOutput defines the output for the ToggleEntry operation
type ToggleEntryOutput struct {
	Body struct {
		Expanded bool `json:"expanded"`
	}
}

// ToggleEntry handles the POST /session/{searchID}/toggle endpoint
func (h *SessionHandler) ToggleEntry(ctx context.Context, input *SessionEntryInput) (*ToggleEntryOutput, error) {
	expanded, ok := h.session.Toggle(input.SearchID)
	if !ok {
		return nil, huma.Error404NotFound("session entry not found")
	}

	out := &ToggleEntryOutput{}
	out.Body.Expanded = expanded
	return out, nil
}
