// ABOUTME: Generated-answer handler for the Huma API
// ABOUTME: Resolves the asynchronous answer slot for a previously dispatched search

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpage-api/api/dto/mappers"
	"searchpage-api/api/dto/requests"
	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/history"
)

// AnswerResolver interface defines the methods needed from the answer poller
type AnswerResolver interface {
	Resolve(ctx context.Context, correlationID string) domain.GeneratedAnswer
}

// AnswerHandler handles generated-answer HTTP requests
type AnswerHandler struct {
	resolver AnswerResolver
	session  *history.Session
}

// NewAnswerHandler creates a new answer handler. session may be nil.
func NewAnswerHandler(resolver AnswerResolver, session *history.Session) *AnswerHandler {
	return &AnswerHandler{
		resolver: resolver,
		session:  session,
	}
}

// RegisterRoutes registers the answer routes
func (h *AnswerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveAnswer",
		Method:      http.MethodPost,
		Path:        "/answer",
		Summary:     "Resolve the generated answer for a search",
		Description: "Polls the generative-text provider within bounded attempts and an overall timeout. Always returns a terminal answer, never an error: exhaustion and timeout yield fixed fallback text with failed status",
		Tags:        []string{"Search"},
	}, h.ResolveAnswer)
}

// ResolveAnswerInput defines the input for the ResolveAnswer operation
type ResolveAnswerInput struct {
	Body requests.AnswerRequest `json:"body"`
}

// ResolveAnswerOutput defines the output for the ResolveAnswer operation
type ResolveAnswerOutput struct {
	Body responses.AnswerResponse
}

// ResolveAnswer handles the POST /answer endpoint
func (h *AnswerHandler) ResolveAnswer(ctx context.Context, input *ResolveAnswerInput) (*ResolveAnswerOutput, error) {
	answer := h.resolver.Resolve(ctx, input.Body.SearchID)

	if h.session != nil {
		h.session.AttachAnswer(input.Body.SearchID, answer)
	}

	return &ResolveAnswerOutput{Body: mappers.ToAnswerResponse(answer)}, nil
}
