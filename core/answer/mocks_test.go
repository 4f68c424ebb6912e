package answer

import (
	"context"

	"searchpage-api/core/domain"
)

// mockAnswerProvider is a mock implementation of the AnswerProvider interface
type mockAnswerProvider struct {
	generateFunc func(ctx context.Context, query string) (*domain.Completion, error)
	calls        int
}

func (m *mockAnswerProvider) Generate(ctx context.Context, query string) (*domain.Completion, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, query)
	}
	return &domain.Completion{}, nil
}

// mockResolver is a mock implementation of the CorrelationResolver interface
type mockResolver struct {
	queries map[string]string
}

func (m *mockResolver) Lookup(id string) string {
	if q, ok := m.queries[id]; ok {
		return q
	}
	return id
}
