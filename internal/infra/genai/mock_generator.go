package genai

import (
	"context"

	"doc-digest/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of domain.Generator using testify/mock.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (*domain.RawReply, error) {
	args := m.Called(ctx, prompt)
	reply, _ := args.Get(0).(*domain.RawReply)
	return reply, args.Error(1)
}

func (m *MockGenerator) Close() error {
	return nil
}
