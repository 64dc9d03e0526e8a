package search

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// textResponse builds a single-block completion response.
func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
		Usage:   anthropic.TokenUsage{InputTokens: 100, OutputTokens: 20},
	}
}

// --- Store Mock ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListProviders(ctx context.Context) ([]model.ServiceProvider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceProvider), args.Error(1)
}

func (m *mockStore) ListProvidersByType(ctx context.Context, serviceType string) ([]model.ServiceProvider, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceProvider), args.Error(1)
}

func (m *mockStore) ListProvidersByLocation(ctx context.Context, location string) ([]model.ServiceProvider, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceProvider), args.Error(1)
}

func (m *mockStore) CreateProvider(ctx context.Context, provider model.ServiceProvider) (*model.ServiceProvider, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProvider), args.Error(1)
}

func (m *mockStore) CreateSearchQuery(ctx context.Context, query model.SearchQuery) (*model.SearchQuery, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchQuery), args.Error(1)
}

func (m *mockStore) RecentSearches(ctx context.Context) ([]model.SearchQuery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchQuery), args.Error(1)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Ensure interface compliance ---
var (
	_ anthropic.Client = (*mockAnthropicClient)(nil)
	_ store.Store      = (*mockStore)(nil)
)
