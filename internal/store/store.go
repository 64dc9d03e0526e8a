package store

import (
	"context"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
)

// Store defines data access for the provider catalog and the search log.
// No business logic lives here; matching policy belongs to internal/search.
type Store interface {
	// Providers
	ListProviders(ctx context.Context) ([]model.ServiceProvider, error)
	ListProvidersByType(ctx context.Context, serviceType string) ([]model.ServiceProvider, error)
	ListProvidersByLocation(ctx context.Context, location string) ([]model.ServiceProvider, error)
	CreateProvider(ctx context.Context, provider model.ServiceProvider) (*model.ServiceProvider, error)

	// Search log
	CreateSearchQuery(ctx context.Context, query model.SearchQuery) (*model.SearchQuery, error)
	RecentSearches(ctx context.Context) ([]model.SearchQuery, error)

	// Lifecycle
	Close() error
}
