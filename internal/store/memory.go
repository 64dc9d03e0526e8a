package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
)

// recentSearchWindow caps the read view of the search log. The log itself is
// append-only and unbounded; only the view is limited.
const recentSearchWindow = 10

// MemStore is the in-memory Store implementation. Both collections keep
// insertion order; identifier assignment is a monotonic counter per entity,
// incremented under the same lock that guards the collection.
type MemStore struct {
	mu sync.RWMutex

	providers      []model.ServiceProvider
	searches       []model.SearchQuery
	nextProviderID int
	nextSearchID   int
}

// NewMemStore creates a store pre-populated with the seed catalog.
func NewMemStore() *MemStore {
	s := &MemStore{
		nextProviderID: 1,
		nextSearchID:   1,
	}
	for _, p := range seedProviders() {
		p.ID = s.nextProviderID
		s.nextProviderID++
		s.providers = append(s.providers, p)
	}
	return s
}

// ListProviders returns all providers in insertion order.
func (s *MemStore) ListProviders(ctx context.Context) ([]model.ServiceProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ServiceProvider, len(s.providers))
	copy(out, s.providers)
	return out, nil
}

// ListProvidersByType returns providers whose name, specialties or description
// contains at least one whitespace-delimited token of serviceType, case-folded.
// Results are sorted by NeptuneScore descending; ties keep insertion order.
func (s *MemStore) ListProvidersByType(ctx context.Context, serviceType string) ([]model.ServiceProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keywords := strings.Fields(strings.ToLower(serviceType))

	var out []model.ServiceProvider
	for _, p := range s.providers {
		searchText := strings.ToLower(p.Name + " " + p.Specialties + " " + p.Description)
		for _, kw := range keywords {
			if strings.Contains(searchText, kw) {
				out = append(out, p)
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NeptuneScore > out[j].NeptuneScore
	})
	return out, nil
}

// ListProvidersByLocation returns providers whose location contains the given
// text as a case-folded substring. The location is not tokenized.
func (s *MemStore) ListProvidersByLocation(ctx context.Context, location string) ([]model.ServiceProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(location)

	var out []model.ServiceProvider
	for _, p := range s.providers {
		if strings.Contains(strings.ToLower(p.Location), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateProvider assigns the next sequential identifier and stores the record.
// No uniqueness check beyond the identifier.
func (s *MemStore) CreateProvider(ctx context.Context, provider model.ServiceProvider) (*model.ServiceProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider.ID = s.nextProviderID
	s.nextProviderID++
	s.providers = append(s.providers, provider)

	stored := provider
	return &stored, nil
}

// CreateSearchQuery appends a search log record with the next sequential
// identifier.
func (s *MemStore) CreateSearchQuery(ctx context.Context, query model.SearchQuery) (*model.SearchQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query.ID = s.nextSearchID
	s.nextSearchID++
	s.searches = append(s.searches, query)

	stored := query
	return &stored, nil
}

// RecentSearches returns the last 10 logged queries in insertion order,
// oldest of the window first.
func (s *MemStore) RecentSearches(ctx context.Context) ([]model.SearchQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if len(s.searches) > recentSearchWindow {
		start = len(s.searches) - recentSearchWindow
	}

	out := make([]model.SearchQuery, len(s.searches)-start)
	copy(out, s.searches[start:])
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error {
	return nil
}

var _ Store = (*MemStore)(nil)
