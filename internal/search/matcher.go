package search

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
)

// fallbackServiceType is the broader category substituted by the single
// degradation rule. No other service-type aliasing exists.
const fallbackServiceType = "appliance repair"

// Matcher filters the provider catalog against an extracted intent.
type Matcher struct {
	store store.Store
}

// NewMatcher creates a matcher over the given store.
func NewMatcher(st store.Store) *Matcher {
	return &Matcher{store: st}
}

// Match returns providers for the intent, sorted by NeptuneScore descending.
// Type matching comes first; the location intersection is skipped when the
// location is the "local area" default. An empty result is a valid outcome,
// except that dishwasher queries broaden to the appliance-repair category.
func (m *Matcher) Match(ctx context.Context, intent model.Intent) ([]model.ServiceProvider, error) {
	candidates, err := m.store.ListProvidersByType(ctx, strings.ToLower(intent.ServiceType))
	if err != nil {
		return nil, eris.Wrap(err, "search: list providers by type")
	}

	if intent.Location != "" && intent.Location != model.DefaultLocation {
		byLocation, err := m.store.ListProvidersByLocation(ctx, intent.Location)
		if err != nil {
			return nil, eris.Wrap(err, "search: list providers by location")
		}
		candidates = intersectByID(candidates, byLocation)
	}

	if len(candidates) == 0 && strings.Contains(strings.ToLower(intent.ServiceType), "dishwasher") {
		zap.L().Debug("match: broadening dishwasher query to appliance repair",
			zap.String("service_type", intent.ServiceType),
		)
		candidates, err = m.store.ListProvidersByType(ctx, fallbackServiceType)
		if err != nil {
			return nil, eris.Wrap(err, "search: list fallback providers")
		}
	}

	return candidates, nil
}

// intersectByID keeps the elements of candidates whose ID also appears in
// others, preserving candidates' order.
func intersectByID(candidates, others []model.ServiceProvider) []model.ServiceProvider {
	ids := make(map[int]struct{}, len(others))
	for _, p := range others {
		ids[p.ID] = struct{}{}
	}

	var out []model.ServiceProvider
	for _, p := range candidates {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
