package search

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

// maxResults caps the providers returned in a result; TotalCount keeps the
// pre-truncation count.
const maxResults = 20

// ErrEmptyQuery rejects a missing or whitespace-only search query.
var ErrEmptyQuery = eris.New("search: query must be a non-empty string")

// Pipeline sequences extract → match → summarize → log → assemble for one
// search request. Extraction and summarization never propagate errors; they
// recover through their one-shot fallbacks. Everything else surfaces.
type Pipeline struct {
	store      store.Store
	extractor  *Extractor
	matcher    *Matcher
	summarizer *Summarizer
}

// NewPipeline wires the pipeline onto a store and a completion client.
func NewPipeline(st store.Store, client anthropic.Client, cfg config.AnthropicConfig) *Pipeline {
	return &Pipeline{
		store:      st,
		extractor:  NewExtractor(client, cfg),
		matcher:    NewMatcher(st),
		summarizer: NewSummarizer(client, cfg),
	}
}

// Search runs the full pipeline for one raw query.
func (p *Pipeline) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	log := zap.L().With(zap.String("query", req.Query))

	intent, err := p.extractor.Extract(ctx, req.Query)
	if err != nil {
		log.Warn("search: intent extraction failed, using fallback intent", zap.Error(err))
		intent = model.FallbackIntent()
	}

	providers, err := p.matcher.Match(ctx, intent)
	if err != nil {
		return nil, eris.Wrap(err, "search: match providers")
	}

	summary := p.summarizer.Summarize(ctx, req.Query, providers, intent)

	if err := p.logQuery(ctx, req.Query, intent, len(providers)); err != nil {
		return nil, err
	}

	top := providers
	if len(top) > maxResults {
		top = top[:maxResults]
	}
	if top == nil {
		top = []model.ServiceProvider{}
	}

	log.Info("search: complete",
		zap.String("service_type", intent.ServiceType),
		zap.String("location", intent.Location),
		zap.Int("total_count", len(providers)),
		zap.Int("returned", len(top)),
	)

	return &model.SearchResult{
		AISummary:   summary,
		Providers:   top,
		TotalCount:  len(providers),
		Methodology: model.ScoreMethodology(),
	}, nil
}

// logQuery appends the search to the query log with the serialized intent and
// the pre-truncation result count.
func (p *Pipeline) logQuery(ctx context.Context, rawQuery string, intent model.Intent, resultCount int) error {
	encoded, err := json.Marshal(intent)
	if err != nil {
		return eris.Wrap(err, "search: serialize intent")
	}
	processed := string(encoded)

	serviceType := intent.ServiceType
	location := intent.Location

	_, err = p.store.CreateSearchQuery(ctx, model.SearchQuery{
		Query:          rawQuery,
		ProcessedQuery: &processed,
		ServiceType:    &serviceType,
		Location:       &location,
		ResultCount:    resultCount,
	})
	if err != nil {
		return eris.Wrap(err, "search: log query")
	}
	return nil
}
