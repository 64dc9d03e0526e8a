package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/search"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

// unavailableClient simulates the completion service being down, which the
// pipeline absorbs through its fallback paths.
type unavailableClient struct{}

func (unavailableClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	return nil, eris.New("completion service unavailable")
}

var _ anthropic.Client = unavailableClient{}

func newTestServer(t *testing.T) (*Server, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	aiCfg := config.AnthropicConfig{Model: "claude-haiku-4-5-20251001", MaxTokens: 512}
	pipeline := search.NewPipeline(st, unavailableClient{}, aiCfg)
	serverCfg := &config.ServerConfig{
		Port:        0,
		CORSOrigins: []string{"*"},
		RateLimit:   100,
		RateBurst:   100,
		TimeoutSecs: 5,
	}
	return NewServer(pipeline, st, serverCfg, zap.NewNop()), st
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleSearch_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/search", model.SearchRequest{
		Query: "Who repairs dishwashers in San Francisco?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 8, result.TotalCount)
	assert.Len(t, result.Providers, 8)
	assert.LessOrEqual(t, len(result.Providers), 20)
	assert.Equal(t, model.ScoreMethodology(), result.Methodology)
	assert.NotEmpty(t, result.AISummary)
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, body := range []any{
		model.SearchRequest{Query: ""},
		model.SearchRequest{Query: "   "},
		map[string]any{},
	} {
		rec := doRequest(t, srv, http.MethodPost, "/api/search", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	}
}

func TestHandleSearch_NonStringQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/search", map[string]any{"query": 42})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProviders_Idempotent(t *testing.T) {
	srv, _ := newTestServer(t)

	first := doRequest(t, srv, http.MethodGet, "/api/providers", nil)
	require.Equal(t, http.StatusOK, first.Code)
	second := doRequest(t, srv, http.MethodGet, "/api/providers", nil)
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var providers []model.ServiceProvider
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &providers))
	assert.Len(t, providers, 8)
}

func TestHandleRecentSearches_EmptyArrayNotNull(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/recent-searches", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleRecentSearches_ReflectsSearches(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/search", model.SearchRequest{Query: "fix my dishwasher"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/recent-searches", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var searches []model.SearchQuery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searches))
	require.Len(t, searches, 1)
	assert.Equal(t, "fix my dishwasher", searches[0].Query)
	assert.Equal(t, 8, searches[0].ResultCount)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	st := store.NewMemStore()
	aiCfg := config.AnthropicConfig{Model: "claude-haiku-4-5-20251001", MaxTokens: 512}
	pipeline := search.NewPipeline(st, unavailableClient{}, aiCfg)
	srv := NewServer(pipeline, st, &config.ServerConfig{
		CORSOrigins: []string{"*"},
		RateLimit:   1,
		RateBurst:   1,
		TimeoutSecs: 5,
	}, zap.NewNop())

	first := doRequest(t, srv, http.MethodPost, "/api/search", model.SearchRequest{Query: "dishwasher"})
	assert.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, srv, http.MethodPost, "/api/search", model.SearchRequest{Query: "dishwasher"})
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Read endpoints are not rate limited.
	rec := doRequest(t, srv, http.MethodGet, "/api/providers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
