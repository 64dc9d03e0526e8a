package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

const summarySystemPrompt = `You are an AI assistant that summarizes search results for local services.
Provide a concise, helpful summary that includes:
- Number of providers found
- Average pricing range
- Common response times
- Key recommendations

Keep it under 3 sentences and focus on the most relevant information for the user.`

// genericSummary covers the case where the completion succeeds but returns
// empty content.
const genericSummary = "Search results found based on your query."

// maxSummaryProviders caps how many provider digests go into the prompt.
const maxSummaryProviders = 5

// Summarizer produces the prose summary of a result set. It never returns an
// error: every failure path resolves to a deterministic templated sentence.
type Summarizer struct {
	client anthropic.Client
	cfg    config.AnthropicConfig
}

// NewSummarizer creates a result summarizer.
func NewSummarizer(client anthropic.Client, cfg config.AnthropicConfig) *Summarizer {
	return &Summarizer{client: client, cfg: cfg}
}

// Summarize returns a short prose summary of the matched providers. The
// empty-result branch is fully deterministic and makes no completion call.
func (s *Summarizer) Summarize(ctx context.Context, rawQuery string, providers []model.ServiceProvider, intent model.Intent) string {
	if len(providers) == 0 {
		return fmt.Sprintf(
			`We couldn't find any exact matches for %q in %s. You might try a nearby city or broader category like "appliance repair".`,
			intent.ServiceType, intent.Location,
		)
	}

	resp, err := s.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
		System:    summarySystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildSummaryPrompt(rawQuery, providers, intent)},
		},
	})
	if err != nil {
		zap.L().Warn("summarize: completion failed, using fallback text", zap.Error(err))
		return fmt.Sprintf(
			"Found %d service providers matching your search criteria with various pricing and availability options.",
			len(providers),
		)
	}
	resp.Usage.LogCost(s.cfg.Model, "summarize")

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return genericSummary
	}
	return text
}

// buildSummaryPrompt embeds the raw query, intent fields, and up to five
// provider digests into the user message.
func buildSummaryPrompt(rawQuery string, providers []model.ServiceProvider, intent model.Intent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %q\n", rawQuery)
	fmt.Fprintf(&b, "Service Type: %s\n", intent.ServiceType)
	fmt.Fprintf(&b, "Location: %s\n", intent.Location)
	fmt.Fprintf(&b, "Found %d providers\n\n", len(providers))

	b.WriteString("Provider details:\n")
	for i, p := range providers {
		if i >= maxSummaryProviders {
			break
		}
		fmt.Fprintf(&b, "- %s: %s/5 stars, %s, %s\n", p.Name, p.Rating, p.Pricing, p.ResponseTime)
	}
	return b.String()
}
