package search

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/Tajudeen-boss/Neptune-task/internal/config"
	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

const extractSystemPrompt = `You are a search query processor for local services. Extract key information from natural language queries and return structured data in JSON format.

Respond with a valid JSON object with these fields:
- serviceType: The type of service being requested (e.g., "dishwasher repair", "plumbing", "HVAC")
- location: The location mentioned in the query
- requirements: Array of specific requirements mentioned (e.g., "same-day service", "emergency", "licensed")
- urgency: Level of urgency ("low", "medium", "high", "emergency")`

// Extractor turns a raw user query into a structured intent via a single
// completion call. A failed call is the caller's problem: the pipeline
// substitutes the fixed fallback intent, never a partial result.
type Extractor struct {
	client anthropic.Client
	cfg    config.AnthropicConfig
}

// NewExtractor creates an intent extractor.
func NewExtractor(client anthropic.Client, cfg config.AnthropicConfig) *Extractor {
	return &Extractor{client: client, cfg: cfg}
}

// Extract sends the raw query to the completion service and parses the JSON
// response with per-field defaulting. Returns an error only when the call
// itself fails; malformed output degrades to an all-defaults intent.
func (e *Extractor) Extract(ctx context.Context, rawQuery string) (model.Intent, error) {
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.cfg.Model,
		MaxTokens: e.cfg.MaxTokens,
		System:    extractSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: rawQuery},
		},
	})
	if err != nil {
		return model.Intent{}, eris.Wrap(err, "search: extract intent")
	}
	resp.Usage.LogCost(e.cfg.Model, "extract")

	return parseIntent(extractText(resp)), nil
}

// parseIntent tolerantly decodes model output into a partial intent and
// applies the defaulting policy. Unparseable text is treated as an empty
// object, so every field falls back to its default.
func parseIntent(text string) model.Intent {
	text = cleanJSON(text)

	var partial model.PartialIntent
	if err := json.Unmarshal([]byte(text), &partial); err != nil {
		partial = model.PartialIntent{}
	}

	return partial.Complete()
}
