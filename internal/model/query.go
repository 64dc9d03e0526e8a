package model

// SearchRequest is the inbound body for the search endpoint. IncludePricing
// and NearMe are accepted for UI compatibility but do not alter matching.
type SearchRequest struct {
	Query          string `json:"query"`
	IncludePricing *bool  `json:"includePricing,omitempty"`
	NearMe         *bool  `json:"nearMe,omitempty"`
}

// SearchQuery is an append-only log record of a search pipeline invocation.
// Records are never updated; the read view is capped to the last 10 entries.
type SearchQuery struct {
	ID             int     `json:"id"`
	Query          string  `json:"query"`
	ProcessedQuery *string `json:"processedQuery"` // JSON-encoded Intent
	ServiceType    *string `json:"serviceType"`
	Location       *string `json:"location"`
	ResultCount    int     `json:"resultCount"`
}
