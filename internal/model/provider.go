package model

// ServiceProvider is an immutable catalog record for a local service business.
// Records are created once at process start from the seed catalog and never
// mutated or deleted.
type ServiceProvider struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Specialties  string  `json:"specialties"`
	Rating       string  `json:"rating"` // decimal string, 0.0-5.0
	ReviewCount  int     `json:"reviewCount"`
	ResponseTime string  `json:"responseTime"`
	Pricing      string  `json:"pricing"`
	Experience   string  `json:"experience"`
	Warranty     string  `json:"warranty"`
	Description  string  `json:"description"`
	IsLicensed   bool    `json:"isLicensed"`
	IsInsured    bool    `json:"isInsured"`
	NeptuneScore int     `json:"neptuneScore"` // precomputed 0-100, not derived at query time
	Location     string  `json:"location"`     // "City, State" convention
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Website      *string `json:"website"`
}

// Methodology is the fixed weighted-score breakdown shown to users as the
// Neptune Score rationale. The weights are a static label: they always sum to
// 100 and are independent of any provider's stored NeptuneScore.
type Methodology struct {
	CustomerReviews     int `json:"customerReviews"`
	ResponseTime        int `json:"responseTime"`
	PricingTransparency int `json:"pricingTransparency"`
	Credentials         int `json:"credentials"`
}

// ScoreMethodology returns the constant 40/25/20/15 weight breakdown.
func ScoreMethodology() Methodology {
	return Methodology{
		CustomerReviews:     40,
		ResponseTime:        25,
		PricingTransparency: 20,
		Credentials:         15,
	}
}

// SearchResult is the response payload for a search request.
type SearchResult struct {
	AISummary   string            `json:"aiSummary"`
	Providers   []ServiceProvider `json:"providers"`  // truncated to the top 20
	TotalCount  int               `json:"totalCount"` // count before truncation
	Methodology Methodology       `json:"methodology"`
}
