package model

// Urgency is the extracted urgency level of a search query.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// AllUrgencies lists the valid urgency levels.
func AllUrgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}
}

// Intent defaults applied when the extractor returns a partial object.
const (
	DefaultServiceType = "general service"
	DefaultLocation    = "local area"
)

// PartialIntent is the tolerant decode target for the extractor's JSON
// response. Any subset of the fields may be present; defaulting is a separate
// step so parsing and policy stay independently testable.
type PartialIntent struct {
	ServiceType  string   `json:"serviceType"`
	Location     string   `json:"location"`
	Requirements []string `json:"requirements"`
	Urgency      string   `json:"urgency"`
}

// Intent is the structured interpretation of a free-text query. Produced per
// request by the extractor, consumed by the matcher and summarizer, and
// retained only as a serialized copy inside the search log.
type Intent struct {
	ServiceType  string   `json:"serviceType"`
	Location     string   `json:"location"`
	Requirements []string `json:"requirements"`
	Urgency      Urgency  `json:"urgency"`
}

// Complete fills every missing or falsy field of a partial intent with its
// default. Defaulting is per-field: a present serviceType survives a missing
// location. Unrecognized urgency values collapse to medium.
func (p PartialIntent) Complete() Intent {
	intent := Intent{
		ServiceType:  p.ServiceType,
		Location:     p.Location,
		Requirements: p.Requirements,
		Urgency:      Urgency(p.Urgency),
	}

	if intent.ServiceType == "" {
		intent.ServiceType = DefaultServiceType
	}
	if intent.Location == "" {
		intent.Location = DefaultLocation
	}
	if intent.Requirements == nil {
		intent.Requirements = []string{}
	}

	valid := false
	for _, u := range AllUrgencies() {
		if u == intent.Urgency {
			valid = true
			break
		}
	}
	if !valid {
		intent.Urgency = UrgencyMedium
	}

	return intent
}

// FallbackIntent is the hard-coded intent substituted when extraction fails
// outright (completion service unreachable, auth failure, rate limit).
func FallbackIntent() Intent {
	return Intent{
		ServiceType:  "appliance repair",
		Location:     "San Francisco, CA",
		Requirements: []string{},
		Urgency:      UrgencyMedium,
	}
}
