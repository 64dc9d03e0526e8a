package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialIntent_Complete_AllDefaults(t *testing.T) {
	intent := PartialIntent{}.Complete()

	assert.Equal(t, DefaultServiceType, intent.ServiceType)
	assert.Equal(t, DefaultLocation, intent.Location)
	assert.NotNil(t, intent.Requirements)
	assert.Empty(t, intent.Requirements)
	assert.Equal(t, UrgencyMedium, intent.Urgency)
}

func TestPartialIntent_Complete_PerFieldDefaulting(t *testing.T) {
	// A present serviceType survives a missing location.
	intent := PartialIntent{ServiceType: "dishwasher repair"}.Complete()

	assert.Equal(t, "dishwasher repair", intent.ServiceType)
	assert.Equal(t, DefaultLocation, intent.Location)
	assert.Equal(t, UrgencyMedium, intent.Urgency)
}

func TestPartialIntent_Complete_FullIntent(t *testing.T) {
	intent := PartialIntent{
		ServiceType:  "HVAC",
		Location:     "Oakland, CA",
		Requirements: []string{"licensed", "same-day service"},
		Urgency:      "emergency",
	}.Complete()

	assert.Equal(t, "HVAC", intent.ServiceType)
	assert.Equal(t, "Oakland, CA", intent.Location)
	assert.Equal(t, []string{"licensed", "same-day service"}, intent.Requirements)
	assert.Equal(t, UrgencyEmergency, intent.Urgency)
}

func TestPartialIntent_Complete_UnknownUrgency(t *testing.T) {
	intent := PartialIntent{Urgency: "asap"}.Complete()
	assert.Equal(t, UrgencyMedium, intent.Urgency)
}

func TestFallbackIntent(t *testing.T) {
	intent := FallbackIntent()

	assert.Equal(t, "appliance repair", intent.ServiceType)
	assert.Equal(t, "San Francisco, CA", intent.Location)
	assert.Empty(t, intent.Requirements)
	assert.NotNil(t, intent.Requirements)
	assert.Equal(t, UrgencyMedium, intent.Urgency)
}

func TestScoreMethodology_WeightsSumTo100(t *testing.T) {
	m := ScoreMethodology()
	assert.Equal(t, 100, m.CustomerReviews+m.ResponseTime+m.PricingTransparency+m.Credentials)
	assert.Equal(t, 40, m.CustomerReviews)
	assert.Equal(t, 25, m.ResponseTime)
	assert.Equal(t, 20, m.PricingTransparency)
	assert.Equal(t, 15, m.Credentials)
}
