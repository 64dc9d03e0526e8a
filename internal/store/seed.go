package store

import "github.com/Tajudeen-boss/Neptune-task/internal/model"

func ptr(s string) *string { return &s }

// seedProviders returns the fixed catalog loaded at process start.
// Identifiers are assigned by the store in slice order.
func seedProviders() []model.ServiceProvider {
	return []model.ServiceProvider{
		{
			Name:         "Bay Area Appliance Pros",
			Specialties:  "Dishwasher & Kitchen Appliance Specialists",
			Rating:       "4.8",
			ReviewCount:  247,
			ResponseTime: "Same-day service",
			Pricing:      "$95 diagnostic + parts",
			Experience:   "15+ years experience",
			Warranty:     "1-year warranty",
			Description:  "Professional team specializing in high-end dishwasher repairs. Known for quick diagnostics and transparent pricing. Most repairs completed same day.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 94,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0123"),
			Email:        ptr("info@bayareaappliancepros.com"),
			Website:      ptr("www.bayareaappliancepros.com"),
		},
		{
			Name:         "QuickFix Appliance Service",
			Specialties:  "Emergency & Scheduled Repairs",
			Rating:       "4.6",
			ReviewCount:  189,
			ResponseTime: "24/7 emergency service",
			Pricing:      "$85 service call",
			Experience:   "12+ years experience",
			Warranty:     "90-day warranty",
			Description:  "Fast response times and competitive pricing. Specializes in emergency repairs with 24/7 availability. Good for urgent dishwasher issues.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 89,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0234"),
			Email:        ptr("service@quickfixappliance.com"),
			Website:      ptr("www.quickfixappliance.com"),
		},
		{
			Name:         "SF Appliance Masters",
			Specialties:  "Premium Appliance Services",
			Rating:       "4.7",
			ReviewCount:  156,
			ResponseTime: "Next-day service",
			Pricing:      "$125 diagnostic fee",
			Experience:   "20+ years experience",
			Warranty:     "2-year warranty",
			Description:  "Premium service with factory certifications for major brands. Higher pricing but excellent warranty coverage and expert technicians.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 86,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0345"),
			Email:        ptr("contact@sfappliancemasters.com"),
			Website:      ptr("www.sfappliancemasters.com"),
		},
		{
			Name:         "Golden Gate Repair Co",
			Specialties:  "All Major Appliance Brands",
			Rating:       "4.5",
			ReviewCount:  203,
			ResponseTime: "Same-day service",
			Pricing:      "$90 diagnostic + labor",
			Experience:   "18+ years experience",
			Warranty:     "6-month warranty",
			Description:  "Local family business with extensive experience across all major appliance brands. Competitive pricing and reliable service.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 82,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0456"),
			Email:        ptr("info@goldengaterepair.com"),
			Website:      ptr("www.goldengaterepair.com"),
		},
		{
			Name:         "TechFix Appliance Solutions",
			Specialties:  "Modern Appliance Technology",
			Rating:       "4.4",
			ReviewCount:  134,
			ResponseTime: "2-day service",
			Pricing:      "$110 service fee",
			Experience:   "8+ years experience",
			Warranty:     "1-year warranty",
			Description:  "Specializes in newer smart appliances and technology integration. Great for modern dishwashers with advanced features.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 78,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0567"),
			Email:        ptr("support@techfixsolutions.com"),
			Website:      ptr("www.techfixsolutions.com"),
		},
		{
			Name:         "Reliable Home Services",
			Specialties:  "General Appliance Repair",
			Rating:       "4.3",
			ReviewCount:  298,
			ResponseTime: "Next-day service",
			Pricing:      "$75 service call",
			Experience:   "25+ years experience",
			Warranty:     "90-day warranty",
			Description:  "Long-established business with competitive rates. Good for basic repairs and maintenance. Large customer base and proven track record.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 75,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0678"),
			Email:        ptr("service@reliablehomeservices.com"),
			Website:      ptr("www.reliablehomeservices.com"),
		},
		{
			Name:         "Express Appliance Fix",
			Specialties:  "Fast Turnaround Repairs",
			Rating:       "4.2",
			ReviewCount:  167,
			ResponseTime: "Same-day service",
			Pricing:      "$95 diagnostic fee",
			Experience:   "10+ years experience",
			Warranty:     "60-day warranty",
			Description:  "Focus on quick repairs and fast service. Good for simple fixes but may not handle complex issues as well as specialized providers.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 72,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0789"),
			Email:        ptr("info@expressappliancefix.com"),
			Website:      ptr("www.expressappliancefix.com"),
		},
		{
			Name:         "Premium Appliance Care",
			Specialties:  "High-End Appliance Service",
			Rating:       "4.6",
			ReviewCount:  89,
			ResponseTime: "Scheduled appointments",
			Pricing:      "$150 service call",
			Experience:   "15+ years experience",
			Warranty:     "18-month warranty",
			Description:  "Specializes in luxury and high-end appliances. Premium pricing but excellent service quality and extended warranties.",
			IsLicensed:   true,
			IsInsured:    true,
			NeptuneScore: 85,
			Location:     "San Francisco, CA",
			Phone:        ptr("(415) 555-0890"),
			Email:        ptr("service@premiumappliancecare.com"),
			Website:      ptr("www.premiumappliancecare.com"),
		},
	}
}
