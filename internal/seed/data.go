package seed

import (
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/category"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
)

// Categories returns the reference taxonomy.
func Categories() []category.Category {
	return []category.Category{
		{
			Name:          "food",
			DisplayName:   "Food Assistance",
			Subcategories: []string{"groceries", "meals", "nutrition assistance", "food pantry"},
			Keywords:      []string{"hungry", "food", "eat", "meal", "groceries", "pantry", "SNAP", "EBT", "WIC"},
		},
		{
			Name:          "housing",
			DisplayName:   "Housing & Shelter",
			Subcategories: []string{"emergency shelter", "transitional housing", "rental assistance", "housing programs"},
			Keywords:      []string{"homeless", "shelter", "housing", "rent", "apartment", "living", "sleep", "eviction"},
		},
		{
			Name:          "healthcare",
			DisplayName:   "Healthcare Services",
			Subcategories: []string{"medical", "dental", "mental health", "prescriptions"},
			Keywords:      []string{"sick", "doctor", "medical", "health", "medicine", "prescription", "therapy", "counseling", "dental"},
		},
		{
			Name:          "employment",
			DisplayName:   "Employment Resources",
			Subcategories: []string{"job training", "job search", "resume help", "career counseling"},
			Keywords:      []string{"job", "work", "employment", "career", "resume", "hiring", "training", "unemployment"},
		},
	}
}

func week(opens, closes [7]string) []resource.Hours {
	in := make([]resource.IncomingHours, 0, 7)
	for d := 0; d < 7; d++ {
		in = append(in, resource.IncomingHours{Day: d, Open: opens[d], Close: closes[d]})
	}
	return resource.NormalizeHours(in)
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Resources returns the verified sample resources. Hours are indexed
// Sunday first.
func Resources() []*resource.Resource {
	return []*resource.Resource{
		{
			Name:          "Mission Food Bank",
			Category:      resource.CategoryFood,
			Subcategories: []string{"groceries", "meals"},
			Description:   "Provides groceries and prepared meals to individuals and families in need.",
			Address:       "123 Mission St, San Francisco, CA 94103",
			Location:      resource.NewPoint(-122.419416, 37.77542),
			Contact: resource.Contact{
				Phone:   "415-555-0123",
				Email:   "info@missionfoodbank.org",
				Website: "https://missionfoodbank.org",
			},
			Hours: week(
				[7]string{"", "9:00", "9:00", "9:00", "9:00", "9:00", "10:00"},
				[7]string{"", "17:00", "17:00", "17:00", "17:00", "17:00", "14:00"},
			),
			Eligibility:        "Open to all San Francisco residents",
			Requirements:       []string{"ID", "Proof of address"},
			Languages:          []string{"English", "Spanish", "Chinese"},
			Accessibility:      []string{"wheelchair", "transit"},
			Services:           []string{"groceries", "prepared meals"},
			Capacity:           "Serves up to 200 families daily",
			VerificationStatus: resource.StatusVerified,
			LastUpdated:        day("2025-01-15"),
		},
		{
			Name:          "Sunset Community Shelter",
			Category:      resource.CategoryHousing,
			Subcategories: []string{"emergency shelter"},
			Description:   "Emergency overnight shelter with basic necessities and support services.",
			Address:       "456 Sunset Blvd, San Francisco, CA 94122",
			Location:      resource.NewPoint(-122.494283, 37.750369),
			Contact: resource.Contact{
				Phone:   "415-555-0456",
				Email:   "help@sunsetcommunityshelter.org",
				Website: "https://sunsetcommunityshelter.org",
			},
			Hours: week(
				[7]string{"18:00", "18:00", "18:00", "18:00", "18:00", "18:00", "18:00"},
				[7]string{"9:00", "9:00", "9:00", "9:00", "9:00", "9:00", "9:00"},
			),
			Eligibility:        "Priority to families with children and seniors",
			Requirements:       []string{},
			Languages:          []string{"English", "Spanish"},
			Accessibility:      []string{"transit"},
			Services:           []string{"overnight beds", "showers", "case management"},
			Capacity:           "50 beds available nightly",
			VerificationStatus: resource.StatusVerified,
			LastUpdated:        day("2025-02-10"),
		},
		{
			Name:          "Tenderloin Health Clinic",
			Category:      resource.CategoryHealthcare,
			Subcategories: []string{"medical", "mental health"},
			Description:   "Free and low-cost healthcare services for underserved populations.",
			Address:       "789 Ellis St, San Francisco, CA 94109",
			Location:      resource.NewPoint(-122.419345, 37.78414),
			Contact: resource.Contact{
				Phone:   "415-555-0789",
				Email:   "appointments@tenderloinhealth.org",
				Website: "https://tenderloinhealth.org",
			},
			Hours: week(
				[7]string{"", "8:00", "8:00", "8:00", "8:00", "8:00", "9:00"},
				[7]string{"", "18:00", "18:00", "18:00", "18:00", "18:00", "13:00"},
			),
			Eligibility:        "Uninsured and low-income individuals",
			Requirements:       []string{"ID", "Proof of income (if available)"},
			Languages:          []string{"English", "Spanish", "Cantonese", "Russian"},
			Accessibility:      []string{"wheelchair", "transit"},
			Services:           []string{"primary care", "mental health counseling"},
			Capacity:           "Can see approximately 100 patients daily",
			VerificationStatus: resource.StatusVerified,
			LastUpdated:        day("2025-03-01"),
		},
		{
			Name:          "Bayview Employment Center",
			Category:      resource.CategoryEmployment,
			Subcategories: []string{"job training", "resume help"},
			Description:   "Employment assistance, job training, and career development services.",
			Address:       "1010 Innes Ave, San Francisco, CA 94124",
			Location:      resource.NewPoint(-122.376828, 37.731158),
			Contact: resource.Contact{
				Phone:   "415-555-1010",
				Email:   "careers@bayviewemployment.org",
				Website: "https://bayviewemployment.org",
			},
			Hours: week(
				[7]string{"", "9:00", "9:00", "9:00", "9:00", "9:00", ""},
				[7]string{"", "17:00", "17:00", "19:00", "17:00", "17:00", ""},
			),
			Eligibility:        "San Francisco residents, priority to Bayview-Hunters Point residents",
			Requirements:       []string{"ID", "Proof of address", "Work authorization"},
			Languages:          []string{"English", "Spanish", "Cantonese"},
			Accessibility:      []string{"wheelchair", "transit"},
			Services:           []string{"job training", "resume help", "career counseling"},
			Capacity:           "Serves approximately 50 clients daily",
			VerificationStatus: resource.StatusVerified,
			LastUpdated:        day("2025-02-20"),
		},
	}
}
