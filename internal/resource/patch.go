package resource

import "strings"

// Patch is a partial administrative update. Nil fields are left untouched.
type Patch struct {
	Name               *string         `json:"name"`
	Type               *string         `json:"type"`
	Category           *string         `json:"category"`
	Subcategories      []string        `json:"subcategories"`
	Description        *string         `json:"description"`
	Address            *string         `json:"address"`
	Location           *GeoPoint       `json:"location"`
	Contact            *Contact        `json:"contact"`
	Hours              []IncomingHours `json:"hours"`
	Eligibility        *string         `json:"eligibility"`
	Requirements       []string        `json:"requirements"`
	Languages          []string        `json:"languages"`
	Accessibility      []string        `json:"accessibility"`
	Services           []string        `json:"services"`
	Capacity           *string         `json:"capacity"`
	VerificationStatus *Status         `json:"verificationStatus"`
}

// Apply copies the set fields of p onto r. A changed type with no explicit
// category re-derives the category.
func (p Patch) Apply(r *Resource) {
	if p.Name != nil {
		r.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		r.Type = strings.TrimSpace(*p.Type)
		if p.Category == nil {
			r.Category = CategoryFromType(r.Type)
		}
	}
	if p.Category != nil {
		r.Category = strings.ToLower(strings.TrimSpace(*p.Category))
		if r.Category == "" {
			r.Category = CategoryFromType(r.Type)
		}
	}
	if p.Subcategories != nil {
		r.Subcategories = p.Subcategories
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Address != nil {
		r.Address = strings.TrimSpace(*p.Address)
	}
	if p.Location != nil {
		loc := *p.Location
		if loc.Type == "" {
			loc.Type = "Point"
		}
		r.Location = &loc
	}
	if p.Contact != nil {
		r.Contact = *p.Contact
	}
	if p.Hours != nil {
		r.Hours = NormalizeHours(p.Hours)
	}
	if p.Eligibility != nil {
		r.Eligibility = *p.Eligibility
	}
	if p.Requirements != nil {
		r.Requirements = p.Requirements
	}
	if p.Languages != nil {
		r.Languages = p.Languages
	}
	if p.Accessibility != nil {
		r.Accessibility = p.Accessibility
	}
	if p.Services != nil {
		r.Services = p.Services
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.VerificationStatus != nil {
		r.VerificationStatus = *p.VerificationStatus
	}
}
