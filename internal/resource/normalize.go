package resource

import (
	"strconv"
	"strings"
	"time"
)

// Incoming is the permissive document shape accepted from request bodies and
// read back from storage. Besides the canonical fields it carries the older
// spellings (location.address, contactPhone, top-level website,
// documentation_required, weekday-name hours) still present in some data.
// Normalize is the only place that looks at it.
type Incoming struct {
	ID                    string          `json:"id,omitempty" bson:"_id,omitempty"`
	Name                  string          `json:"name" bson:"name"`
	Type                  string          `json:"type" bson:"type"`
	Category              string          `json:"category" bson:"category"`
	Subcategories         []string        `json:"subcategories" bson:"subcategories"`
	Description           string          `json:"description" bson:"description"`
	Address               string          `json:"address" bson:"address"`
	Location              *IncomingPoint  `json:"location" bson:"location"`
	Contact               *Contact        `json:"contact" bson:"contact"`
	ContactPhone          string          `json:"contactPhone" bson:"contactPhone"`
	Website               string          `json:"website" bson:"website"`
	Hours                 []IncomingHours `json:"hours" bson:"hours"`
	Eligibility           string          `json:"eligibility" bson:"eligibility"`
	Requirements          []string        `json:"requirements" bson:"requirements"`
	DocumentationRequired []string        `json:"documentation_required" bson:"documentation_required"`
	Languages             []string        `json:"languages" bson:"languages"`
	Accessibility         []string        `json:"accessibility" bson:"accessibility"`
	Services              []string        `json:"services" bson:"services"`
	Capacity              string          `json:"capacity" bson:"capacity"`
	VerificationStatus    Status          `json:"verificationStatus" bson:"verificationStatus"`
	SubmittedAt           *time.Time      `json:"submittedAt" bson:"submittedAt"`
	SubmittedBy           string          `json:"submittedBy" bson:"submittedBy"`
	LastUpdated           *time.Time      `json:"lastUpdated" bson:"lastUpdated"`
	CreatedAt             *time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt             *time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// IncomingPoint is a GeoJSON point that may also carry the street address.
type IncomingPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
	Address     string    `json:"address" bson:"address"`
}

// IncomingHours accepts day as a number (0-6, possibly as a string) or a
// weekday name.
type IncomingHours struct {
	Day   any    `json:"day" bson:"day"`
	Open  string `json:"open" bson:"open"`
	Close string `json:"close" bson:"close"`
}

var typeCategories = map[string]string{
	"shelter":           CategoryHousing,
	"food bank":         CategoryFood,
	"medical clinic":    CategoryHealthcare,
	"employment center": CategoryEmployment,
}

// CategoryFromType maps a free-form provider type to its category.
func CategoryFromType(t string) string {
	if c, ok := typeCategories[strings.ToLower(strings.TrimSpace(t))]; ok {
		return c
	}
	return CategoryOther
}

// Normalize maps an incoming document onto the canonical Resource. Canonical
// fields win over their legacy spellings when both are present. An empty
// status becomes pending.
func Normalize(in *Incoming) *Resource {
	r := &Resource{
		ID:                 in.ID,
		Name:               strings.TrimSpace(in.Name),
		Type:               strings.TrimSpace(in.Type),
		Category:           strings.ToLower(strings.TrimSpace(in.Category)),
		Subcategories:      nonNil(in.Subcategories),
		Description:        in.Description,
		Address:            strings.TrimSpace(in.Address),
		Eligibility:        in.Eligibility,
		Requirements:       nonNil(in.Requirements),
		Languages:          nonNil(in.Languages),
		Accessibility:      nonNil(in.Accessibility),
		Services:           nonNil(in.Services),
		Capacity:           in.Capacity,
		VerificationStatus: in.VerificationStatus,
		SubmittedAt:        in.SubmittedAt,
		SubmittedBy:        in.SubmittedBy,
	}

	if r.Category == "" {
		r.Category = CategoryFromType(r.Type)
	}
	if r.VerificationStatus == "" {
		r.VerificationStatus = StatusPending
	}

	if in.Location != nil {
		if r.Address == "" {
			r.Address = strings.TrimSpace(in.Location.Address)
		}
		r.Location = normalizePoint(in.Location)
	}

	if in.Contact != nil {
		r.Contact = *in.Contact
	}
	if r.Contact.Phone == "" {
		r.Contact.Phone = in.ContactPhone
	}
	if r.Contact.Website == "" {
		r.Contact.Website = in.Website
	}

	if len(r.Requirements) == 0 && len(in.DocumentationRequired) > 0 {
		r.Requirements = append([]string(nil), in.DocumentationRequired...)
	}

	r.Hours = NormalizeHours(in.Hours)

	if in.LastUpdated != nil {
		r.LastUpdated = *in.LastUpdated
	}
	if in.CreatedAt != nil {
		r.CreatedAt = *in.CreatedAt
	}
	if in.UpdatedAt != nil {
		r.UpdatedAt = *in.UpdatedAt
	}
	return r
}

// normalizePoint drops points without coordinates and the [0, 0]
// placeholder older submissions stored when none were given.
func normalizePoint(p *IncomingPoint) *GeoPoint {
	if len(p.Coordinates) == 0 {
		return nil
	}
	if len(p.Coordinates) == 2 && p.Coordinates[0] == 0 && p.Coordinates[1] == 0 {
		return nil
	}
	typ := p.Type
	if typ == "" {
		typ = "Point"
	}
	return &GeoPoint{Type: typ, Coordinates: append([]float64(nil), p.Coordinates...)}
}

// NormalizeHours returns seven entries ordered Sunday..Saturday. Days not
// listed are closed; the first entry for a day wins; unparseable days are
// dropped. No input yields no hours.
func NormalizeHours(in []IncomingHours) []Hours {
	if len(in) == 0 {
		return []Hours{}
	}
	var week [7]*Hours
	for _, h := range in {
		day, ok := parseDay(h.Day)
		if !ok || week[day] != nil {
			continue
		}
		week[day] = &Hours{Day: day, Open: strings.TrimSpace(h.Open), Close: strings.TrimSpace(h.Close)}
	}
	out := make([]Hours, 7)
	for d := range out {
		if week[d] != nil {
			out[d] = *week[d]
		} else {
			out[d] = Hours{Day: d}
		}
	}
	return out
}

func parseDay(v any) (int, bool) {
	var d int
	switch t := v.(type) {
	case int:
		d = t
	case int32:
		d = int(t)
	case int64:
		d = int(t)
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		d = int(t)
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if n, ok := weekdayNames[s]; ok {
			return n, true
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		d = n
	default:
		return 0, false
	}
	if d < 0 || d > 6 {
		return 0, false
	}
	return d, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
