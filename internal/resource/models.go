package resource

import "time"

// Status is the moderation state of a resource.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// Conventional category names. Category is free-form in storage; these are
// the values the taxonomy and the search synonyms know about.
const (
	CategoryFood       = "food"
	CategoryHousing    = "housing"
	CategoryHealthcare = "healthcare"
	CategoryEmployment = "employment"
	CategoryOther      = "other"
)

// KnownCategories lists the four searchable categories in display order.
var KnownCategories = []string{CategoryFood, CategoryHousing, CategoryHealthcare, CategoryEmployment}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a GeoJSON point from longitude and latitude.
func NewPoint(lon, lat float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func (p *GeoPoint) Lon() float64 { return p.Coordinates[0] }
func (p *GeoPoint) Lat() float64 { return p.Coordinates[1] }

type Contact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Hours is one weekday entry. Day is 0 (Sunday) through 6 (Saturday).
// An empty Open means closed; Open == AlwaysOpen means open all day.
type Hours struct {
	Day   int    `json:"day" bson:"day"`
	Open  string `json:"open" bson:"open"`
	Close string `json:"close" bson:"close"`
}

// Resource is the canonical service-provider record.
type Resource struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	Name               string     `json:"name" bson:"name"`
	Type               string     `json:"type,omitempty" bson:"type,omitempty"`
	Category           string     `json:"category" bson:"category"`
	Subcategories      []string   `json:"subcategories" bson:"subcategories"`
	Description        string     `json:"description,omitempty" bson:"description,omitempty"`
	Address            string     `json:"address,omitempty" bson:"address,omitempty"`
	Location           *GeoPoint  `json:"location,omitempty" bson:"location,omitempty"`
	Contact            Contact    `json:"contact" bson:"contact"`
	Hours              []Hours    `json:"hours" bson:"hours"`
	Eligibility        string     `json:"eligibility,omitempty" bson:"eligibility,omitempty"`
	Requirements       []string   `json:"requirements" bson:"requirements"`
	Languages          []string   `json:"languages" bson:"languages"`
	Accessibility      []string   `json:"accessibility" bson:"accessibility"`
	Services           []string   `json:"services" bson:"services"`
	Capacity           string     `json:"capacity,omitempty" bson:"capacity,omitempty"`
	VerificationStatus Status     `json:"verificationStatus" bson:"verificationStatus"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	SubmittedBy        string     `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	LastUpdated        time.Time  `json:"lastUpdated" bson:"lastUpdated"`
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Summary is the projection handed to the explanation prompt.
type Summary struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	Address     string `json:"address,omitempty"`
}

func (r *Resource) Summary() Summary {
	return Summary{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Eligibility: r.Eligibility,
		Address:     r.Address,
	}
}
