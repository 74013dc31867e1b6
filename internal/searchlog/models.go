package searchlog

import (
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
)

// ProcessedQuery is the interpretation that drove a search, as recorded.
type ProcessedQuery struct {
	Categories          []string `json:"categories" bson:"categories"`
	Subcategories       []string `json:"subcategories" bson:"subcategories"`
	Keywords            []string `json:"keywords" bson:"keywords"`
	Location            string   `json:"location" bson:"location"`
	RephrasedQuery      string   `json:"rephrasedQuery" bson:"rephrasedQuery"`
	SpecialRequirements []string `json:"specialRequirements" bson:"specialRequirements"`
}

// SearchLog is the append-only audit record of one search.
type SearchLog struct {
	ID                   string             `json:"id" bson:"_id,omitempty"`
	Query                string             `json:"query" bson:"query"`
	ProcessedQuery       ProcessedQuery     `json:"processedQuery" bson:"processedQuery"`
	InterpretationSource string             `json:"interpretationSource" bson:"interpretationSource"`
	ResultsCount         int                `json:"resultsCount" bson:"resultsCount"`
	SessionID            string             `json:"sessionId" bson:"sessionId"`
	UserLocation         *resource.GeoPoint `json:"userLocation,omitempty" bson:"userLocation,omitempty"`
	DeviceType           DeviceType         `json:"deviceType" bson:"deviceType"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
}
