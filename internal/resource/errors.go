package resource

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidResource wraps every validation failure so handlers can map
	// them to 400 with a single errors.Is check.
	ErrInvalidResource = errors.New("invalid resource")

	ErrNameRequired       = errors.New("name is required")
	ErrAddressRequired    = errors.New("address is required")
	ErrLocationRequired   = errors.New("address or coordinates are required")
	ErrInvalidCoordinates = errors.New("coordinates must be [longitude, latitude]")
	ErrInvalidStatus      = errors.New("verificationStatus must be pending, verified or rejected")
)

// Validate checks the storage invariant: a name and either an address or
// coordinates, with coordinates as a [lon, lat] pair in range.
func Validate(r *Resource) error {
	if r == nil {
		return fmt.Errorf("%w: resource is nil", ErrInvalidResource)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrNameRequired)
	}
	if r.Location != nil {
		if err := ValidatePoint(r.Location); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidResource, err)
		}
	}
	if r.Address == "" && r.Location == nil {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrLocationRequired)
	}
	if !r.VerificationStatus.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrInvalidStatus)
	}
	return nil
}

// ValidateSubmission applies the public submission rules on top of Validate:
// the address is mandatory for user-submitted entries.
func ValidateSubmission(r *Resource) error {
	if r != nil && r.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrNameRequired)
	}
	if r != nil && r.Address == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrAddressRequired)
	}
	return Validate(r)
}

// ValidatePoint checks a GeoJSON point is an in-range [lon, lat] pair.
func ValidatePoint(p *GeoPoint) error {
	if len(p.Coordinates) != 2 {
		return ErrInvalidCoordinates
	}
	return ValidateLonLat(p.Coordinates[0], p.Coordinates[1])
}

// ValidateLonLat rejects NaN and out-of-range coordinates.
func ValidateLonLat(lon, lat float64) error {
	if math.IsNaN(lon) || math.IsNaN(lat) || lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return ErrInvalidCoordinates
	}
	return nil
}
