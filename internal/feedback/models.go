package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxCommentLength = 500

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// Feedback is one rating or view event. Rating 0 records a view.
type Feedback struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ResourceID   string    `json:"resource_id" bson:"resource_id"`
	ResourceName string    `json:"resource_name,omitempty" bson:"-"`
	Rating       int       `json:"rating" bson:"rating"`
	Helpful      bool      `json:"helpful" bson:"helpful"`
	Comment      string    `json:"comment,omitempty" bson:"comment,omitempty"`
	SessionID    string    `json:"session_id" bson:"session_id"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// IsView reports whether the event is a view rather than a rating.
func (f *Feedback) IsView() bool { return f.Rating == 0 }

// Stats aggregates the events recorded for one resource. The average
// covers rated events only.
type Stats struct {
	AverageRating float64 `json:"averageRating"`
	TotalFeedback int     `json:"totalFeedback"`
	RatingCount   int     `json:"ratingCount"`
	ViewCount     int     `json:"viewCount"`
	HelpfulCount  int     `json:"helpfulCount"`
}

// Submission is the POST body. Helpful defaults to true when omitted.
type Submission struct {
	ResourceID string `json:"resource_id"`
	Rating     int    `json:"rating"`
	Helpful    *bool  `json:"helpful"`
	Comment    string `json:"comment"`
	SessionID  string `json:"session_id"`
}

func (s Submission) Validate() error {
	if strings.TrimSpace(s.ResourceID) == "" {
		return fmt.Errorf("%w: resource_id is required", ErrInvalidFeedback)
	}
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidFeedback)
	}
	if utf8.RuneCountInString(s.Comment) > MaxCommentLength {
		return fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidFeedback, MaxCommentLength)
	}
	return nil
}
