// Package ai defines the text-generation dependency used by query
// interpretation and result explanation, plus helpers for pulling JSON out
// of model responses.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("ai: text generation is not configured")
	ErrNoJSON        = errors.New("ai: response contains no JSON object")
)

// TextGenerator produces a completion for a single prompt.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config configures an OpenAI-compatible chat endpoint.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

// Validate rejects configs that cannot reach a model and fills the timeout default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" || strings.TrimSpace(c.Model) == "" {
		return ErrNotConfigured
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return nil
}
