// Package openai implements ai.TextGenerator on an OpenAI-compatible chat
// completions endpoint through langchaingo. The default deployment points it
// at Gemini's OpenAI compatibility layer.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type Generator struct {
	client      llms.Model
	timeout     time.Duration
	temperature float64
}

// NewGenerator returns ai.ErrNotConfigured when the key or model is missing.
func NewGenerator(cfg ai.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai client: %w", err)
	}
	return &Generator{client: client, timeout: cfg.Timeout, temperature: cfg.Temperature}, nil
}

// Generate sends prompt as a single user message, bounded by the configured timeout.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	out, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return strings.TrimSpace(out), nil
}
