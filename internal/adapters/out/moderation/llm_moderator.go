// Package moderation classifies review text with a language model.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

const systemPrompt = "You are a content moderator for a wand shop. " +
	"Classify the customer review you are given. " +
	"Reply with exactly one word: SAFE if the review is acceptable to publish, UNSAFE otherwise."

const verdictSafe = "SAFE"

// LLMModerator asks the model for a SAFE/UNSAFE verdict. Only an exact SAFE
// (ignoring case and surrounding whitespace) counts as safe.
type LLMModerator struct {
	llm    llms.Model
	logger *slog.Logger
}

func NewLLMModerator(llm llms.Model, logger *slog.Logger) (*LLMModerator, error) {
	if llm == nil {
		return nil, errors.New("llm is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMModerator{
		llm:    llm,
		logger: logger.With("component", "review_moderator"),
	}, nil
}

func (m *LLMModerator) IsSafe(ctx context.Context, text string) (bool, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, text),
	}

	completion, err := m.llm.GenerateContent(ctx, content,
		llms.WithTemperature(0),
		llms.WithMaxTokens(4),
	)
	if err != nil {
		return false, fmt.Errorf("llm.GenerateContent: %w", err)
	}

	var response strings.Builder
	for _, choice := range completion.Choices {
		if choice == nil {
			continue
		}
		response.WriteString(choice.Content)
	}

	verdict := strings.ToUpper(strings.TrimSpace(response.String()))
	if verdict != verdictSafe {
		m.logger.InfoContext(ctx, "review flagged", "verdict", verdict)
		return false, nil
	}
	return true, nil
}

// Unavailable is the moderator used when no model is configured. Every review
// fails moderation, so nothing unmoderated is stored.
type Unavailable struct{}

var ErrNotConfigured = errors.New("review moderation is not configured")

func (Unavailable) IsSafe(context.Context, string) (bool, error) {
	return false, ErrNotConfigured
}
