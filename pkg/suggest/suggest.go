// Package suggest produces recovery suggestions for classified agent errors.
//
// Suggestions come from two sources: an optional completion client (an LLM
// behind the CompletionClient interface) and a built-in static table. The
// static table is always available and is the fallback whenever the client
// fails or returns unparseable output, so Suggest never fails.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// Suggestion is a structured remediation recommendation.
type Suggestion struct {
	Summary    string   `json:"suggestion"`
	Confidence string   `json:"confidence"`
	Steps      []string `json:"steps"`
	References []string `json:"references,omitempty"`
}

// CompletionClient is the minimal LLM surface the suggester needs.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Suggester generates recovery suggestions, preferring the completion client
// and falling back to the static table.
type Suggester struct {
	client CompletionClient
	logger *zap.Logger
}

// New builds a Suggester. client may be nil, in which case only static
// suggestions are produced.
func New(client CompletionClient, logger *zap.Logger) *Suggester {
	return &Suggester{client: client, logger: logger}
}

const systemPrompt = "You are an expert AI agent reliability engineer. " +
	"Given a classified agent error code and optional context, produce a " +
	"structured JSON recovery suggestion with the following fields:\n" +
	"- suggestion: (string) one-sentence remediation summary\n" +
	"- confidence: (string) one of: high, medium, low\n" +
	"- steps: (array of strings) ordered remediation steps\n" +
	"- references: (array of strings) optional reference links\n" +
	"Respond with a valid JSON object only. Do not include markdown fences."

// Suggest generates a suggestion for code. It never fails: client errors
// and malformed responses fall back to the static table.
func (s *Suggester) Suggest(ctx context.Context, code int, contextMsg, agentID string) Suggestion {
	if s.client == nil {
		return Static(code)
	}
	content, err := s.client.Complete(ctx, systemPrompt, buildUserPrompt(code, contextMsg, agentID))
	if err == nil {
		suggestion, parseErr := parseResponse(content)
		if parseErr == nil {
			return suggestion
		}
		err = parseErr
	}
	s.logger.Warn("completion suggestion failed, falling back to static table",
		zap.Int("code", code),
		zap.Error(err))
	return Static(code)
}

// SuggestForError generates a suggestion for a full catalog definition.
func (s *Suggester) SuggestForError(ctx context.Context, def taxonomy.AgentError, contextMsg, agentID string) Suggestion {
	return s.Suggest(ctx, def.Code, contextMsg, agentID)
}

func buildUserPrompt(code int, contextMsg, agentID string) string {
	parts := []string{fmt.Sprintf("Agent error code: %d", code)}
	if agentID != "" {
		parts = append(parts, "Agent ID: "+agentID)
	}
	if contextMsg != "" {
		parts = append(parts, "Context: "+contextMsg)
	}
	parts = append(parts, "Please provide a structured JSON recovery suggestion for this error.")
	return strings.Join(parts, "\n")
}

// parseResponse decodes a completion into a Suggestion, stripping markdown
// fences and normalising unknown confidence levels to "low".
func parseResponse(content string) (Suggestion, error) {
	stripped := strings.TrimSpace(content)
	if strings.HasPrefix(stripped, "```") {
		lines := strings.Split(stripped, "\n")
		if len(lines) >= 2 {
			stripped = strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
		}
	}
	var suggestion Suggestion
	if err := json.Unmarshal([]byte(stripped), &suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("parse completion: %w", err)
	}
	switch strings.ToLower(suggestion.Confidence) {
	case "high", "medium", "low":
		suggestion.Confidence = strings.ToLower(suggestion.Confidence)
	default:
		suggestion.Confidence = "low"
	}
	return suggestion, nil
}
