// Package claude implements the AI categorization collaborator on top of the
// Anthropic API. It classifies a bookmark into one category from the owner's
// vocabulary and proposes up to five descriptive tags.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/markstash/backend/internal/config"
	"github.com/markstash/backend/internal/domain"
)

// Categorizer calls Claude to classify bookmarks. Failures and timeouts are
// reported as domain.ErrUnavailable so callers can degrade instead of failing
// the bookmark write.
type Categorizer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// New creates a Categorizer from the AI configuration.
func New(cfg config.AIConfig) *Categorizer {
	return &Categorizer{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
	}
}

// Categorize classifies the page described by url/title/description into one
// of categories and suggests tags. The call is bounded by the configured
// timeout; any API failure, timeout, or unparsable response comes back as an
// error wrapping domain.ErrUnavailable.
func (c *Categorizer) Categorize(ctx context.Context, url, title, description string, categories []string) (*domain.AICategorization, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := buildPrompt(url, title, description, categories)

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("categorize call: %v: %w", err, domain.ErrUnavailable)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("categorize: empty response: %w", domain.ErrUnavailable)
	}

	result, err := parseResponse(msg.Content[0].Text, categories)
	if err != nil {
		return nil, fmt.Errorf("categorize: %v: %w", err, domain.ErrUnavailable)
	}

	return result, nil
}

// buildPrompt creates the classification prompt for a single bookmark.
func buildPrompt(url, title, description string, categories []string) string {
	return fmt.Sprintf(`You are a bookmark organizer.

Classify the following web page into exactly one of these categories:
%s

Page:
URL: %s
Title: %s
Description: %s

Output ONLY a valid JSON object matching this exact schema:
{
  "category": "<one of the categories above>",
  "tags": ["<short lowercase tag>", "..."]
}

Rules:
- The category MUST be one of the listed values, verbatim
- Provide 2-5 short lowercase tags describing the content
- Output ONLY the JSON, no markdown, no explanations`,
		strings.Join(categories, ", "), url, title, description)
}

// llmResponse is the JSON shape the prompt asks for.
type llmResponse struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// parseResponse extracts and validates the JSON object from the model output.
// A category outside the offered vocabulary is dropped, not invented.
func parseResponse(text string, categories []string) (*domain.AICategorization, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("response does not contain valid JSON")
	}

	var resp llmResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	result := &domain.AICategorization{Tags: normalizeTags(resp.Tags)}
	for _, c := range categories {
		if c == resp.Category {
			result.Category = resp.Category
			break
		}
	}

	return result, nil
}

// normalizeTags trims, lowercases, and dedupes tags, capping at five.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
		if len(result) == 5 {
			break
		}
	}
	return result
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
