package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/curanova/curanova-site/internal/schemas"
	"github.com/curanova/curanova-site/internal/types"
)

// generateTimeout bounds one Gemini call.
const generateTimeout = 30 * time.Second

// JobGenerator drafts job postings from a title and/or keywords.
type JobGenerator struct {
	client Client
}

// NewJobGenerator wraps a client.
func NewJobGenerator(client Client) *JobGenerator {
	return &JobGenerator{client: client}
}

// BuildPrompt renders the drafting prompt. Either title or keywords may be
// empty, but callers must supply at least one.
func BuildPrompt(title, keywords string) string {
	if title == "" {
		title = "Not specified"
	}
	if keywords == "" {
		keywords = "Not specified"
	}

	var sb strings.Builder
	sb.WriteString("Generate a job posting for Curanova AI (healthcare AI company) as JSON:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Keywords: %s\n\n", keywords)
	sb.WriteString(`Return ONLY this JSON (no markdown):
{
  "title": "Job title",
  "department": "Department name",
  "description": "2 short paragraphs about the role (max 150 words total)",
  "requirements": ["req1", "req2", "req3", "req4", "req5"]
}

Keep description concise. Include 5 requirements.`)
	return sb.String()
}

// Generate drafts one posting, strips any markdown fences the model wrapped
// the JSON in, and validates the result against the posting schema before
// returning it.
func (g *JobGenerator) Generate(ctx context.Context, title, keywords string) (*types.GeneratedJob, error) {
	if title == "" && keywords == "" {
		return nil, fmt.Errorf("title or keywords required")
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := g.client.GenerateContent(ctx, BuildPrompt(title, keywords))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return ParseGeneratedJob(raw)
}

// ParseGeneratedJob turns raw model output into a validated posting.
func ParseGeneratedJob(raw string) (*types.GeneratedJob, error) {
	cleaned := CleanJSONBlock(raw)

	if err := schemas.ValidateGeneratedJob([]byte(cleaned)); err != nil {
		return nil, fmt.Errorf("generated posting failed validation: %w", err)
	}

	var job types.GeneratedJob
	if err := json.Unmarshal([]byte(cleaned), &job); err != nil {
		return nil, fmt.Errorf("failed to parse generated content: %w", err)
	}
	return &job, nil
}

// CleanJSONBlock removes markdown code fences from model responses. Models
// often wrap JSON in ```json ... ``` even when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
