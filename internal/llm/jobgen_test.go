package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

const validPosting = `{
	"title": "Clinical NLP Engineer",
	"department": "Engineering",
	"description": "Build NLP systems for clinical notes.",
	"requirements": ["Go", "NLP", "PostgreSQL", "Docker", "Kubernetes"]
}`

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no fences",
			input:    `{"title": "x"}`,
			expected: `{"title": "x"}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"title\": \"x\"}\n```",
			expected: `{"title": "x"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"title\": \"x\"}\n```",
			expected: `{"title": "x"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  ```json\n{\"title\": \"x\"}\n```  \n",
			expected: `{"title": "x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Data Engineer", "ETL, Postgres")
	assert.Contains(t, prompt, "Title: Data Engineer")
	assert.Contains(t, prompt, "Keywords: ETL, Postgres")
	assert.Contains(t, prompt, "Return ONLY this JSON")

	// Empty inputs are spelled out rather than left blank.
	prompt = BuildPrompt("", "health data")
	assert.Contains(t, prompt, "Title: Not specified")
}

func TestParseGeneratedJob(t *testing.T) {
	job, err := ParseGeneratedJob("```json\n" + validPosting + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Clinical NLP Engineer", job.Title)
	assert.Equal(t, "Engineering", job.Department)
	assert.Len(t, job.Requirements, 5)
}

func TestParseGeneratedJob_RejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "Sorry, I can't help with that."},
		{name: "truncated json", raw: `{"title": "x", "department":`},
		{name: "missing fields", raw: `{"title": "x"}`},
		{name: "wrong shape", raw: `["a", "b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGeneratedJob(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestGenerate(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validPosting + "\n```"}
	gen := NewJobGenerator(client)

	job, err := gen.Generate(context.Background(), "Clinical NLP Engineer", "")
	require.NoError(t, err)
	assert.Equal(t, "Clinical NLP Engineer", job.Title)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Clinical NLP Engineer")
}

func TestGenerate_RequiresTitleOrKeywords(t *testing.T) {
	gen := NewJobGenerator(&fakeClient{response: validPosting})

	_, err := gen.Generate(context.Background(), "", "")
	assert.Error(t, err)
}

func TestGenerate_PropagatesClientError(t *testing.T) {
	gen := NewJobGenerator(&fakeClient{err: errors.New("quota exceeded")})

	_, err := gen.Generate(context.Background(), "Engineer", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
