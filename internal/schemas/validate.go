// Package schemas provides JSON Schema validation for AI-generated artifacts.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// GeneratedJobSchemaPath is the repo-relative path of the schema that
// AI-drafted job postings must satisfy.
const GeneratedJobSchemaPath = "schemas/generated_job.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
// This is useful when callers may run from different working directory contexts (e.g., tests).
func ResolveSchemaPath(relativePath string) string {
	// Try paths in order:
	// 1. Relative to current working directory
	// 2. One level up (../schemas/...)
	// 3. Two levels up (../../schemas/...)
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	generatedJobOnce   sync.Once
	generatedJobSchema *gojsonschema.Schema
	generatedJobErr    error
)

// ValidateGeneratedJob validates a JSON document against the generated-job
// posting schema. The schema is compiled once and reused.
func ValidateGeneratedJob(data []byte) error {
	generatedJobOnce.Do(func() {
		path := ResolveSchemaPath(GeneratedJobSchemaPath)
		if path == "" {
			generatedJobErr = &SchemaLoadError{
				Path:    GeneratedJobSchemaPath,
				Message: "schema file not found",
			}
			return
		}
		loader := gojsonschema.NewReferenceLoader("file://" + path)
		generatedJobSchema, generatedJobErr = gojsonschema.NewSchema(loader)
		if generatedJobErr != nil {
			generatedJobErr = &SchemaLoadError{
				Path:    path,
				Message: "schema failed to compile",
				Cause:   generatedJobErr,
			}
		}
	})
	if generatedJobErr != nil {
		return generatedJobErr
	}

	result, err := generatedJobSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The document itself was unloadable, e.g. not valid JSON at all.
		return &ValidationError{
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
