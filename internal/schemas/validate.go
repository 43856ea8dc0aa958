// Package schemas validates request and result documents against embedded JSON Schemas.
package schemas

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Kind names an embedded schema.
type Kind string

// Embedded schemas.
const (
	KindAnalysisSettings Kind = "analysis_settings"
	KindAnalyzeRequest   Kind = "analyze_request"
	KindBatchRequest     Kind = "batch_request"
	KindAnalysisResult   Kind = "analysis_result"
	KindDraft            Kind = "draft"
)

// sharedKinds are registered with every compiled schema so cross-schema $refs resolve.
var sharedKinds = []Kind{KindAnalysisSettings}

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
	compileOnce sync.Once
	compiled    map[Kind]*gojsonschema.Schema
	compileErr  error
)

// Kinds lists the embedded schema kinds in sorted order.
func Kinds() []Kind {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil
	}
	kinds := make([]Kind, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, Kind(strings.TrimSuffix(e.Name(), ".schema.json")))
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Source returns the raw embedded schema for kind.
func Source(kind Kind) ([]byte, error) {
	data, err := schemaFS.ReadFile(string(kind) + ".schema.json")
	if err != nil {
		return nil, &SchemaLoadError{Path: string(kind), Message: "unknown schema kind", Cause: err}
	}
	return data, nil
}

func compileAll() (map[Kind]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[Kind]*gojsonschema.Schema)
		for _, kind := range Kinds() {
			schema, err := compile(kind)
			if err != nil {
				compileErr = err
				return
			}
			compiled[kind] = schema
		}
	})
	return compiled, compileErr
}

func compile(kind Kind) (*gojsonschema.Schema, error) {
	loader := gojsonschema.NewSchemaLoader()
	loader.Draft = gojsonschema.Draft7

	for _, shared := range sharedKinds {
		if shared == kind {
			continue
		}
		data, err := Source(shared)
		if err != nil {
			return nil, err
		}
		if err := loader.AddSchemas(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, &SchemaLoadError{Path: string(shared), Message: "invalid shared schema", Cause: err}
		}
	}

	data, err := Source(kind)
	if err != nil {
		return nil, err
	}
	schema, err := loader.Compile(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: string(kind), Message: "schema failed to compile", Cause: err}
	}
	return schema, nil
}

// Validate checks a JSON document against the embedded schema for kind.
func Validate(kind Kind, document []byte) error {
	all, err := compileAll()
	if err != nil {
		return err
	}
	schema, ok := all[kind]
	if !ok {
		return &SchemaLoadError{Path: string(kind), Message: "unknown schema kind"}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return toValidationError(result)
}

// ValidateFile checks a JSON file against the embedded schema for kind.
func ValidateFile(kind Kind, jsonPath string) error {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}
	return Validate(kind, data)
}

// ValidateJSON validates a JSON file against a JSON Schema file on disk.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbsPath)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbsPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
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
