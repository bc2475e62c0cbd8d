package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// SchemaError lists every violation gojsonschema reported for a document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

// ValidateDocument validates a decoded JSON document (map, Resume, raw bytes)
// against resume.schema.json.
func ValidateDocument(doc interface{}) error {
	var docLoader gojsonschema.JSONLoader
	switch d := doc.(type) {
	case []byte:
		docLoader = gojsonschema.NewBytesLoader(d)
	case string:
		docLoader = gojsonschema.NewStringLoader(d)
	default:
		docLoader = gojsonschema.NewGoLoader(d)
	}

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate resume document: %w", err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &SchemaError{Problems: problems}
}
