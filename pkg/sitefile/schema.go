package sitefile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schemaDoc  *openapi3.Schema
	schemaErr  error
)

// Schema returns the kin-openapi schema every definition is checked against.
func Schema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		var schema openapi3.Schema
		if err := json.Unmarshal(schemaJSON, &schema); err != nil {
			schemaErr = fmt.Errorf("sitefile: decode schema: %w", err)
			return
		}
		if err := schema.Validate(context.Background()); err != nil {
			schemaErr = fmt.Errorf("sitefile: validate schema: %w", err)
			return
		}
		schemaDoc = &schema
	})
	return schemaDoc, schemaErr
}

// checkPresence validates a generic JSON value and returns the issues found,
// ordered by field.
func checkPresence(value any) ([]Issue, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	err = schema.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil, nil
	}
	issues := collectIssues(err)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Field < issues[j].Field
	})
	return issues, nil
}

func collectIssues(err error) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []Issue
		for _, inner := range multi {
			out = append(out, collectIssues(inner)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []Issue{{
			Field:   strings.Join(schemaErr.JSONPointer(), "."),
			Message: schemaErr.Reason,
		}}
	}
	return []Issue{{Message: err.Error()}}
}
