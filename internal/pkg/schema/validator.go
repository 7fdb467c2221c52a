package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// rawPrefixLimit bounds how much raw LLM output is attached to parse errors.
const rawPrefixLimit = 500

// Violation describes a single failed structural check.
type Violation struct {
	Path     string
	Expected string
	Actual   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", v.Path, v.Expected, v.Actual)
}

// MalformedOutputError means the LLM output could not be parsed as JSON at all.
type MalformedOutputError struct {
	Agent     string
	RawPrefix string
	Err       error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%s agent returned invalid JSON: %v", e.Agent, e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// SchemaViolationError means the JSON parsed but failed the structural contract.
type SchemaViolationError struct {
	Agent      string
	Violations []Violation
}

func (e *SchemaViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s agent returned invalid output structure: %s", e.Agent, strings.Join(parts, ", "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// decode extracts JSON from raw LLM output, parses it into T and runs the
// contract checks. A text that is not JSON yields MalformedOutputError; JSON
// of the wrong shape yields SchemaViolationError. The same input always
// yields the same classification.
func decode[T any](agent, raw string, validate func(*T) []Violation) (*T, error) {
	jsonStr := ExtractJSON(raw)

	// Distinguish "not JSON" from "JSON of the wrong shape" before decoding
	// into the typed contract.
	var probe any
	if err := json.Unmarshal([]byte(jsonStr), &probe); err != nil {
		return nil, &MalformedOutputError{
			Agent:     agent,
			RawPrefix: truncate(raw, rawPrefixLimit),
			Err:       err,
		}
	}

	var out T
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaViolationError{
				Agent: agent,
				Violations: []Violation{{
					Path:     typeErr.Field,
					Expected: typeErr.Type.String(),
					Actual:   typeErr.Value,
				}},
			}
		}
		return nil, &MalformedOutputError{
			Agent:     agent,
			RawPrefix: truncate(raw, rawPrefixLimit),
			Err:       err,
		}
	}

	if violations := validate(&out); len(violations) > 0 {
		return nil, &SchemaViolationError{Agent: agent, Violations: violations}
	}

	return &out, nil
}
