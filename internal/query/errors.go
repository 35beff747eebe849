package query

import (
	"fmt"
	"strings"
)

// FieldIssue names one offending parameter and why it was rejected.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ValidationError carries every violation found in a request, so the
// caller can report them all at once.
type ValidationError struct {
	Details []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Issue))
	}
	return "invalid query parameters: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, issue string) {
	e.Details = append(e.Details, FieldIssue{Field: field, Issue: issue})
}
