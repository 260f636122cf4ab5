package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; nothing below the handler layer knows about HTTP.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrJobClosed            = errors.New("job is not accepting applications")
	ErrDuplicateApplication = errors.New("applicant has already applied for this job")
	ErrDependency           = errors.New("upstream dependency failure")

	// Analysis errors never leave the submission pipeline; any of them
	// switches the submission to the fallback scorer.
	ErrAnalysisUnavailable = errors.New("resume analysis unavailable")
	ErrMalformedAnalysis   = errors.New("malformed analysis response")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
