// Package error defines domain-specific errors for the Budget Planner backend.
package error

import "errors"

// Analysis domain errors. The engine itself never fails; these cover
// request parsing at the API boundary.
var (
	// ErrInvalidTimeFrame is returned when time_frame is not valid.
	ErrInvalidTimeFrame = errors.New("time_frame must be: week, month, or year")

	// ErrInvalidAnalysisType is returned when type is not valid.
	ErrInvalidAnalysisType = errors.New("type must be: monthly_trends, budget_vs_actual, or category_analysis")

	// ErrInvalidTopN is returned when top_n is not a positive integer.
	ErrInvalidTopN = errors.New("top_n must be a positive integer")
)

// AnalysisErrorCode defines error codes for analysis errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalysisErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTimeFrame    AnalysisErrorCode = "ANL-010001"
	ErrCodeInvalidAnalysisType AnalysisErrorCode = "ANL-010002"
	ErrCodeInvalidTopN         AnalysisErrorCode = "ANL-010003"

	// Internal errors (99XXXX)
	ErrCodeAnalysisInternalError AnalysisErrorCode = "ANL-990001"
)

// AnalysisError represents an analysis error with code and message.
type AnalysisError struct {
	Code    AnalysisErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(code AnalysisErrorCode, message string, err error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
