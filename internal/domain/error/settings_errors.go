package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when a user has no stored settings yet.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidBudgetPeriod is returned when the period is not one of the known cadences.
	ErrInvalidBudgetPeriod = errors.New("budget_period must be: daily, weekly, monthly, quarterly, yearly, or custom")

	// ErrInvalidBudgetAmount is returned for negative or non-finite budget amounts.
	ErrInvalidBudgetAmount = errors.New("budget_amount must be a finite number greater than or equal to zero")

	// ErrInvalidCurrency is returned when the currency is not a three-letter code.
	ErrInvalidCurrency = errors.New("currency must be a three-letter ISO 4217 code")

	// ErrPremiumRequired is returned when a premium feature is used without a subscription.
	ErrPremiumRequired = errors.New("an active subscription or lifetime access is required")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetPeriod SettingsErrorCode = "STG-010001"
	ErrCodeInvalidBudgetAmount SettingsErrorCode = "STG-010002"
	ErrCodeInvalidCurrency     SettingsErrorCode = "STG-010003"

	// Access errors (03XXXX)
	ErrCodePremiumRequired SettingsErrorCode = "STG-030001"

	// Internal errors (99XXXX)
	ErrCodeSettingsInternalError SettingsErrorCode = "STG-990001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
