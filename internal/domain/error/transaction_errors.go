package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned for negative or non-finite amounts.
	ErrInvalidTransactionAmount = errors.New("amount must be a finite number greater than or equal to zero")

	// ErrInvalidTransactionType is returned when the type filter is neither expense nor income.
	ErrInvalidTransactionType = errors.New("type must be: expense or income")

	// ErrInvalidTransactionDate is returned when a date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrTitleRequired is returned when the title is blank.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong is returned when the title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title too long")
)

// MaxTitleLength is the longest accepted transaction title, in runes.
const MaxTitleLength = 255

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010003"
	ErrCodeTitleRequired            TransactionErrorCode = "TXN-010004"
	ErrCodeTitleTooLong             TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
