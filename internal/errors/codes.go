package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound        ErrorCode = "ACCOUNT_001"
	AccountInvalidID       ErrorCode = "ACCOUNT_002"
	AccountInvalidCurrency ErrorCode = "ACCOUNT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidID        ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed ErrorCode = "TRANSACTION_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound     ErrorCode = "BUDGET_001"
	BudgetInvalidID    ErrorCode = "BUDGET_002"
	BudgetInvalidMonth ErrorCode = "BUDGET_003"
)

// Report error codes (REPORT_*)
const (
	ReportNotFound         ErrorCode = "REPORT_001"
	ReportGenerationFailed ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid decimal amount",

	// Account errors
	AccountNotFound:        "Account not found",
	AccountInvalidID:       "Invalid account ID format",
	AccountInvalidCurrency: "Invalid currency code",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidID:        "Invalid transaction ID format",
	TransactionValidationFailed: "Transaction validation failed",

	// Budget errors
	BudgetNotFound:     "Budget not found",
	BudgetInvalidID:    "Invalid budget ID format",
	BudgetInvalidMonth: "Budget month must be between 1 and 12",

	// Report errors
	ReportNotFound:         "Monthly report not found",
	ReportGenerationFailed: "Monthly report generation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
