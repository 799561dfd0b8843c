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
	ValidationInvalidSort   ErrorCode = "VALIDATION_006"
)

// Receipt error codes (RECEIPT_*)
const (
	ReceiptNotFound        ErrorCode = "RECEIPT_001"
	ReceiptInvalidID       ErrorCode = "RECEIPT_002"
	ReceiptInvalidCategory ErrorCode = "RECEIPT_003"
	ReceiptUpdateFailed    ErrorCode = "RECEIPT_004"
	ReceiptDeleteFailed    ErrorCode = "RECEIPT_005"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsInvalidWindow ErrorCode = "ANALYTICS_001"
	AnalyticsInvalidLimit  ErrorCode = "ANALYTICS_002"
	AnalyticsNotReady      ErrorCode = "ANALYTICS_003"
)

// Receipt store error codes (STORE_*)
const (
	StoreUnavailable     ErrorCode = "STORE_001"
	StoreTimeout         ErrorCode = "STORE_002"
	StoreBadResponse     ErrorCode = "STORE_003"
	StoreCircuitOpen     ErrorCode = "STORE_004"
	StoreStaleDiscarded  ErrorCode = "STORE_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidSort:   "Invalid sort key",

	// Receipt errors
	ReceiptNotFound:        "Receipt not found",
	ReceiptInvalidID:       "Invalid receipt ID format",
	ReceiptInvalidCategory: "Unknown receipt item category",
	ReceiptUpdateFailed:    "Receipt update was rejected by the store",
	ReceiptDeleteFailed:    "Receipt deletion was rejected by the store",

	// Analytics errors
	AnalyticsInvalidWindow: "Analytics window must be a positive number of months",
	AnalyticsInvalidLimit:  "Recent receipts limit must be a positive number",
	AnalyticsNotReady:      "Receipt snapshot has not been loaded yet",

	// Store errors
	StoreUnavailable:    "Receipt store is unavailable",
	StoreTimeout:        "Receipt store request timed out",
	StoreBadResponse:    "Receipt store returned a malformed response",
	StoreCircuitOpen:    "Receipt store circuit breaker is open",
	StoreStaleDiscarded: "Receipt store response was superseded and discarded",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
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
