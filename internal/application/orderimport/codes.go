package orderimport

// Result codes returned by the import endpoints
const (
	CodeSuccess         = "SUCCESS"
	CodeOrderExists     = "ORDER_EXISTS"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeValidationError = "VALIDATION_ERROR"
	CodePartnerError    = "PARTNER_ERROR"
	CodeOrderError      = "ORDER_ERROR"
	CodeLinesError      = "LINES_ERROR"
	CodeSessionsError   = "SESSIONS_ERROR"
	CodeUserError       = "USER_ERROR"
	CodeUnknownError    = "UNKNOWN_ERROR"
)
