package dto

// Error codes emitted by the system endpoints and middleware. The import
// endpoints never use these: they answer 200 with their own coded result
// document regardless of outcome.
const (
	// ErrCodeUnauthorized is used when the API key is missing or invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeUnavailable is used when a readiness dependency is down
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)
