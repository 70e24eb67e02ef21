package common

const (
	// UserIDHeader identifies the caller when token auth is disabled.
	UserIDHeader = "X-User-Id"

	RequestIDHeader = "X-Request-Id"
)
