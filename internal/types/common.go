package types

// HTTP Header Constants
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
)

// MIME types accepted by the contact endpoint.
const (
	MIMEApplicationJSON = "application/json"
	MIMEFormURLEncoded  = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
)
