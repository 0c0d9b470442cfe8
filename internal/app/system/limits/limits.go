// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBody is the maximum size for a JSON request body. Every API
	// request is a small document; anything near this limit is abuse.
	MaxJSONBody = 1 << 20 // 1 MB
)
