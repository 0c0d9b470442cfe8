// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy is a UGC policy with tables allowed, built once at init. The
// bluemonday policies are safe for concurrent use.
var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").Globally()
	return p
}()

// Sanitize strips unsafe markup (scripts, event handlers, javascript:
// URLs) from user-supplied HTML, keeping common formatting intact.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
