// Package identity holds the verified caller of a request.
package identity

// Caller is an authenticated principal. Subject is the identity provider's
// user id, the same value stored as users.external_id.
type Caller struct {
	Subject string
	Email   string
}

// Present reports whether c carries a usable identity. A nil Caller is the
// absent identity.
func (c *Caller) Present() bool {
	return c != nil && c.Subject != ""
}
