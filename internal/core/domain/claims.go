package domain

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported session token claims shape. Subject carries
// the user id; Role is the role recorded at issuance time. Because tokens are
// stateless, a role change on the underlying record takes effect only when the
// current token expires or the user re-authenticates.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

// UserID returns the subject the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}
