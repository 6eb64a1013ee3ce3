package ports

import "github.com/stnicholas-trust/staff-portal/internal/core/domain"

// TokenService issues and verifies signed session tokens. Verification is
// pure: no store is consulted, so a token stays valid for its full window
// even if the underlying record changes.
type TokenService interface {
	Issue(subjectID, role string) (string, error)
	Verify(token string) (*domain.Claims, error)
}
