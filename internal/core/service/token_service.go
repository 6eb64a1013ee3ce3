package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

const defaultSessionTTL = 2 * time.Hour

// TokenService issues and verifies HS256 session tokens signed with one
// process-wide secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given subject and role, expiring
// exactly one session window after issuance.
func (s *TokenService) Issue(subjectID, role string) (string, error) {
	now := time.Now().UTC()
	claims := &domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token. Any failure — bad signature, wrong
// algorithm, malformed input, or an expired window — collapses to
// domain.ErrUnauthenticated so callers cannot distinguish the stages.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}
