package ports

import (
	"context"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

// StaffService exposes the management-gated roster operations. Both methods
// enforce the role requirement themselves from the verified claims.
type StaffService interface {
	List(ctx context.Context, claims *domain.Claims) ([]domain.StaffMember, error)
	UpdateRole(ctx context.Context, claims *domain.Claims, targetID, newRole string) error
}
