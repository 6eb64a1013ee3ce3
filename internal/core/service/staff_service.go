package service

import (
	"context"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// StaffService implements the roster operations. Both operations require a
// management identity; the check runs against the verified claims before any
// store access.
type StaffService struct {
	repo ports.UserRepository
}

func NewStaffService(repo ports.UserRepository) *StaffService {
	return &StaffService{repo: repo}
}

// List returns the full roster projected to {id, display_name, role},
// ordered by display name ascending.
func (s *StaffService) List(ctx context.Context, claims *domain.Claims) ([]domain.StaffMember, error) {
	if err := requireManagement(claims); err != nil {
		return nil, err
	}

	users, err := s.repo.ListByDisplayName(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.StaffMember, 0, len(users))
	for i := range users {
		members = append(members, users[i].Roster())
	}
	return members, nil
}

// UpdateRole changes the target user's role. There is no path for a
// non-management identity to escalate its own role.
func (s *StaffService) UpdateRole(ctx context.Context, claims *domain.Claims, targetID, newRole string) error {
	if err := requireManagement(claims); err != nil {
		return err
	}
	if targetID == "" || !domain.ValidRole(newRole) {
		return domain.ErrInvalidInput
	}
	return s.repo.UpdateRole(ctx, targetID, newRole)
}

func requireManagement(claims *domain.Claims) error {
	if claims == nil || claims.Subject == "" {
		return domain.ErrUnauthenticated
	}
	if claims.Role != domain.RoleManagement {
		return domain.ErrForbidden
	}
	return nil
}
