package ports

import (
	"context"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

// UserRepository defines the persistence operations the core requires from
// the user store. Implementations must enforce uniqueness on username and on
// external identity id, and must make UpsertExternal atomic so that two
// racing federated logins for the same never-seen identity resolve to a
// single record.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpsertExternal looks up the user keyed on externalID, creating it with
	// the default role and the given display name when absent.
	UpsertExternal(ctx context.Context, externalID, displayName string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	// ListByDisplayName returns all users ordered by display name ascending.
	ListByDisplayName(ctx context.Context) ([]domain.User, error)
}
