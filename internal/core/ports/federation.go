package ports

import (
	"context"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

// ProviderClient talks to the external identity provider. Implementations
// must bound every call with a timeout and surface failures as
// domain.ErrUpstream.
type ProviderClient interface {
	// LoginURL builds the provider authorization URL for the given one-shot
	// state value.
	LoginURL(state string) string
	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)
	// Profile fetches the external profile the access token belongs to.
	Profile(ctx context.Context, accessToken string) (*domain.ExternalProfile, error)
}

// StateStore persists one-shot login state values with a bounded lifetime.
type StateStore interface {
	// Issue mints and stores a fresh state value.
	Issue(ctx context.Context) (string, error)
	// Consume atomically checks and removes state, reporting whether it was
	// known. A second Consume of the same value reports false.
	Consume(ctx context.Context, state string) (bool, error)
}

// FederationService drives the authorization-code login flow end to end.
type FederationService interface {
	LoginURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code, state string) (string, *domain.User, error)
}
