package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// FederationService drives the authorization-code exchange with the external
// identity provider and resolves the returned identity to a local account.
type FederationService struct {
	provider ports.ProviderClient
	states   ports.StateStore
	repo     ports.UserRepository
	tokens   ports.TokenService
	log      zerolog.Logger
}

func NewFederationService(provider ports.ProviderClient, states ports.StateStore, repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *FederationService {
	return &FederationService{
		provider: provider,
		states:   states,
		repo:     repo,
		tokens:   tokens,
		log:      log,
	}
}

// LoginURL mints a one-shot state value and returns the provider
// authorization URL to redirect the caller to. No account state is created.
func (s *FederationService) LoginURL(ctx context.Context) (string, error) {
	state, err := s.states.Issue(ctx)
	if err != nil {
		return "", err
	}
	return s.provider.LoginURL(state), nil
}

// HandleCallback completes a login attempt: it validates the callback
// parameters, exchanges the code, fetches the external profile, resolves or
// creates the local account, and issues a session token.
func (s *FederationService) HandleCallback(ctx context.Context, code, state string) (string, *domain.User, error) {
	if code == "" {
		return "", nil, domain.ErrInvalidInput
	}

	ok, err := s.states.Consume(ctx, state)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidInput
	}

	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", nil, err
	}

	profile, err := s.provider.Profile(ctx, accessToken)
	if err != nil {
		return "", nil, err
	}

	// Lookup-or-create is a single atomic upsert keyed on the external id;
	// the store's unique index makes it idempotent under racing callbacks.
	user, err := s.repo.UpsertExternal(ctx, profile.ID, profile.DisplayName)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("role", user.Role).
		Msg("federated login completed")

	return token, user, nil
}
