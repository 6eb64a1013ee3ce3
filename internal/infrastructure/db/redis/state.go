package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

const (
	stateTTL    = 10 * time.Minute
	statePrefix = "oauth_state:"
	opTimeout   = 3 * time.Second
)

// StateStore holds one-shot OAuth login state values in Redis.
// Key format: oauth_state:<hex nonce>, expiring after stateTTL.
type StateStore struct {
	client *redis.Client
}

// NewStateStore creates a StateStore wrapping the given Redis client.
func NewStateStore(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

// Issue mints a 32-byte random state value and stores it with a TTL.
func (s *StateStore) Issue(ctx context.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	state := hex.EncodeToString(buf)

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, statePrefix+state, "1", stateTTL).Err(); err != nil {
		return "", fmt.Errorf("%w: store state: %v", domain.ErrStore, err)
	}
	return state, nil
}

// Consume atomically removes state and reports whether it was known. GETDEL
// guarantees a state value authorizes at most one callback.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.GetDel(ctx, statePrefix+state).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: consume state: %v", domain.ErrStore, err)
	}
	return true, nil
}
