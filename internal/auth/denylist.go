package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "revoked:"

// Revoker marks identities as revoked so outstanding tokens stop working.
type Revoker interface {
	Revoke(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string) (bool, error)
}

// Denylist keeps revoked user ids in Redis. Entries outlive the longest
// refresh token, after that the identity row is gone anyway and login
// is impossible.
type Denylist struct {
	redis *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{redis: client}
}

func (d *Denylist) Revoke(ctx context.Context, userID string) error {
	return d.redis.Set(ctx, denylistPrefix+userID, "1", RefreshTokenTTL+time.Hour).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := d.redis.Exists(ctx, denylistPrefix+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
