package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist guarda jtis revogados até a expiração natural do token.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(redisURL string) (*RedisDenylist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisDenylist{client: redis.NewClient(opts)}, nil
}

func denylistKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token já expirado, nada a guardar
		return nil
	}
	return d.client.Set(ctx, denylistKey(jti), "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
