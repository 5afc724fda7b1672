package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

var timeNow = time.Now

// Revocations 是登出後的 token 黑名單，key 在 token 原本到期時自動失效
type Revocations struct {
	cache Cache
}

func NewRevocations(c Cache) *Revocations {
	return &Revocations{cache: c}
}

// Revoke 將 tokenID 列入黑名單直到 expiresAt；已過期的 token 不需記錄
func (r *Revocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("Revoke: empty token id")
	}
	ttl := expiresAt.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := r.cache.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}

// IsRevoked 查詢 tokenID 是否已被登出
func (r *Revocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.cache.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("IsRevoked: %w", err)
	}
	return true, nil
}
