// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/backoffice/db"
	"github.com/dev-mohitbeniwal/backoffice/model"
)

// CacheService keeps the short-lived auth state in Redis.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) SetVerification(ctx context.Context, token string, verification model.Verification, ttl time.Duration) error {
	return db.CacheVerification(ctx, token, &verification, ttl)
}

func (c *CacheService) GetVerification(ctx context.Context, token string) (*model.Verification, error) {
	return db.GetCachedVerification(ctx, token)
}

func (c *CacheService) IncrementVerificationAttempts(ctx context.Context, token string, ttl time.Duration) (int64, error) {
	return db.IncrementVerificationAttempts(ctx, token, ttl)
}

func (c *CacheService) DeleteVerification(ctx context.Context, token string) error {
	return db.DeleteCachedVerification(ctx, token)
}

func (c *CacheService) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return db.CacheSession(ctx, sessionID, userID, ttl)
}

func (c *CacheService) GetSession(ctx context.Context, sessionID string) (string, error) {
	return db.GetCachedSession(ctx, sessionID)
}

func (c *CacheService) DeleteSession(ctx context.Context, sessionID string) error {
	return db.DeleteCachedSession(ctx, sessionID)
}
