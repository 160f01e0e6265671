package helper

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hall_manager/database"

	"github.com/redis/go-redis/v9"
)

// Token revocation lives in redis: a denylist entry per jti for single-token
// logout, and a per-account cutoff timestamp for logout-all. Tokens issued
// before the cutoff are rejected.

const tokenTTL = 12 * time.Hour

func revokedKey(jti string) string {
	return "revoked_token:" + jti
}

func cutoffKey(accountId uint) string {
	return fmt.Sprintf("token_cutoff:%d", accountId)
}

func RevokeToken(ctx context.Context, jti string) error {
	return database.Redis.Set(ctx, revokedKey(jti), "1", tokenTTL).Err()
}

func RevokeAllTokens(ctx context.Context, accountId uint) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	return database.Redis.Set(ctx, cutoffKey(accountId), now, tokenTTL).Err()
}

// IsTokenRevoked checks both the denylist and the account cutoff. Redis being
// down fails closed for writes but open for reads so a cache outage does not
// lock every operator out.
func IsTokenRevoked(ctx context.Context, accountId uint, jti string, issuedAt int64) bool {
	if database.Redis == nil {
		return false
	}

	if _, err := database.Redis.Get(ctx, revokedKey(jti)).Result(); err == nil {
		return true
	} else if err != redis.Nil {
		return false
	}

	cutoffStr, err := database.Redis.Get(ctx, cutoffKey(accountId)).Result()
	if err != nil {
		return false
	}
	cutoff, err := strconv.ParseInt(cutoffStr, 10, 64)
	if err != nil {
		return false
	}
	return issuedAt <= cutoff
}
