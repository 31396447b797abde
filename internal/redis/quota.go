package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Quota key pattern: logoquota:{email}:{YYYY-MM}. The month in the key
// scopes the counter; the TTL only cleans up stale keys.
const quotaKeyTTL = 35 * 24 * time.Hour

// LogoQuota counts logo generations per user per calendar month with an
// atomic increment-and-check.
type LogoQuota struct {
	client *goredis.Client
}

func NewLogoQuota(client *goredis.Client) *LogoQuota {
	return &LogoQuota{client: client}
}

var quotaScript = goredis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local ttl = tonumber(ARGV[2])

	local current = redis.call('INCR', key)
	if current == 1 then
		redis.call('EXPIRE', key, ttl)
	end

	if current > limit then
		return 0
	end
	return 1
`)

// Allow consumes one generation from the user's monthly allowance and
// reports whether it fit under the limit.
func (q *LogoQuota) Allow(ctx context.Context, email string, limit int) (bool, error) {
	key := fmt.Sprintf("logoquota:%s:%s", email, time.Now().UTC().Format("2006-01"))

	result, err := quotaScript.Run(ctx, q.client, []string{key}, limit, int(quotaKeyTTL.Seconds())).Int()
	if err != nil {
		return false, fmt.Errorf("logo quota check failed: %w", err)
	}
	return result == 1, nil
}
