package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// MatchCache is the slice of the cache the match path needs. The Redis
// implementation degrades to a bypass when the server is unreachable.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const matchCachePrefix = "match:users:"

// MatchCachePattern matches every cached match result; used for
// invalidation when any skill profile changes.
const MatchCachePattern = matchCachePrefix + "*"

// MatchCacheKey derives a stable key from the normalized requested
// names. Order matters: "python,django" and "django,python" rank the
// same users but are distinct requests with distinct readiness rows,
// so they hash separately.
func MatchCacheKey(normalized []string) string {
	sum := sha256.Sum256([]byte(strings.Join(normalized, ",")))
	return matchCachePrefix + hex.EncodeToString(sum[:])
}
