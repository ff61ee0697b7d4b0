package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/redis/go-redis/v9"

	"jarin-io/api/pkg/util"
)

func GenerateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}

	return hex.EncodeToString(b)
}

// InvalidateToken blacklists a token until its natural expiry would have
// passed.
func InvalidateToken(db *redis.Client, tokenString string) error {
	return db.Set(context.Background(), blacklistKey(tokenString), true, AccessTokenExpirationTime).Err()
}

// IsTokenValid reports whether a token is absent from the blacklist.
func IsTokenValid(db *redis.Client, tokenString string) bool {
	_, err := db.Get(context.Background(), blacklistKey(tokenString)).Result()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		util.Log.WithError(err).Warn("blacklist lookup failed")
		return false
	}

	return false
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}
