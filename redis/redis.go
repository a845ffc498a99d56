package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func sessionKey(jti string) string {
	return "session:" + jti
}

// RegisterSession records a session token id so the auth middleware
// can tell live sessions from revoked ones. The key expires with the
// cookie.
func RegisterSession(jti, login string, ttl time.Duration) error {
	return Client.Set(Ctx, sessionKey(jti), login, ttl).Err()
}

// SessionActive reports whether the token id is still registered.
func SessionActive(jti string) (bool, error) {
	n, err := Client.Exists(Ctx, sessionKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeSession drops the token id; the cookie becomes useless even
// before it expires.
func RevokeSession(jti string) error {
	return Client.Del(Ctx, sessionKey(jti)).Err()
}
