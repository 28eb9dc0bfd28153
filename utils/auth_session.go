package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// RegisterAuthSession records an issued token hash in Redis with a TTL
// matching the token's lifetime.
func RegisterAuthSession(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to register auth session: %w", err)
	}
	return nil
}

// AuthSessionExists reports whether a token hash still has a live session.
func AuthSessionExists(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	_, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check auth session: %w", err)
	}
	return true, nil
}

// RevokeAuthSession removes a token hash's session, invalidating the token
// before its natural expiry.
func RevokeAuthSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+tokenHash).Err()
}
