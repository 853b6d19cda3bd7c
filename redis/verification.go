package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Email verification codes live in Redis with a short TTL instead of on the
// user row, so an expired code simply disappears.
const verificationTTL = 5 * time.Minute

// ErrCodeMismatch is returned when no code is stored or it does not match.
var ErrCodeMismatch = errors.New("verification code invalid or expired")

// VerificationStore issues and checks registration codes.
type VerificationStore struct {
	client *redis.Client
}

func NewVerificationStore(client *redis.Client) *VerificationStore {
	return &VerificationStore{client: client}
}

func verificationKey(userID uint) string {
	return fmt.Sprintf("verify:user:%d", userID)
}

// Put stores the code for a user, replacing any previous one.
func (s *VerificationStore) Put(ctx context.Context, userID uint, code string) error {
	return s.client.Set(ctx, verificationKey(userID), code, verificationTTL).Err()
}

// Consume checks the code and deletes it on success so it is single-use.
func (s *VerificationStore) Consume(ctx context.Context, userID uint, code string) error {
	key := verificationKey(userID)
	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrCodeMismatch
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrCodeMismatch
	}
	return s.client.Del(ctx, key).Err()
}
