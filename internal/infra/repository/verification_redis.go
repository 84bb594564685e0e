package repository

import (
	"context"
	"errors"
	"time"

	repo "sweetshop/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	verifyKeyPrefix   = "verify:"
	cooldownKeyPrefix = "verify_cooldown:"
)

// メール確認コードをRedisにTTL付きで置く。
type VerificationRedisStore struct {
	client *redis.Client
}

func NewVerificationRedisStore(client *redis.Client) *VerificationRedisStore {
	return &VerificationRedisStore{client: client}
}

func (s *VerificationRedisStore) SaveCode(ctx context.Context, email string, code string, ttl time.Duration) error {
	return s.client.Set(ctx, verifyKeyPrefix+email, code, ttl).Err()
}

func (s *VerificationRedisStore) GetCode(ctx context.Context, email string) (string, error) {
	v, err := s.client.Get(ctx, verifyKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *VerificationRedisStore) DeleteCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifyKeyPrefix+email).Err()
}

// SETNXでクールダウンを張る。張れなければまだ再送不可。
func (s *VerificationRedisStore) SetResendCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, cooldownKeyPrefix+email, "1", ttl).Result()
}
