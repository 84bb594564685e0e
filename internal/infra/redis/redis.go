package redis

import (
	"github.com/redis/go-redis/v9"
)

// Connect はRedisクライアントを返す。
func Connect(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
