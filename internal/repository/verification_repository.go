package repository

import (
	"context"
	"time"
)

// メール確認コードの一時保存（TTL付き）。
type VerificationCodeStore interface {
	//コードを保存（既存は上書き）
	SaveCode(ctx context.Context, email string, code string, ttl time.Duration) error

	//コードを取得。無ければErrNotFound
	GetCode(ctx context.Context, email string) (string, error)

	//コードを削除
	DeleteCode(ctx context.Context, email string) error

	//再送クールダウン。設定できたらtrue、まだ冷えてなければfalse
	SetResendCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error)
}
