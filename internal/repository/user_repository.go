package repository

import (
	"context"

	"sweetshop/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//メール確認済みにする
	MarkEmailVerified(ctx context.Context, userID int64) error
	//複数ユーザーをまとめて取得（管理者の注文一覧で表示名を引く）
	FindByIDs(ctx context.Context, userIDs []int64) (map[int64]model.User, error)
}
