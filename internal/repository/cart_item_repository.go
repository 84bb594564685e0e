package repository

import (
	"context"

	"sweetshop/internal/domain/model"
)

// カートはuser_idに直接ぶら下がる明細の集合。
// 同じ商品は1明細まで（トグルで追加/削除）。
type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	Exists(ctx context.Context, userID int64, productID int64) (bool, error)
	Add(ctx context.Context, item model.CartItem) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	ClearByUserID(ctx context.Context, userID int64) error
}
