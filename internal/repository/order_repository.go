package repository

import (
	"context"

	"sweetshop/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	//配達済みにする（false→trueの一方向）
	MarkDelivered(ctx context.Context, orderID int64) error

	//管理者用の注文一覧（全ユーザー、新しい順）
	ListAll(ctx context.Context, page int, limit int) ([]model.Order, int64, error)
}
