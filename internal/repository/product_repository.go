package repository

import (
	"context"
	"errors"

	"sweetshop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// unique制約に当たったとき
var ErrDuplicate = errors.New("duplicate")

// 一覧検索
type ProductListQuery struct {
	Page  int
	Limit int
	//nameとcategoryを部分一致で検索
	Q    string
	Sort string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
