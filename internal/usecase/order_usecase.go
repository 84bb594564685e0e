package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/metrics"
	repo "sweetshop/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Unit      string `json:"unit"`
	ImageURL  string `json:"image_url"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	TotalAmount int64             `json:"total_amount"`
	Delivered   bool              `json:"delivered"`
	OrderCode   int               `json:"order_code"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

// 配達確認用の4桁コード（1000〜9999）。
// 生存中の注文同士での重複チェックはしない。
func newOrderCode() int {
	return 1000 + rand.Intn(9000)
}

// PlaceOrder はカートの中身から注文を1件作る。
// 明細は1件＝1個。在庫減算→注文作成→カート全削除まで1トランザクション。
// 途中で失敗したら減算済みの在庫も巻き戻る（部分確定を残さない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート明細取得
		cartItems, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		//カートの追加順に在庫を1つずつ減らす
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total int64 = 0
		now := time.Now()

		for _, ci := range cartItems {
			//商品の存在確認（消えた商品は即中断）
			_, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("product not found: %s", ci.Name))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//在庫減算（足りないなら false）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, 1)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				metrics.OutOfStockRejections.Inc()
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("out of stock: %s", ci.Name))
			}

			//スナップショット（カート追加時点の値をそのまま凍結）
			orderItems = append(orderItems, model.OrderItem{
				ProductID: ci.ProductID,
				Name:      ci.Name,
				Price:     ci.Price,
				Unit:      ci.Unit,
				ImageURL:  ci.ImageURL,
				CreatedAt: now,
			})

			total += ci.Price
		}

		// 注文作成
		order := model.Order{
			UserID:      userID,
			TotalAmount: total,
			Delivered:   false,
			OrderCode:   newOrderCode(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空にする（再注文防止）
		if err := r.CartItems().ClearByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	metrics.OrdersPlaced.Inc()
	return out, nil
}

// 自分の注文履歴。台帳をuser_idで引くだけで、別コピーは持たない。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//ページングはまずは固定で取る
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Unit:      it.Unit,
			ImageURL:  it.ImageURL,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Delivered:   o.Delivered,
		OrderCode:   o.OrderCode,
		CreatedAt:   o.CreatedAt,
		Items:       outItems,
	}
}
