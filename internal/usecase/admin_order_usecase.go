package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/metrics"
	repo "sweetshop/internal/repository"
)

type AdminOrderUsecase struct {
	tx        repo.TransactionManager
	users     repo.UserRepository
	auditRepo repo.AuditLogRepository
}

func NewAdminOrderUsecase(tx repo.TransactionManager, users repo.UserRepository, auditRepo repo.AuditLogRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, users: users, auditRepo: auditRepo}
}

// 管理者の注文一覧に載せる行。誰の注文かの表示名付き。
type AdminOrderOutput struct {
	OrderOutput
	Username string `json:"username"`
}

// 全ユーザーの注文一覧（新しい順）
func (u *AdminOrderUsecase) List(ctx context.Context, page int, limit int) ([]AdminOrderOutput, error) {
	if page < 1 {
		return []AdminOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []AdminOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []AdminOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListAll(ctx, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//表示名をまとめて引く
		userIDs := make([]int64, 0, len(orders))
		for _, o := range orders {
			userIDs = append(userIDs, o.UserID)
		}
		userMap, err := u.users.FindByIDs(ctx, userIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]AdminOrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, AdminOrderOutput{
				OrderOutput: toOrderOutput(o, items),
				Username:    userMap[o.UserID].Username,
			})
		}
		return nil
	})

	if err != nil {
		return []AdminOrderOutput{}, err
	}
	return outs, nil
}

// ConfirmDelivery は入力された4桁コードを照合して配達済みにする。
// 状態遷移はPlaced→Deliveredの一方向のみ。ロール確認はmiddleware側で済ませ、
// ここは操作した管理者IDを引数で受け取るだけにする。
func (u *AdminOrderUsecase) ConfirmDelivery(ctx context.Context, actorAdminUserID int64, orderID int64, enteredCode string) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	//空入力はここで弾く（何も書き換えない）
	enteredCode = strings.TrimSpace(enteredCode)
	if enteredCode == "" {
		return NewHTTPError(http.StatusBadRequest, "missing code")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 注文取得
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//文字列同士で照合（入力は手打ちなので文字列で来る）
		if enteredCode != strconv.Itoa(o.OrderCode) {
			return NewHTTPError(http.StatusBadRequest, "invalid code")
		}

		if err := r.Orders().MarkDelivered(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// ★監査ログ（CONFIRM_DELIVERY）
		beforeJSON := fmt.Sprintf(`{"delivered":%t}`, o.Delivered)
		afterJSON := `{"delivered":true}`
		if err := u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  actorAdminUserID,
			Action:       model.AuditActionConfirmDelivery,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   beforeJSON,
			AfterJSON:    afterJSON,
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		return err
	}

	metrics.DeliveriesConfirmed.Inc()
	return nil
}
