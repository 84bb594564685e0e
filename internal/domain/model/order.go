package model

import "time"

// 注文。Deliveredはfalse→trueの一方向のみ。
// OrderCodeは配達確認用の4桁コード（1000〜9999）。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	TotalAmount int64     `gorm:"not null" json:"total_amount"`
	Delivered   bool      `gorm:"not null;default:false" json:"delivered"`
	OrderCode   int       `gorm:"not null" json:"order_code"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
