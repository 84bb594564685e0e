package model

import "time"

// 商品（お菓子）。Quantityは在庫数で、0未満にならないこと。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Unit        string    `gorm:"type:varchar(20);not null;default:'kg'" json:"unit"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	Category    string    `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
