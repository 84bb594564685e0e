package model

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string `gorm:"type:varchar(100);not null" json:"username"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"column:password_hash;not null" json:"-"`
	Role          Role   `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	//メール確認済みになるまでログイン不可
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
