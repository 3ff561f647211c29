package models

import "time"

// Admin 后台账号
type Admin struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:idx_username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
