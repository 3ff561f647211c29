package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomerAddress 客户地址（小区/片区），区域统计的分组维度
type CustomerAddress struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;type:varchar(128);not null;uniqueIndex:idx_address_name" json:"name"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CustomerAddress) TableName() string {
	return "customer_addresses"
}

// Customer 客户
type Customer struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;type:varchar(64);not null;index:idx_customer_name" json:"name"`
	Phone     string         `gorm:"column:phone;type:varchar(32)" json:"phone"`
	AddressID int64          `gorm:"column:address_id;index:idx_address_id" json:"address_id"`
	Remark    string         `gorm:"column:remark;type:varchar(255)" json:"remark"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
