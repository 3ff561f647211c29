package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Supplier 供货商
type Supplier struct {
	ID        int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string                      `gorm:"column:name;type:varchar(128);not null;index:idx_supplier_name" json:"name"`
	Phone     string                      `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Wechat    string                      `gorm:"column:wechat;type:varchar(64)" json:"wechat"`
	Address   string                      `gorm:"column:address;type:varchar(255)" json:"address"`
	Remark    string                      `gorm:"column:remark;type:varchar(255)" json:"remark"`
	Images    datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
