package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品，团购引用的基础商品档案
type Product struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"column:name;type:varchar(128);not null;index:idx_product_name" json:"name"`
	ProductTypeID int64          `gorm:"column:product_type_id;not null;index:idx_product_type_id" json:"product_type_id"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductType 商品分类
type ProductType struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;type:varchar(64);not null;uniqueIndex:idx_type_name" json:"name"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProductType) TableName() string {
	return "product_types"
}
