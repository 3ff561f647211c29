package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GroupBuyUnit 团购里的一个规格，价格和成本在创建时固化
type GroupBuyUnit struct {
	ID        string          `json:"id"`
	Unit      string          `json:"unit"` // 规格名称，如 "5斤装"
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// GroupBuy 团购活动。同名团购可以多次开团，统计时可按名称合并
type GroupBuy struct {
	ID                int64                                `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string                               `gorm:"column:name;type:varchar(128);not null;index:idx_name" json:"name"`
	Description       string                               `gorm:"column:description;type:text" json:"description"`
	GroupBuyStartDate time.Time                            `gorm:"column:group_buy_start_date;not null;index:idx_start_date" json:"group_buy_start_date"`
	SupplierID        int64                                `gorm:"column:supplier_id;not null;index:idx_supplier_id" json:"supplier_id"`
	ProductID         int64                                `gorm:"column:product_id;not null;index:idx_product_id" json:"product_id"`
	ShareCode         string                               `gorm:"column:share_code;type:varchar(32)" json:"share_code"`
	Units             datatypes.JSONSlice[GroupBuyUnit]    `gorm:"column:units" json:"units"`
	Images            datatypes.JSONSlice[string]          `gorm:"column:images" json:"images"`
	CreatedAt         time.Time                            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt                       `gorm:"index" json:"-"`
}

func (GroupBuy) TableName() string {
	return "group_buys"
}

// FindUnit 按规格 id 查找，下单时用于校验 unit 一定存在
func (g *GroupBuy) FindUnit(unitID string) (*GroupBuyUnit, bool) {
	for i := range g.Units {
		if g.Units[i].ID == unitID {
			return &g.Units[i], true
		}
	}
	return nil, false
}
