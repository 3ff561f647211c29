package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus 订单状态，只能沿着枚举顺序前进
type OrderStatus int8

const (
	OrderStatusNotPaid   OrderStatus = 10 // 未付款
	OrderStatusPaid      OrderStatus = 20 // 已付款
	OrderStatusCompleted OrderStatus = 30 // 已完成
	OrderStatusRefunded  OrderStatus = 40 // 已退款
)

// orderStatusChain 状态推进顺序
var orderStatusChain = []OrderStatus{
	OrderStatusNotPaid,
	OrderStatusPaid,
	OrderStatusCompleted,
	OrderStatusRefunded,
}

func (s OrderStatus) Valid() bool {
	for _, st := range orderStatusChain {
		if st == s {
			return true
		}
	}
	return false
}

// Next 返回下一个状态；已经是终态时返回 false
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range orderStatusChain {
		if st == s && i+1 < len(orderStatusChain) {
			return orderStatusChain[i+1], true
		}
	}
	return 0, false
}

func (s OrderStatus) CanAdvance() bool {
	_, ok := s.Next()
	return ok
}

// Order 订单主表
type Order struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn             string          `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	GroupBuyID          int64           `gorm:"column:group_buy_id;not null;index:idx_group_buy_id" json:"group_buy_id"`
	CustomerID          int64           `gorm:"column:customer_id;not null;index:idx_customer_id" json:"customer_id"`
	UnitID              string          `gorm:"column:unit_id;type:varchar(64);not null" json:"unit_id"` // 下单时选择的规格
	Quantity            int             `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Status              OrderStatus     `gorm:"column:status;not null;default:10" json:"status"`
	PartialRefundAmount decimal.Decimal `gorm:"column:partial_refund_amount;type:decimal(10,2);not null;default:0" json:"partial_refund_amount"`
	Description         string          `gorm:"column:description;type:varchar(255)" json:"description"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
