package types

import (
	"Tuanke/models"
	"time"

	"github.com/shopspring/decimal"
)

// StatusMeta 状态展示信息，纯查表，不掺进状态机逻辑
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var OrderStatusMeta = map[models.OrderStatus]StatusMeta{
	models.OrderStatusNotPaid:   {Label: "未付款", Color: "orange"},
	models.OrderStatusPaid:      {Label: "已付款", Color: "blue"},
	models.OrderStatusCompleted: {Label: "已完成", Color: "green"},
	models.OrderStatusRefunded:  {Label: "已退款", Color: "red"},
}

type CreateOrderRequest struct {
	GroupBuyID  int64              `json:"group_buy_id" binding:"required"`
	UnitID      string             `json:"unit_id" binding:"required"`
	CustomerID  int64              `json:"customer_id" binding:"required"`
	Quantity    int                `json:"quantity" binding:"required"`
	Description string             `json:"description"`
	Status      models.OrderStatus `json:"status"` // 0 表示按默认未付款创建
}

type BatchCreateOrdersRequest struct {
	Orders []CreateOrderRequest `json:"orders" binding:"required"`
}

// BatchOrderFailure 批量下单中单条失败的明细
type BatchOrderFailure struct {
	Index  int                `json:"index"`
	Reason string             `json:"reason"`
	Item   CreateOrderRequest `json:"item"`
}

type BatchCreateOrdersResponse struct {
	SuccessCount int                 `json:"success_count"`
	FailCount    int                 `json:"fail_count"`
	FailedOrders []BatchOrderFailure `json:"failed_orders"`
}

// UpdateOrderRequest 仅未付款订单可修改，零值字段不更新
type UpdateOrderRequest struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

type PartialRefundRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type OrderListRequest struct {
	GroupBuyID int64              `form:"group_buy_id"`
	CustomerID int64              `form:"customer_id"`
	Status     models.OrderStatus `form:"status"`
	Page       int                `form:"page"`
	PageSize   int                `form:"page_size"`
}

// OrderDetail 订单 + 下单时规格快照算出的金额
type OrderDetail struct {
	ID                  int64              `json:"id"`
	OrderSn             string             `json:"order_sn"`
	GroupBuyID          int64              `json:"group_buy_id"`
	GroupBuyName        string             `json:"group_buy_name"`
	CustomerID          int64              `json:"customer_id"`
	CustomerName        string             `json:"customer_name"`
	UnitID              string             `json:"unit_id"`
	UnitLabel           string             `json:"unit_label"`
	UnitPrice           decimal.Decimal    `json:"unit_price"`
	Quantity            int                `json:"quantity"`
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	PartialRefundAmount decimal.Decimal    `json:"partial_refund_amount"`
	Status              models.OrderStatus `json:"status"`
	StatusMeta          StatusMeta         `json:"status_meta"`
	CanAdvance          bool               `json:"can_advance"`
	Description         string             `json:"description"`
	CreatedAt           time.Time          `json:"created_at"`
}

type OrderListResponse struct {
	Orders   []*OrderDetail `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
