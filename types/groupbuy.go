package types

import (
	"Tuanke/models"
	"time"

	"github.com/shopspring/decimal"
)

type GroupBuyUnitPayload struct {
	Unit      string          `json:"unit" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

type CreateGroupBuyRequest struct {
	Name              string                `json:"name" binding:"required"`
	Description       string                `json:"description"`
	GroupBuyStartDate string                `json:"group_buy_start_date" binding:"required"` // 2006-01-02
	SupplierID        int64                 `json:"supplier_id" binding:"required"`
	ProductID         int64                 `json:"product_id" binding:"required"`
	Units             []GroupBuyUnitPayload `json:"units" binding:"required"`
	Images            []string              `json:"images"`
}

type UpdateGroupBuyRequest struct {
	Description       string   `json:"description"`
	GroupBuyStartDate string   `json:"group_buy_start_date"`
	Images            []string `json:"images"`
}

type GroupBuyListRequest struct {
	SupplierID int64  `form:"supplier_id"`
	ProductID  int64  `form:"product_id"`
	Keyword    string `form:"keyword"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type GroupBuyItem struct {
	ID                int64                 `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	GroupBuyStartDate time.Time             `json:"group_buy_start_date"`
	SupplierID        int64                 `json:"supplier_id"`
	SupplierName      string                `json:"supplier_name"`
	ProductID         int64                 `json:"product_id"`
	ShareCode         string                `json:"share_code"`
	Units             []models.GroupBuyUnit `json:"units"`
	Images            []string              `json:"images"`
	ImageURLs         []string              `json:"image_urls"`
}

type GroupBuyListResponse struct {
	GroupBuys []*GroupBuyItem `json:"group_buys"`
	Total     int64           `json:"total"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
}
