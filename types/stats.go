package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsSummary 各统计视图共用的汇总指标。
// 分组键下没有订单时所有数值为 0，列表为空，不会出现 null
type StatsSummary struct {
	OrderCount                 int             `json:"order_count"`
	TotalRevenue               decimal.Decimal `json:"total_revenue"`
	TotalProfit                decimal.Decimal `json:"total_profit"`
	ProfitMargin               decimal.Decimal `json:"profit_margin"` // 百分比
	TotalRefundAmount          decimal.Decimal `json:"total_refund_amount"`
	UniqueCustomerCount        int             `json:"unique_customer_count"`
	AverageCustomerOrderValue  decimal.Decimal `json:"average_customer_order_value"`
	MultiPurchaseCustomerCount int             `json:"multi_purchase_customer_count"`
	MultiPurchaseRatio         decimal.Decimal `json:"multi_purchase_ratio"` // 百分比
}

// FrequencyBucket 购买次数 -> 该次数的客户数
type FrequencyBucket struct {
	PurchaseCount int `json:"purchase_count"`
	CustomerCount int `json:"customer_count"`
}

type RegionalSalesItem struct {
	Address       string `json:"address"`
	CustomerCount int    `json:"customer_count"`
}

type StatsDateRange struct {
	StartDate string `form:"start_date" json:"start_date"` // 2006-01-02，作用于团购开团日期
	EndDate   string `form:"end_date" json:"end_date"`
}

type SupplierOverviewRequest struct {
	StatsDateRange
	Keyword  string `form:"keyword"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type SupplierOverviewRow struct {
	SupplierID    int64  `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
	GroupBuyCount int    `json:"group_buy_count"`
	StatsSummary
}

type SupplierOverviewResponse struct {
	Rows     []*SupplierOverviewRow `json:"rows"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

type GroupBuyOverviewRequest struct {
	StatsDateRange
	SupplierID    int64 `form:"supplier_id"`
	MergeSameName bool  `form:"merge_same_name"`
	Page          int   `form:"page"`
	PageSize      int   `form:"page_size"`
}

// GroupBuyOverviewRow 单个团购或合并后的同名团购组
type GroupBuyOverviewRow struct {
	GroupBuyID  int64     `json:"group_buy_id,omitempty"` // 合并模式下为 0
	Name        string    `json:"name"`
	SupplierID  int64     `json:"supplier_id,omitempty"`
	LaunchCount int       `json:"launch_count"`
	FirstLaunch time.Time `json:"first_launch"`
	StatsSummary
}

type GroupBuyOverviewResponse struct {
	Rows  []*GroupBuyOverviewRow `json:"rows"`
	Total int                    `json:"total"`
}

type MergedGroupBuyDetailRequest struct {
	StatsDateRange
	Name       string `form:"name" binding:"required"`
	SupplierID int64  `form:"supplier_id"` // 可选，限制合并范围
}

// GroupBuyLaunchItem 合并视图下每一期的开团记录
type GroupBuyLaunchItem struct {
	GroupBuyID        int64     `json:"group_buy_id"`
	GroupBuyStartDate time.Time `json:"group_buy_start_date"`
	StatsSummary
}

type MergedGroupBuyDetail struct {
	Name       string `json:"name"`
	SupplierID int64  `json:"supplier_id,omitempty"`
	StatsSummary
	PurchaseFrequency     []FrequencyBucket    `json:"customer_purchase_frequency"`
	RegionalSales         []RegionalSalesItem  `json:"regional_sales"`
	GroupBuyLaunchHistory []GroupBuyLaunchItem `json:"group_buy_launch_history"`
}

type ProductOverviewRow struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	GroupBuyCount int    `json:"group_buy_count"`
	StatsSummary
}

type CustomerOverviewRequest struct {
	StatsDateRange
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type CustomerOverviewRow struct {
	CustomerID        int64           `json:"customer_id"`
	CustomerName      string          `json:"customer_name"`
	AddressName       string          `json:"address_name"`
	OrderCount        int             `json:"order_count"`
	TotalSpend        decimal.Decimal `json:"total_spend"`
	TotalRefundAmount decimal.Decimal `json:"total_refund_amount"`
	LastOrderAt       *time.Time      `json:"last_order_at,omitempty"`
}

type CustomerOverviewResponse struct {
	Rows  []*CustomerOverviewRow `json:"rows"`
	Total int                    `json:"total"`
}

type RegionalStatsRow struct {
	Address       string          `json:"address"`
	CustomerCount int             `json:"customer_count"`
	OrderCount    int             `json:"order_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// 排行榜指标
const (
	RankMetricOrderCount  = "order_count"
	RankMetricTotalSales  = "total_sales"
	RankMetricTotalProfit = "total_profit"
)

type RankingRequest struct {
	StatsDateRange
	Entity string `form:"entity"` // supplier / group_buy / product
	Metric string `form:"metric"`
	Limit  int    `form:"limit"`
}

type RankingItem struct {
	EntityID     int64           `json:"entity_id"`
	Name         string          `json:"name"`
	OrderCount   int             `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// TrendPoint 一个时间桶的量和对应的累计值
type TrendPoint struct {
	Bucket           string          `json:"bucket"` // 2006-01-02 或 2006-01
	GroupBuyCount    int             `json:"group_buy_count"`
	OrderCount       int             `json:"order_count"`
	Revenue          decimal.Decimal `json:"revenue"`
	Profit           decimal.Decimal `json:"profit"`
	CumGroupBuyCount int             `json:"cum_group_buy_count"`
	CumOrderCount    int             `json:"cum_order_count"`
	CumRevenue       decimal.Decimal `json:"cum_revenue"`
	CumProfit        decimal.Decimal `json:"cum_profit"`
}

type TrendResponse struct {
	Granularity string        `json:"granularity"` // day / month
	Points      []*TrendPoint `json:"points"`
}

type DashboardSummary struct {
	TodayOrderCount int             `json:"today_order_count"`
	TodayRevenue    decimal.Decimal `json:"today_revenue"`
	Week            StatsSummary    `json:"week"`
	Month           StatsSummary    `json:"month"`
	TotalGroupBuys  int             `json:"total_group_buys"`
	TotalCustomers  int             `json:"total_customers"`
}
