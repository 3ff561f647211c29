package service

import (
	"testing"

	"Tuanke/models"
	"Tuanke/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func paidFact(customerID int64, price, cost string, qty int) orderFact {
	return orderFact{
		CustomerID: customerID,
		Status:     models.OrderStatusPaid,
		Quantity:   qty,
		Price:      dec(price),
		CostPrice:  dec(cost),
	}
}

func TestOrderFactRevenueAndProfit(t *testing.T) {
	// 单价 100 成本 60 数量 2
	f := paidFact(1, "100", "60", 2)
	require.True(t, f.revenue().Equal(dec("200")))
	require.True(t, f.profit().Equal(dec("80")))
	require.True(t, f.refundAmount().IsZero())

	// 部分退款 50 后：营收 150，利润 30，退款 50
	f.PartialRefund = dec("50")
	require.True(t, f.revenue().Equal(dec("150")))
	require.True(t, f.profit().Equal(dec("30")))
	require.True(t, f.refundAmount().Equal(dec("50")))
}

func TestOrderFactFullRefund(t *testing.T) {
	f := paidFact(1, "100", "60", 2)
	f.Status = models.OrderStatusRefunded

	// 整单退款：营收 0，成本全亏，退款按全额计
	require.True(t, f.revenue().IsZero())
	require.True(t, f.profit().Equal(dec("-120")))
	require.True(t, f.refundAmount().Equal(dec("200")))
	require.False(t, f.effective())
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil)

	require.Equal(t, 0, s.OrderCount)
	require.Equal(t, 0, s.UniqueCustomerCount)
	require.Equal(t, 0, s.MultiPurchaseCustomerCount)
	require.True(t, s.TotalRevenue.IsZero())
	require.True(t, s.TotalProfit.IsZero())
	require.True(t, s.ProfitMargin.IsZero())
	require.True(t, s.TotalRefundAmount.IsZero())
	require.True(t, s.AverageCustomerOrderValue.IsZero())
	require.True(t, s.MultiPurchaseRatio.IsZero())
}

func TestSummarize(t *testing.T) {
	refunded := paidFact(3, "100", "60", 1)
	refunded.Status = models.OrderStatusRefunded

	facts := []orderFact{
		paidFact(1, "100", "60", 2), // 营收 200 利润 80
		paidFact(1, "100", "60", 1), // 营收 100 利润 40
		paidFact(2, "50", "20", 2),  // 营收 100 利润 60
		refunded,                    // 营收 0 利润 -60 退款 100
	}

	s := summarize(facts)

	// 整单退款的订单不计入订单量和客户数
	require.Equal(t, 3, s.OrderCount)
	require.Equal(t, 2, s.UniqueCustomerCount)
	require.Equal(t, 1, s.MultiPurchaseCustomerCount)

	require.True(t, s.TotalRevenue.Equal(dec("400")), "got %s", s.TotalRevenue)
	require.True(t, s.TotalProfit.Equal(dec("120")), "got %s", s.TotalProfit)
	require.True(t, s.TotalRefundAmount.Equal(dec("100")), "got %s", s.TotalRefundAmount)

	// 120/400*100 = 30%
	require.True(t, s.ProfitMargin.Equal(dec("30")), "got %s", s.ProfitMargin)
	// 400/2 = 200
	require.True(t, s.AverageCustomerOrderValue.Equal(dec("200")), "got %s", s.AverageCustomerOrderValue)
	// 1/2*100 = 50%
	require.True(t, s.MultiPurchaseRatio.Equal(dec("50")), "got %s", s.MultiPurchaseRatio)
}

func TestSummarizeZeroRevenueMargin(t *testing.T) {
	refunded := paidFact(1, "100", "60", 1)
	refunded.Status = models.OrderStatusRefunded

	// 营收为 0 时利润率直接置 0，不做除法
	s := summarize([]orderFact{refunded})
	require.True(t, s.TotalRevenue.IsZero())
	require.True(t, s.ProfitMargin.IsZero())
	require.True(t, s.TotalProfit.Equal(dec("-60")))
}

func TestBuildFactsSkipsMissingUnit(t *testing.T) {
	gb := &models.GroupBuy{
		ID: 1,
		Units: []models.GroupBuyUnit{
			{ID: "u1", Unit: "箱", Price: dec("100"), CostPrice: dec("60")},
		},
	}
	orders := []*models.Order{
		{ID: 1, GroupBuyID: 1, CustomerID: 1, UnitID: "u1", Quantity: 2, Status: models.OrderStatusPaid},
		{ID: 2, GroupBuyID: 1, CustomerID: 1, UnitID: "gone", Quantity: 1, Status: models.OrderStatusPaid},
		{ID: 3, GroupBuyID: 99, CustomerID: 1, UnitID: "u1", Quantity: 1, Status: models.OrderStatusPaid},
	}

	facts := buildFacts(orders, map[int64]*models.GroupBuy{1: gb})

	require.Len(t, facts, 1)
	require.Equal(t, int64(1), facts[0].OrderID)
	require.True(t, facts[0].Price.Equal(dec("100")))
	require.True(t, facts[0].CostPrice.Equal(dec("60")))
}

func TestPurchaseFrequency(t *testing.T) {
	refunded := paidFact(4, "10", "5", 1)
	refunded.Status = models.OrderStatusRefunded

	facts := []orderFact{
		paidFact(1, "10", "5", 1),
		paidFact(1, "10", "5", 1),
		paidFact(1, "10", "5", 1),
		paidFact(2, "10", "5", 1),
		paidFact(3, "10", "5", 1),
		refunded, // 不计入
	}

	buckets := purchaseFrequency(facts)

	require.Equal(t, []types.FrequencyBucket{
		{PurchaseCount: 1, CustomerCount: 2},
		{PurchaseCount: 3, CustomerCount: 1},
	}, buckets)
}

func TestRegionalSales(t *testing.T) {
	facts := []orderFact{
		paidFact(1, "10", "5", 1),
		paidFact(1, "10", "5", 1), // 同一客户只算一次
		paidFact(2, "10", "5", 1),
		paidFact(3, "10", "5", 1),
		paidFact(4, "10", "5", 1), // 无地址
	}
	addressOf := map[int64]string{
		1: "东区",
		2: "东区",
		3: "西区",
	}

	items := regionalSales(facts, addressOf)

	require.Equal(t, []types.RegionalSalesItem{
		{Address: "东区", CustomerCount: 2},
		{Address: "未知", CustomerCount: 1},
		{Address: "西区", CustomerCount: 1},
	}, items)
}

func TestRankItems(t *testing.T) {
	items := []*types.RankingItem{
		{EntityID: 1, Name: "a", OrderCount: 3, TotalRevenue: dec("100"), TotalProfit: dec("10")},
		{EntityID: 2, Name: "b", OrderCount: 5, TotalRevenue: dec("80"), TotalProfit: dec("40")},
		{EntityID: 3, Name: "c", OrderCount: 5, TotalRevenue: dec("120"), TotalProfit: dec("20")},
	}

	byCount := rankItems(append([]*types.RankingItem{}, items...), types.RankMetricOrderCount, 0)
	// 稳定排序：订单量相同的 b、c 保持原有相对顺序
	require.Equal(t, []int64{2, 3, 1}, []int64{byCount[0].EntityID, byCount[1].EntityID, byCount[2].EntityID})

	bySales := rankItems(append([]*types.RankingItem{}, items...), types.RankMetricTotalSales, 2)
	require.Len(t, bySales, 2)
	require.Equal(t, int64(3), bySales[0].EntityID)
	require.Equal(t, int64(1), bySales[1].EntityID)

	byProfit := rankItems(append([]*types.RankingItem{}, items...), types.RankMetricTotalProfit, 0)
	require.Equal(t, int64(2), byProfit[0].EntityID)
}
