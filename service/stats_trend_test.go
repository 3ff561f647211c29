package service

import (
	"testing"
	"time"

	"Tuanke/models"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeTrendDaily(t *testing.T) {
	groupBuys := []*models.GroupBuy{
		{ID: 1, GroupBuyStartDate: day("2025-03-01")},
		{ID: 2, GroupBuyStartDate: day("2025-03-01")},
		{ID: 3, GroupBuyStartDate: day("2025-03-05")},
	}
	facts := []orderFact{
		{GroupBuyID: 1, CustomerID: 1, Status: models.OrderStatusPaid, Quantity: 1, Price: dec("100"), CostPrice: dec("60")},
		{GroupBuyID: 2, CustomerID: 2, Status: models.OrderStatusPaid, Quantity: 2, Price: dec("50"), CostPrice: dec("20")},
		{GroupBuyID: 3, CustomerID: 3, Status: models.OrderStatusPaid, Quantity: 1, Price: dec("30"), CostPrice: dec("10")},
	}

	points := computeTrend(groupBuys, facts, false)

	require.Len(t, points, 2)

	require.Equal(t, "2025-03-01", points[0].Bucket)
	require.Equal(t, 2, points[0].GroupBuyCount)
	require.Equal(t, 2, points[0].OrderCount)
	require.True(t, points[0].Revenue.Equal(dec("200")))
	require.True(t, points[0].Profit.Equal(dec("100")))

	require.Equal(t, "2025-03-05", points[1].Bucket)
	require.Equal(t, 1, points[1].GroupBuyCount)
	require.Equal(t, 1, points[1].OrderCount)

	// 累计值单调递增
	require.Equal(t, 2, points[0].CumGroupBuyCount)
	require.Equal(t, 3, points[1].CumGroupBuyCount)
	require.Equal(t, 3, points[1].CumOrderCount)
	require.True(t, points[1].CumRevenue.Equal(dec("230")))
	require.True(t, points[1].CumProfit.Equal(dec("120")))
}

func TestComputeTrendMonthly(t *testing.T) {
	groupBuys := []*models.GroupBuy{
		{ID: 1, GroupBuyStartDate: day("2025-01-03")},
		{ID: 2, GroupBuyStartDate: day("2025-01-28")},
		{ID: 3, GroupBuyStartDate: day("2025-02-10")},
	}

	points := computeTrend(groupBuys, nil, true)

	require.Len(t, points, 2)
	require.Equal(t, "2025-01", points[0].Bucket)
	require.Equal(t, 2, points[0].GroupBuyCount)
	require.Equal(t, "2025-02", points[1].Bucket)
	require.Equal(t, 3, points[1].CumGroupBuyCount)
}

func TestComputeTrendRefundedOrder(t *testing.T) {
	groupBuys := []*models.GroupBuy{
		{ID: 1, GroupBuyStartDate: day("2025-03-01")},
	}
	facts := []orderFact{
		{GroupBuyID: 1, CustomerID: 1, Status: models.OrderStatusRefunded, Quantity: 1, Price: dec("100"), CostPrice: dec("60")},
	}

	points := computeTrend(groupBuys, facts, false)

	require.Len(t, points, 1)
	// 整单退款不计订单量，但成本亏损反映在利润上
	require.Equal(t, 0, points[0].OrderCount)
	require.True(t, points[0].Revenue.IsZero())
	require.True(t, points[0].Profit.Equal(dec("-60")))
}
