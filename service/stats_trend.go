package service

import (
	"Tuanke/models"
	"Tuanke/types"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	trendLayoutDay   = "2006-01-02"
	trendLayoutMonth = "2006-01"
)

// computeTrend 按开团日期分桶的趋势序列，并带累计值。
// monthly 为 true 时按自然月分桶（查询不带日期范围的全量模式）。
// 分桶用服务器本地时区的日历日/月，未做 UTC 归一化
func computeTrend(groupBuys []*models.GroupBuy, facts []orderFact, monthly bool) []*types.TrendPoint {
	layout := trendLayoutDay
	if monthly {
		layout = trendLayoutMonth
	}

	bucketOf := func(t time.Time) string {
		return t.In(time.Local).Format(layout)
	}

	groupBuyBucket := make(map[int64]string, len(groupBuys))
	points := make(map[string]*types.TrendPoint)
	ensure := func(bucket string) *types.TrendPoint {
		p, ok := points[bucket]
		if !ok {
			p = &types.TrendPoint{
				Bucket:  bucket,
				Revenue: decimal.Zero,
				Profit:  decimal.Zero,
			}
			points[bucket] = p
		}
		return p
	}

	for _, gb := range groupBuys {
		bucket := bucketOf(gb.GroupBuyStartDate)
		groupBuyBucket[gb.ID] = bucket
		ensure(bucket).GroupBuyCount++
	}

	// 订单归到它所属团购的开团日期桶里，与日期过滤的口径一致
	for _, f := range facts {
		bucket, ok := groupBuyBucket[f.GroupBuyID]
		if !ok {
			continue
		}
		p := ensure(bucket)
		if f.effective() {
			p.OrderCount++
		}
		p.Revenue = p.Revenue.Add(f.revenue())
		p.Profit = p.Profit.Add(f.profit())
	}

	result := make([]*types.TrendPoint, 0, len(points))
	for _, p := range points {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Bucket < result[j].Bucket
	})

	// 累计序列
	cumGroupBuys, cumOrders := 0, 0
	cumRevenue, cumProfit := decimal.Zero, decimal.Zero
	for _, p := range result {
		cumGroupBuys += p.GroupBuyCount
		cumOrders += p.OrderCount
		cumRevenue = cumRevenue.Add(p.Revenue)
		cumProfit = cumProfit.Add(p.Profit)

		p.CumGroupBuyCount = cumGroupBuys
		p.CumOrderCount = cumOrders
		p.CumRevenue = cumRevenue
		p.CumProfit = cumProfit
	}

	return result
}
