package service

import (
	"Tuanke/models"
	"Tuanke/pkg/log"
	"Tuanke/types"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// orderFact 统计用的订单快照：订单 + 下单规格的价格/成本。
// 未付款订单在取数阶段就被排除，这里只会出现已付款/已完成/已退款
type orderFact struct {
	OrderID       int64
	GroupBuyID    int64
	CustomerID    int64
	Status        models.OrderStatus
	Quantity      int
	Price         decimal.Decimal
	CostPrice     decimal.Decimal
	PartialRefund decimal.Decimal
	CreatedAt     time.Time
}

func (f orderFact) fullyRefunded() bool {
	return f.Status == models.OrderStatusRefunded
}

// effective 是否计入订单量/营收（已付款或已完成，且未整单退款）
func (f orderFact) effective() bool {
	return f.Status == models.OrderStatusPaid || f.Status == models.OrderStatusCompleted
}

func (f orderFact) totalAmount() decimal.Decimal {
	return f.Price.Mul(decimal.NewFromInt(int64(f.Quantity)))
}

// revenue 营收：整单退款为 0，否则 单价*数量 - 部分退款
func (f orderFact) revenue() decimal.Decimal {
	if f.fullyRefunded() {
		return decimal.Zero
	}
	return f.totalAmount().Sub(f.PartialRefund)
}

// profit 利润：整单退款时成本全亏，否则 (单价-成本)*数量 - 部分退款
func (f orderFact) profit() decimal.Decimal {
	cost := f.CostPrice.Mul(decimal.NewFromInt(int64(f.Quantity)))
	if f.fullyRefunded() {
		return cost.Neg()
	}
	return f.totalAmount().Sub(cost).Sub(f.PartialRefund)
}

// refundAmount 退款额：整单退款按全额计，否则取累计部分退款
func (f orderFact) refundAmount() decimal.Decimal {
	if f.fullyRefunded() {
		return f.totalAmount()
	}
	return f.PartialRefund
}

// buildFacts 把订单和所属团购拼成统计快照。规格已不存在的订单
// 记一条日志后跳过，不让脏数据拖垮整个统计
func buildFacts(orders []*models.Order, groupBuys map[int64]*models.GroupBuy) []orderFact {
	facts := make([]orderFact, 0, len(orders))
	for _, order := range orders {
		groupBuy, ok := groupBuys[order.GroupBuyID]
		if !ok {
			continue
		}
		unit, ok := groupBuy.FindUnit(order.UnitID)
		if !ok {
			log.L.Warn("order references missing unit, skipped in stats",
				zap.Int64("order_id", order.ID),
				zap.String("unit_id", order.UnitID),
			)
			continue
		}
		facts = append(facts, orderFact{
			OrderID:       order.ID,
			GroupBuyID:    order.GroupBuyID,
			CustomerID:    order.CustomerID,
			Status:        order.Status,
			Quantity:      order.Quantity,
			Price:         unit.Price,
			CostPrice:     unit.CostPrice,
			PartialRefund: order.PartialRefundAmount,
			CreatedAt:     order.CreatedAt,
		})
	}
	return facts
}

// summarize 汇总一组订单快照。空集合时全部指标为 0
func summarize(facts []orderFact) types.StatsSummary {
	s := types.StatsSummary{
		TotalRevenue:              decimal.Zero,
		TotalProfit:               decimal.Zero,
		ProfitMargin:              decimal.Zero,
		TotalRefundAmount:         decimal.Zero,
		AverageCustomerOrderValue: decimal.Zero,
		MultiPurchaseRatio:        decimal.Zero,
	}

	customerOrders := make(map[int64]int)
	for _, f := range facts {
		s.TotalRevenue = s.TotalRevenue.Add(f.revenue())
		s.TotalProfit = s.TotalProfit.Add(f.profit())
		s.TotalRefundAmount = s.TotalRefundAmount.Add(f.refundAmount())
		if f.effective() {
			s.OrderCount++
			customerOrders[f.CustomerID]++
		}
	}

	s.UniqueCustomerCount = len(customerOrders)
	for _, n := range customerOrders {
		if n >= 2 {
			s.MultiPurchaseCustomerCount++
		}
	}

	if !s.TotalRevenue.IsZero() {
		s.ProfitMargin = s.TotalProfit.
			Div(s.TotalRevenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	if s.UniqueCustomerCount > 0 {
		s.AverageCustomerOrderValue = s.TotalRevenue.
			Div(decimal.NewFromInt(int64(s.UniqueCustomerCount))).
			Round(2)
		s.MultiPurchaseRatio = decimal.NewFromInt(int64(s.MultiPurchaseCustomerCount)).
			Div(decimal.NewFromInt(int64(s.UniqueCustomerCount))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return s
}

// purchaseFrequency 购买次数直方图：购买了 N 次的客户有多少个
func purchaseFrequency(facts []orderFact) []types.FrequencyBucket {
	customerOrders := make(map[int64]int)
	for _, f := range facts {
		if f.effective() {
			customerOrders[f.CustomerID]++
		}
	}

	countCustomers := make(map[int]int)
	for _, n := range customerOrders {
		countCustomers[n]++
	}

	buckets := make([]types.FrequencyBucket, 0, len(countCustomers))
	for purchaseCount, customerCount := range countCustomers {
		buckets = append(buckets, types.FrequencyBucket{
			PurchaseCount: purchaseCount,
			CustomerCount: customerCount,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PurchaseCount < buckets[j].PurchaseCount
	})
	return buckets
}

// regionalSales 按客户地址分组的客户数。地址未知的归入空串之外的 "未知" 组
func regionalSales(facts []orderFact, addressOf map[int64]string) []types.RegionalSalesItem {
	regionCustomers := make(map[string]map[int64]struct{})
	for _, f := range facts {
		if !f.effective() {
			continue
		}
		addr, ok := addressOf[f.CustomerID]
		if !ok || addr == "" {
			addr = "未知"
		}
		if regionCustomers[addr] == nil {
			regionCustomers[addr] = make(map[int64]struct{})
		}
		regionCustomers[addr][f.CustomerID] = struct{}{}
	}

	items := make([]types.RegionalSalesItem, 0, len(regionCustomers))
	for addr, customers := range regionCustomers {
		items = append(items, types.RegionalSalesItem{
			Address:       addr,
			CustomerCount: len(customers),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CustomerCount != items[j].CustomerCount {
			return items[i].CustomerCount > items[j].CustomerCount
		}
		return items[i].Address < items[j].Address
	})
	return items
}

// rankItems 按指定指标取前 N，稳定排序，指标相同时保持原有顺序
func rankItems(items []*types.RankingItem, metric string, limit int) []*types.RankingItem {
	sort.SliceStable(items, func(i, j int) bool {
		switch metric {
		case types.RankMetricTotalSales:
			return items[i].TotalRevenue.GreaterThan(items[j].TotalRevenue)
		case types.RankMetricTotalProfit:
			return items[i].TotalProfit.GreaterThan(items[j].TotalProfit)
		default: // order_count
			return items[i].OrderCount > items[j].OrderCount
		}
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
