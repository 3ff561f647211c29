package service

import (
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	supplierOverviewCacheKey = "stats:supplier_overview:%s"
	supplierOverviewCacheTTL = 60 * time.Second
)

type StatsService struct {
	Redis       *redis.Client
	OrderDAO    *dao.Order
	GroupBuyDAO *dao.GroupBuy
	SupplierDAO *dao.Supplier
	ProductDAO  *dao.Product
	CustomerDAO *dao.Customer
	AddressDAO  *dao.CustomerAddress
}

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	GetSupplierOverview(ctx context.Context, req *types.SupplierOverviewRequest) (*types.SupplierOverviewResponse, error)
	GetGroupBuyOverview(ctx context.Context, req *types.GroupBuyOverviewRequest) (*types.GroupBuyOverviewResponse, error)
	GetMergedGroupBuyDetail(ctx context.Context, req *types.MergedGroupBuyDetailRequest) (*types.MergedGroupBuyDetail, error)
	GetProductOverview(ctx context.Context, dateRange types.StatsDateRange) ([]*types.ProductOverviewRow, error)
	GetCustomerOverview(ctx context.Context, req *types.CustomerOverviewRequest) (*types.CustomerOverviewResponse, error)
	GetRegionalStats(ctx context.Context, dateRange types.StatsDateRange) ([]*types.RegionalStatsRow, error)
	GetRanking(ctx context.Context, req *types.RankingRequest) ([]*types.RankingItem, error)
	GetTrend(ctx context.Context, dateRange types.StatsDateRange) (*types.TrendResponse, error)
	GetDashboard(ctx context.Context) (*types.DashboardSummary, error)
}

// parseDateRange 解析日期窗口。终点取当天 23:59:59，保证闭区间
func parseDateRange(r types.StatsDateRange) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if r.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", r.StartDate, time.Local)
		if err != nil {
			return nil, nil, response.NewValidationError("start_date 格式错误，应为 2006-01-02")
		}
		start = &t
	}
	if r.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", r.EndDate, time.Local)
		if err != nil {
			return nil, nil, response.NewValidationError("end_date 格式错误，应为 2006-01-02")
		}
		t = t.Add(24*time.Hour - time.Second)
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, response.NewValidationError("end_date 不能早于 start_date")
	}
	return start, end, nil
}

// loadFacts 取出过滤条件内的团购及其全部非未付款订单快照
func (s *StatsService) loadFacts(ctx context.Context, filter dao.GroupBuyFilter) ([]*models.GroupBuy, []orderFact, error) {
	groupBuys, err := s.GroupBuyDAO.ListByFilter(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(groupBuys))
	groupBuyMap := make(map[int64]*models.GroupBuy, len(groupBuys))
	for _, gb := range groupBuys {
		ids = append(ids, gb.ID)
		groupBuyMap[gb.ID] = gb
	}

	orders, err := s.OrderDAO.ListByGroupBuyIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return groupBuys, buildFacts(orders, groupBuyMap), nil
}

func (s *StatsService) GetSupplierOverview(ctx context.Context, req *types.SupplierOverviewRequest) (*types.SupplierOverviewResponse, error) {
	// 同参数 60 秒内直接走缓存
	reqKey := fmt.Sprintf("%s|%s|%s|%d|%d", req.Keyword, req.StartDate, req.EndDate, req.Page, req.PageSize)
	cacheKey := fmt.Sprintf(supplierOverviewCacheKey, fmt.Sprintf("%x", md5.Sum([]byte(reqKey))))
	if raw, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached types.SupplierOverviewResponse
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return &cached, nil
		}
	}

	start, end, err := parseDateRange(req.StatsDateRange)
	if err != nil {
		return nil, err
	}

	suppliers, total, err := s.SupplierDAO.ListPage(ctx, req.Keyword, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	rows := make([]*types.SupplierOverviewRow, 0, len(suppliers))
	for _, supplier := range suppliers {
		groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{
			SupplierID: supplier.ID,
			StartDate:  start,
			EndDate:    end,
		})
		if err != nil {
			return nil, err
		}
		rows = append(rows, &types.SupplierOverviewRow{
			SupplierID:    supplier.ID,
			SupplierName:  supplier.Name,
			GroupBuyCount: len(groupBuys),
			StatsSummary:  summarize(facts),
		})
	}

	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	resp := &types.SupplierOverviewResponse{
		Rows:     rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if raw, err := json.Marshal(resp); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, raw, supplierOverviewCacheTTL).Err(); err != nil {
			log.L.Warn("cache supplier overview failed", zap.Error(err))
		}
	}
	return resp, nil
}

func (s *StatsService) GetGroupBuyOverview(ctx context.Context, req *types.GroupBuyOverviewRequest) (*types.GroupBuyOverviewResponse, error) {
	start, end, err := parseDateRange(req.StatsDateRange)
	if err != nil {
		return nil, err
	}

	groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{
		SupplierID: req.SupplierID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, err
	}

	factsByGroupBuy := make(map[int64][]orderFact)
	for _, f := range facts {
		factsByGroupBuy[f.GroupBuyID] = append(factsByGroupBuy[f.GroupBuyID], f)
	}

	rows := make([]*types.GroupBuyOverviewRow, 0)
	if req.MergeSameName {
		// 同名团购合并成一个逻辑实体。仅按名称字符串分组，
		// 除非显式传了 supplier_id，否则允许跨供货商合并
		type mergedGroup struct {
			name        string
			groupBuys   []*models.GroupBuy
			facts       []orderFact
			firstLaunch time.Time
		}
		order := make([]string, 0)
		merged := make(map[string]*mergedGroup)
		for _, gb := range groupBuys {
			mg, ok := merged[gb.Name]
			if !ok {
				mg = &mergedGroup{name: gb.Name, firstLaunch: gb.GroupBuyStartDate}
				merged[gb.Name] = mg
				order = append(order, gb.Name)
			}
			mg.groupBuys = append(mg.groupBuys, gb)
			mg.facts = append(mg.facts, factsByGroupBuy[gb.ID]...)
			if gb.GroupBuyStartDate.Before(mg.firstLaunch) {
				mg.firstLaunch = gb.GroupBuyStartDate
			}
		}
		for _, name := range order {
			mg := merged[name]
			rows = append(rows, &types.GroupBuyOverviewRow{
				Name:         mg.name,
				SupplierID:   req.SupplierID,
				LaunchCount:  len(mg.groupBuys),
				FirstLaunch:  mg.firstLaunch,
				StatsSummary: summarize(mg.facts),
			})
		}
	} else {
		for _, gb := range groupBuys {
			rows = append(rows, &types.GroupBuyOverviewRow{
				GroupBuyID:   gb.ID,
				Name:         gb.Name,
				SupplierID:   gb.SupplierID,
				LaunchCount:  1,
				FirstLaunch:  gb.GroupBuyStartDate,
				StatsSummary: summarize(factsByGroupBuy[gb.ID]),
			})
		}
	}

	total := len(rows)
	if req.Page > 0 && req.PageSize > 0 {
		from := (req.Page - 1) * req.PageSize
		if from >= len(rows) {
			rows = rows[:0]
		} else {
			to := from + req.PageSize
			if to > len(rows) {
				to = len(rows)
			}
			rows = rows[from:to]
		}
	}

	return &types.GroupBuyOverviewResponse{Rows: rows, Total: total}, nil
}

func (s *StatsService) GetMergedGroupBuyDetail(ctx context.Context, req *types.MergedGroupBuyDetailRequest) (*types.MergedGroupBuyDetail, error) {
	start, end, err := parseDateRange(req.StatsDateRange)
	if err != nil {
		return nil, err
	}

	groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{
		Name:       req.Name,
		SupplierID: req.SupplierID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return nil, err
	}

	addressOf, err := s.customerAddressMap(ctx)
	if err != nil {
		return nil, err
	}

	factsByGroupBuy := make(map[int64][]orderFact)
	for _, f := range facts {
		factsByGroupBuy[f.GroupBuyID] = append(factsByGroupBuy[f.GroupBuyID], f)
	}

	history := make([]types.GroupBuyLaunchItem, 0, len(groupBuys))
	for _, gb := range groupBuys {
		history = append(history, types.GroupBuyLaunchItem{
			GroupBuyID:        gb.ID,
			GroupBuyStartDate: gb.GroupBuyStartDate,
			StatsSummary:      summarize(factsByGroupBuy[gb.ID]),
		})
	}

	return &types.MergedGroupBuyDetail{
		Name:                  req.Name,
		SupplierID:            req.SupplierID,
		StatsSummary:          summarize(facts),
		PurchaseFrequency:     purchaseFrequency(facts),
		RegionalSales:         regionalSales(facts, addressOf),
		GroupBuyLaunchHistory: history,
	}, nil
}

func (s *StatsService) GetProductOverview(ctx context.Context, dateRange types.StatsDateRange) ([]*types.ProductOverviewRow, error) {
	start, end, err := parseDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	products, err := s.ProductDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	productName := make(map[int64]string, len(products))
	for _, p := range products {
		productName[p.ID] = p.Name
	}

	factsByGroupBuy := make(map[int64][]orderFact)
	for _, f := range facts {
		factsByGroupBuy[f.GroupBuyID] = append(factsByGroupBuy[f.GroupBuyID], f)
	}

	type productGroup struct {
		groupBuyCount int
		facts         []orderFact
	}
	order := make([]int64, 0)
	byProduct := make(map[int64]*productGroup)
	for _, gb := range groupBuys {
		pg, ok := byProduct[gb.ProductID]
		if !ok {
			pg = &productGroup{}
			byProduct[gb.ProductID] = pg
			order = append(order, gb.ProductID)
		}
		pg.groupBuyCount++
		pg.facts = append(pg.facts, factsByGroupBuy[gb.ID]...)
	}

	rows := make([]*types.ProductOverviewRow, 0, len(order))
	for _, productID := range order {
		pg := byProduct[productID]
		rows = append(rows, &types.ProductOverviewRow{
			ProductID:     productID,
			ProductName:   productName[productID],
			GroupBuyCount: pg.groupBuyCount,
			StatsSummary:  summarize(pg.facts),
		})
	}
	return rows, nil
}

func (s *StatsService) GetCustomerOverview(ctx context.Context, req *types.CustomerOverviewRequest) (*types.CustomerOverviewResponse, error) {
	start, end, err := parseDateRange(req.StatsDateRange)
	if err != nil {
		return nil, err
	}

	_, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	customers, err := s.CustomerDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	addressOf, err := s.customerAddressMap(ctx)
	if err != nil {
		return nil, err
	}

	factsByCustomer := make(map[int64][]orderFact)
	for _, f := range facts {
		factsByCustomer[f.CustomerID] = append(factsByCustomer[f.CustomerID], f)
	}

	rows := make([]*types.CustomerOverviewRow, 0, len(customers))
	for _, customer := range customers {
		row := &types.CustomerOverviewRow{
			CustomerID:        customer.ID,
			CustomerName:      customer.Name,
			AddressName:       addressOf[customer.ID],
			TotalSpend:        decimal.Zero,
			TotalRefundAmount: decimal.Zero,
		}
		for _, f := range factsByCustomer[customer.ID] {
			if f.effective() {
				row.OrderCount++
			}
			row.TotalSpend = row.TotalSpend.Add(f.revenue())
			row.TotalRefundAmount = row.TotalRefundAmount.Add(f.refundAmount())
			if row.LastOrderAt == nil || f.CreatedAt.After(*row.LastOrderAt) {
				t := f.CreatedAt
				row.LastOrderAt = &t
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSpend.GreaterThan(rows[j].TotalSpend)
	})

	total := len(rows)
	if req.Page > 0 && req.PageSize > 0 {
		from := (req.Page - 1) * req.PageSize
		if from >= len(rows) {
			rows = rows[:0]
		} else {
			to := from + req.PageSize
			if to > len(rows) {
				to = len(rows)
			}
			rows = rows[from:to]
		}
	}

	return &types.CustomerOverviewResponse{Rows: rows, Total: total}, nil
}

func (s *StatsService) GetRegionalStats(ctx context.Context, dateRange types.StatsDateRange) ([]*types.RegionalStatsRow, error) {
	start, end, err := parseDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	_, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	addressOf, err := s.customerAddressMap(ctx)
	if err != nil {
		return nil, err
	}

	type regionAgg struct {
		customers map[int64]struct{}
		orders    int
		revenue   decimal.Decimal
	}
	byRegion := make(map[string]*regionAgg)
	for _, f := range facts {
		addr := addressOf[f.CustomerID]
		if addr == "" {
			addr = "未知"
		}
		agg, ok := byRegion[addr]
		if !ok {
			agg = &regionAgg{customers: make(map[int64]struct{}), revenue: decimal.Zero}
			byRegion[addr] = agg
		}
		if f.effective() {
			agg.orders++
			agg.customers[f.CustomerID] = struct{}{}
		}
		agg.revenue = agg.revenue.Add(f.revenue())
	}

	rows := make([]*types.RegionalStatsRow, 0, len(byRegion))
	for addr, agg := range byRegion {
		rows = append(rows, &types.RegionalStatsRow{
			Address:       addr,
			CustomerCount: len(agg.customers),
			OrderCount:    agg.orders,
			TotalRevenue:  agg.revenue,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CustomerCount != rows[j].CustomerCount {
			return rows[i].CustomerCount > rows[j].CustomerCount
		}
		return rows[i].Address < rows[j].Address
	})
	return rows, nil
}

func (s *StatsService) GetRanking(ctx context.Context, req *types.RankingRequest) ([]*types.RankingItem, error) {
	start, end, err := parseDateRange(req.StatsDateRange)
	if err != nil {
		return nil, err
	}

	groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	factsByGroupBuy := make(map[int64][]orderFact)
	for _, f := range facts {
		factsByGroupBuy[f.GroupBuyID] = append(factsByGroupBuy[f.GroupBuyID], f)
	}

	// 实体 -> 名称与所属团购的映射
	type entityAgg struct {
		id    int64
		name  string
		facts []orderFact
	}
	order := make([]int64, 0)
	entities := make(map[int64]*entityAgg)

	appendFacts := func(id int64, name string, fs []orderFact) {
		agg, ok := entities[id]
		if !ok {
			agg = &entityAgg{id: id, name: name}
			entities[id] = agg
			order = append(order, id)
		}
		agg.facts = append(agg.facts, fs...)
	}

	switch req.Entity {
	case "supplier":
		suppliers, err := s.SupplierDAO.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		supplierName := make(map[int64]string, len(suppliers))
		for _, sp := range suppliers {
			supplierName[sp.ID] = sp.Name
		}
		for _, gb := range groupBuys {
			appendFacts(gb.SupplierID, supplierName[gb.SupplierID], factsByGroupBuy[gb.ID])
		}
	case "product":
		products, err := s.ProductDAO.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		productName := make(map[int64]string, len(products))
		for _, p := range products {
			productName[p.ID] = p.Name
		}
		for _, gb := range groupBuys {
			appendFacts(gb.ProductID, productName[gb.ProductID], factsByGroupBuy[gb.ID])
		}
	default: // group_buy
		for _, gb := range groupBuys {
			appendFacts(gb.ID, gb.Name, factsByGroupBuy[gb.ID])
		}
	}

	items := make([]*types.RankingItem, 0, len(order))
	for _, id := range order {
		agg := entities[id]
		summary := summarize(agg.facts)
		items = append(items, &types.RankingItem{
			EntityID:     agg.id,
			Name:         agg.name,
			OrderCount:   summary.OrderCount,
			TotalRevenue: summary.TotalRevenue,
			TotalProfit:  summary.TotalProfit,
		})
	}

	return rankItems(items, req.Metric, limit), nil
}

func (s *StatsService) GetTrend(ctx context.Context, dateRange types.StatsDateRange) (*types.TrendResponse, error) {
	start, end, err := parseDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	groupBuys, facts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	// 不带日期范围的全量查询按月分桶，否则按天
	monthly := start == nil && end == nil
	granularity := "day"
	if monthly {
		granularity = "month"
	}

	return &types.TrendResponse{
		Granularity: granularity,
		Points:      computeTrend(groupBuys, facts, monthly),
	}, nil
}

func (s *StatsService) GetDashboard(ctx context.Context) (*types.DashboardSummary, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	weekAgo := today.AddDate(0, 0, -6)
	monthAgo := today.AddDate(0, 0, -29)

	_, todayFacts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: &today})
	if err != nil {
		return nil, err
	}
	_, weekFacts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: &weekAgo})
	if err != nil {
		return nil, err
	}
	_, monthFacts, err := s.loadFacts(ctx, dao.GroupBuyFilter{StartDate: &monthAgo})
	if err != nil {
		return nil, err
	}

	allGroupBuys, err := s.GroupBuyDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.CustomerDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	todaySummary := summarize(todayFacts)
	return &types.DashboardSummary{
		TodayOrderCount: todaySummary.OrderCount,
		TodayRevenue:    todaySummary.TotalRevenue,
		Week:            summarize(weekFacts),
		Month:           summarize(monthFacts),
		TotalGroupBuys:  len(allGroupBuys),
		TotalCustomers:  len(customers),
	}, nil
}

// customerAddressMap 客户 id -> 地址名
func (s *StatsService) customerAddressMap(ctx context.Context) (map[int64]string, error) {
	customers, err := s.CustomerDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := s.AddressDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	addressName := make(map[int64]string, len(addresses))
	for _, a := range addresses {
		addressName[a.ID] = a.Name
	}

	res := make(map[int64]string, len(customers))
	for _, c := range customers {
		res[c.ID] = addressName[c.AddressID]
	}
	return res, nil
}
