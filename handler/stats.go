package handler

import (
	"net/http"

	"Tuanke/config"
	"Tuanke/middleware"
	"Tuanke/pkg/response"
	"Tuanke/service"
	"Tuanke/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ctxutil "Tuanke/pkg/context"
)

type Stats struct {
	Config         *config.Config
	StatsService   service.IStatsService
	SettingService service.ISettingService
}

func (s *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/stats", authorize)
	g.GET("/supplier-overview", ctxutil.Wrap(s.SupplierOverview))
	g.GET("/group-buy-overview", ctxutil.Wrap(s.GroupBuyOverview))
	g.GET("/merged-group-buy", ctxutil.Wrap(s.MergedGroupBuyDetail))
	g.GET("/product-overview", ctxutil.Wrap(s.ProductOverview))
	g.GET("/customer-overview", ctxutil.Wrap(s.CustomerOverview))
	g.GET("/regional", ctxutil.Wrap(s.RegionalStats))
	g.GET("/ranking", ctxutil.Wrap(s.Ranking))
	g.GET("/trend", ctxutil.Wrap(s.Trend))
	g.GET("/dashboard", ctxutil.Wrap(s.Dashboard))
}

// maskSummary sensitive 开关打开时抹掉利润口径的字段，收入照常返回
func maskSummary(sum *types.StatsSummary) {
	sum.TotalProfit = decimal.Zero
	sum.ProfitMargin = decimal.Zero
}

func (s *Stats) sensitive(c *gin.Context) bool {
	return s.SettingService.IsSensitive(c.Request.Context())
}

func (s *Stats) SupplierOverview(c *gin.Context) error {
	var req types.SupplierOverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := s.StatsService.GetSupplierOverview(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		for _, row := range resp.Rows {
			maskSummary(&row.StatsSummary)
		}
	}

	response.Success(c, resp)
	return nil
}

func (s *Stats) GroupBuyOverview(c *gin.Context) error {
	var req types.GroupBuyOverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := s.StatsService.GetGroupBuyOverview(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		for _, row := range resp.Rows {
			maskSummary(&row.StatsSummary)
		}
	}

	response.Success(c, resp)
	return nil
}

func (s *Stats) MergedGroupBuyDetail(c *gin.Context) error {
	var req types.MergedGroupBuyDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := s.StatsService.GetMergedGroupBuyDetail(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		maskSummary(&detail.StatsSummary)
		for i := range detail.GroupBuyLaunchHistory {
			maskSummary(&detail.GroupBuyLaunchHistory[i].StatsSummary)
		}
	}

	response.Success(c, detail)
	return nil
}

func (s *Stats) ProductOverview(c *gin.Context) error {
	var dateRange types.StatsDateRange
	if err := c.ShouldBindQuery(&dateRange); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	rows, err := s.StatsService.GetProductOverview(c.Request.Context(), dateRange)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		for _, row := range rows {
			maskSummary(&row.StatsSummary)
		}
	}

	response.Success(c, rows)
	return nil
}

func (s *Stats) CustomerOverview(c *gin.Context) error {
	var req types.CustomerOverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := s.StatsService.GetCustomerOverview(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (s *Stats) RegionalStats(c *gin.Context) error {
	var dateRange types.StatsDateRange
	if err := c.ShouldBindQuery(&dateRange); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	rows, err := s.StatsService.GetRegionalStats(c.Request.Context(), dateRange)
	if err != nil {
		return err
	}

	response.Success(c, rows)
	return nil
}

func (s *Stats) Ranking(c *gin.Context) error {
	var req types.RankingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	items, err := s.StatsService.GetRanking(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		for _, item := range items {
			item.TotalProfit = decimal.Zero
		}
	}

	response.Success(c, items)
	return nil
}

func (s *Stats) Trend(c *gin.Context) error {
	var dateRange types.StatsDateRange
	if err := c.ShouldBindQuery(&dateRange); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := s.StatsService.GetTrend(c.Request.Context(), dateRange)
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		for _, p := range resp.Points {
			p.Profit = decimal.Zero
			p.CumProfit = decimal.Zero
		}
	}

	response.Success(c, resp)
	return nil
}

func (s *Stats) Dashboard(c *gin.Context) error {
	summary, err := s.StatsService.GetDashboard(c.Request.Context())
	if err != nil {
		return err
	}

	if s.sensitive(c) {
		maskSummary(&summary.Week)
		maskSummary(&summary.Month)
	}

	response.Success(c, summary)
	return nil
}
