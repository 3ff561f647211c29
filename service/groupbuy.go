package service

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/speps/go-hashids/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const shareCodeSalt = "tuanke-share"

type GroupBuyService struct {
	DB          *gorm.DB
	Upload      *config.UploadConfig
	GroupBuyDAO *dao.GroupBuy
	SupplierDAO *dao.Supplier
	ProductDAO  *dao.Product
}

var _ IGroupBuyService = (*GroupBuyService)(nil)

type IGroupBuyService interface {
	Create(ctx context.Context, req *types.CreateGroupBuyRequest) (*types.GroupBuyItem, error)
	Update(ctx context.Context, id int64, req *types.UpdateGroupBuyRequest) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*types.GroupBuyItem, error)
	List(ctx context.Context, req *types.GroupBuyListRequest) (*types.GroupBuyListResponse, error)
}

// shareCode 用团购 id 编一个短分享码
func shareCode(id int64) (string, error) {
	hd := hashids.NewData()
	hd.Salt = shareCodeSalt
	hd.MinLength = 6
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{id})
}

func validateUnits(units []types.GroupBuyUnitPayload) error {
	if len(units) == 0 {
		return response.NewValidationError("至少需要一个规格")
	}
	for _, u := range units {
		if u.Unit == "" {
			return response.NewValidationError("规格名称不能为空")
		}
		if u.Price.LessThanOrEqual(decimal.Zero) {
			return response.NewValidationError("规格价格必须大于0")
		}
		if u.CostPrice.LessThan(decimal.Zero) {
			return response.NewValidationError("成本价不能为负")
		}
		if u.CostPrice.GreaterThan(u.Price) {
			return response.NewValidationError("成本价不能高于售价")
		}
	}
	return nil
}

func (g *GroupBuyService) Create(ctx context.Context, req *types.CreateGroupBuyRequest) (*types.GroupBuyItem, error) {
	if err := validateUnits(req.Units); err != nil {
		return nil, err
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.GroupBuyStartDate, time.Local)
	if err != nil {
		return nil, response.NewValidationError("开团日期格式错误，应为 2006-01-02")
	}

	if _, err := g.SupplierDAO.FindByID(ctx, req.SupplierID); err != nil {
		if g.SupplierDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("供货商不存在")
		}
		return nil, err
	}
	if _, err := g.ProductDAO.FindByID(ctx, req.ProductID); err != nil {
		if g.ProductDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("商品不存在")
		}
		return nil, err
	}

	// 规格 id 创建时生成，之后订单用它定位下单时的价格
	units := make([]models.GroupBuyUnit, 0, len(req.Units))
	for _, u := range req.Units {
		units = append(units, models.GroupBuyUnit{
			ID:        uuid.NewString(),
			Unit:      u.Unit,
			Price:     u.Price,
			CostPrice: u.CostPrice,
		})
	}

	groupBuy := &models.GroupBuy{
		Name:              req.Name,
		Description:       req.Description,
		GroupBuyStartDate: startDate,
		SupplierID:        req.SupplierID,
		ProductID:         req.ProductID,
		Units:             datatypes.JSONSlice[models.GroupBuyUnit](units),
		Images:            datatypes.JSONSlice[string](req.Images),
	}

	err = g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(groupBuy).Error; err != nil {
			return err
		}
		code, err := shareCode(groupBuy.ID)
		if err != nil {
			return err
		}
		groupBuy.ShareCode = code
		return tx.Model(groupBuy).Update("share_code", code).Error
	})
	if err != nil {
		return nil, err
	}

	return g.toItem(ctx, groupBuy), nil
}

func (g *GroupBuyService) Update(ctx context.Context, id int64, req *types.UpdateGroupBuyRequest) error {
	if _, err := g.GroupBuyDAO.FindByID(ctx, id); err != nil {
		if g.GroupBuyDAO.IsNotFound(err) {
			return response.NewNotFoundError("团购不存在")
		}
		return err
	}

	values := map[string]interface{}{}
	if req.Description != "" {
		values["description"] = req.Description
	}
	if req.GroupBuyStartDate != "" {
		startDate, err := time.ParseInLocation("2006-01-02", req.GroupBuyStartDate, time.Local)
		if err != nil {
			return response.NewValidationError("开团日期格式错误，应为 2006-01-02")
		}
		values["group_buy_start_date"] = startDate
	}
	if req.Images != nil {
		values["images"] = datatypes.JSONSlice[string](req.Images)
	}
	if len(values) == 0 {
		return nil
	}

	return g.GroupBuyDAO.UpdateByID(ctx, id, values)
}

func (g *GroupBuyService) Delete(ctx context.Context, id int64) error {
	if _, err := g.GroupBuyDAO.FindByID(ctx, id); err != nil {
		if g.GroupBuyDAO.IsNotFound(err) {
			return response.NewNotFoundError("团购不存在")
		}
		return err
	}
	return g.GroupBuyDAO.DeleteByID(ctx, id)
}

func (g *GroupBuyService) Get(ctx context.Context, id int64) (*types.GroupBuyItem, error) {
	groupBuy, err := g.GroupBuyDAO.FindByID(ctx, id)
	if err != nil {
		if g.GroupBuyDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("团购不存在")
		}
		return nil, err
	}
	return g.toItem(ctx, groupBuy), nil
}

func (g *GroupBuyService) List(ctx context.Context, req *types.GroupBuyListRequest) (*types.GroupBuyListResponse, error) {
	filter := dao.GroupBuyFilter{
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		Keyword:    req.Keyword,
	}
	start, end, err := parseDateRange(types.StatsDateRange{StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return nil, err
	}
	filter.StartDate = start
	filter.EndDate = end

	groupBuys, total, err := g.GroupBuyDAO.ListPage(ctx, filter, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*types.GroupBuyItem, 0, len(groupBuys))
	for _, gb := range groupBuys {
		items = append(items, g.toItem(ctx, gb))
	}

	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &types.GroupBuyListResponse{
		GroupBuys: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (g *GroupBuyService) toItem(ctx context.Context, gb *models.GroupBuy) *types.GroupBuyItem {
	item := &types.GroupBuyItem{
		ID:                gb.ID,
		Name:              gb.Name,
		Description:       gb.Description,
		GroupBuyStartDate: gb.GroupBuyStartDate,
		SupplierID:        gb.SupplierID,
		ProductID:         gb.ProductID,
		ShareCode:         gb.ShareCode,
		Units:             []models.GroupBuyUnit(gb.Units),
		Images:            []string(gb.Images),
		ImageURLs:         make([]string, 0, len(gb.Images)),
	}
	for _, img := range gb.Images {
		item.ImageURLs = append(item.ImageURLs, g.Upload.URL(img))
	}
	if supplier, err := g.SupplierDAO.FindByID(ctx, gb.SupplierID); err == nil {
		item.SupplierName = supplier.Name
	}
	return item
}
