package dao

import (
	"Tuanke/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupBuy struct {
	Repo[models.GroupBuy]
}

func NewGroupBuy(db *gorm.DB) *GroupBuy {
	return &GroupBuy{Repo: NewRepo[models.GroupBuy](db)}
}

// GroupBuyFilter 团购查询条件。日期窗口作用在 group_buy_start_date 上（含端点）
type GroupBuyFilter struct {
	SupplierID int64
	ProductID  int64
	Name       string // 精确匹配，合并同名团购时使用
	Keyword    string // 模糊搜索
	StartDate  *time.Time
	EndDate    *time.Time
}

func (g *GroupBuy) applyFilter(query *gorm.DB, f GroupBuyFilter) *gorm.DB {
	if f.SupplierID > 0 {
		query = query.Where("supplier_id = ?", f.SupplierID)
	}
	if f.ProductID > 0 {
		query = query.Where("product_id = ?", f.ProductID)
	}
	if f.Name != "" {
		query = query.Where("name = ?", f.Name)
	}
	if f.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+f.Keyword+"%")
	}
	if f.StartDate != nil {
		query = query.Where("group_buy_start_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("group_buy_start_date <= ?", *f.EndDate)
	}
	return query
}

func (g *GroupBuy) ListByFilter(ctx context.Context, f GroupBuyFilter) ([]*models.GroupBuy, error) {
	groupBuys := make([]*models.GroupBuy, 0)
	query := g.applyFilter(g.Db.WithContext(ctx).Model(&models.GroupBuy{}), f)
	if err := query.Order("group_buy_start_date asc, id asc").Find(&groupBuys).Error; err != nil {
		return nil, err
	}
	return groupBuys, nil
}

func (g *GroupBuy) ListPage(ctx context.Context, f GroupBuyFilter, page, pageSize int) ([]*models.GroupBuy, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	query := g.applyFilter(g.Db.WithContext(ctx).Model(&models.GroupBuy{}), f)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	groupBuys := make([]*models.GroupBuy, 0)
	err := query.Order("group_buy_start_date desc, id desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&groupBuys).Error
	if err != nil {
		return nil, 0, err
	}
	return groupBuys, total, nil
}

func (g *GroupBuy) ListAll(ctx context.Context) ([]*models.GroupBuy, error) {
	groupBuys := make([]*models.GroupBuy, 0)
	if err := g.Db.WithContext(ctx).Find(&groupBuys).Error; err != nil {
		return nil, err
	}
	return groupBuys, nil
}

// UpdateImages 仅更新图片引用列表，去重任务改写引用时使用
func (g *GroupBuy) UpdateImages(ctx context.Context, id int64, images []string) error {
	return g.Db.WithContext(ctx).
		Model(&models.GroupBuy{}).
		Where("id = ?", id).
		Update("images", datatypes.JSONSlice[string](images)).Error
}
