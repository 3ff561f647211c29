package dao

import (
	"Tuanke/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Repo: NewRepo[models.Order](db)}
}

// OrderListFilter 订单列表查询条件，零值字段不参与过滤
type OrderListFilter struct {
	GroupBuyID int64
	CustomerID int64
	Status     models.OrderStatus
	Page       int
	PageSize   int
}

func (o *Order) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 100 {
		f.PageSize = 20
	}

	query := o.Db.WithContext(ctx).Model(&models.Order{})
	if f.GroupBuyID > 0 {
		query = query.Where("group_buy_id = ?", f.GroupBuyID)
	}
	if f.CustomerID > 0 {
		query = query.Where("customer_id = ?", f.CustomerID)
	}
	if f.Status > 0 {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []*models.Order
	err := query.Order("id desc").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByGroupBuyIDs 统计用：取指定团购下所有非未付款订单
func (o *Order) ListByGroupBuyIDs(ctx context.Context, groupBuyIDs []int64) ([]*models.Order, error) {
	orders := make([]*models.Order, 0)
	if len(groupBuyIDs) == 0 {
		return orders, nil
	}
	err := o.Db.WithContext(ctx).
		Where("group_buy_id IN ? AND status <> ?", groupBuyIDs, models.OrderStatusNotPaid).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 带前置状态条件的状态更新，返回是否真正更新到行
func (o *Order) UpdateStatus(ctx context.Context, id int64, from, to models.OrderStatus) (bool, error) {
	res := o.Db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
