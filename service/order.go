package service

import (
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"Tuanke/pkg/snowflake"
	"Tuanke/types"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	OrderDAO    *dao.Order
	GroupBuyDAO *dao.GroupBuy
	CustomerDAO *dao.Customer
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Advance(ctx context.Context, orderID int64) (*types.OrderDetail, error)
	FullRefund(ctx context.Context, orderID int64) (*types.OrderDetail, error)
	PartialRefund(ctx context.Context, orderID int64, amount decimal.Decimal) (*types.OrderDetail, error)
	Create(ctx context.Context, req *types.CreateOrderRequest) (*types.OrderDetail, error)
	BatchCreate(ctx context.Context, req *types.BatchCreateOrdersRequest) (*types.BatchCreateOrdersResponse, error)
	Update(ctx context.Context, orderID int64, req *types.UpdateOrderRequest) (*types.OrderDetail, error)
	Get(ctx context.Context, orderID int64) (*types.OrderDetail, error)
	List(ctx context.Context, req *types.OrderListRequest) (*types.OrderListResponse, error)
	Delete(ctx context.Context, orderID int64) error
}

// Advance 把订单推进到下一个状态。状态链只能前进：
// 未付款 -> 已付款 -> 已完成 -> 已退款
func (o *OrderService) Advance(ctx context.Context, orderID int64) (*types.OrderDetail, error) {
	var updated *models.Order

	err := o.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := o.OrderDAO.FindByID(ctx, orderID)
		if err != nil {
			if o.OrderDAO.IsNotFound(err) {
				return response.NewNotFoundError("订单不存在")
			}
			return err
		}

		next, ok := order.Status.Next()
		if !ok {
			return response.NewInvalidStateError("订单已是终态，无法推进状态")
		}

		changed, err := o.OrderDAO.UpdateStatus(ctx, orderID, order.Status, next)
		if err != nil {
			return err
		}
		if !changed {
			// 并发下状态已被别的请求改掉
			return response.NewInvalidStateError("订单状态已变化，请刷新后重试")
		}

		order.Status = next
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return o.buildDetail(ctx, updated)
}

// FullRefund 整单退款，仅允许已完成的订单。退款后该订单
// 不再计入订单量和营收，但成本仍计入利润（纯亏损）
func (o *OrderService) FullRefund(ctx context.Context, orderID int64) (*types.OrderDetail, error) {
	var updated *models.Order

	err := o.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := o.OrderDAO.FindByID(ctx, orderID)
		if err != nil {
			if o.OrderDAO.IsNotFound(err) {
				return response.NewNotFoundError("订单不存在")
			}
			return err
		}

		if order.Status != models.OrderStatusCompleted {
			return response.NewInvalidStateError("只有已完成的订单才能整单退款")
		}

		changed, err := o.OrderDAO.UpdateStatus(ctx, orderID, models.OrderStatusCompleted, models.OrderStatusRefunded)
		if err != nil {
			return err
		}
		if !changed {
			return response.NewInvalidStateError("订单状态已变化，请刷新后重试")
		}

		order.Status = models.OrderStatusRefunded
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("order fully refunded", zap.Int64("order_id", orderID))
	return o.buildDetail(ctx, updated)
}

// PartialRefund 部分退款，不改状态，只累加 partial_refund_amount。
// 校验 0 < amount <= 订单总额 - 已退金额
func (o *OrderService) PartialRefund(ctx context.Context, orderID int64, amount decimal.Decimal) (*types.OrderDetail, error) {
	var updated *models.Order

	err := o.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := o.OrderDAO.FindByID(ctx, orderID)
		if err != nil {
			if o.OrderDAO.IsNotFound(err) {
				return response.NewNotFoundError("订单不存在")
			}
			return err
		}

		if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusCompleted {
			return response.NewInvalidStateError("只有已付款或已完成的订单才能部分退款")
		}

		groupBuy, err := o.GroupBuyDAO.FindByID(ctx, order.GroupBuyID)
		if err != nil {
			return fmt.Errorf("加载订单所属团购失败: %w", err)
		}
		unit, ok := groupBuy.FindUnit(order.UnitID)
		if !ok {
			return fmt.Errorf("订单规格 %s 在团购 %d 中不存在", order.UnitID, groupBuy.ID)
		}

		total := unit.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
		remaining := total.Sub(order.PartialRefundAmount)

		if amount.LessThanOrEqual(decimal.Zero) {
			return response.NewValidationError("退款金额必须大于0")
		}
		if amount.GreaterThan(remaining) {
			return response.NewValidationError(
				fmt.Sprintf("退款金额超出可退上限 %s", remaining.String()))
		}

		newAmount := order.PartialRefundAmount.Add(amount)
		res := tx.Model(&models.Order{}).
			Where("id = ? AND partial_refund_amount = ?", orderID, order.PartialRefundAmount).
			Update("partial_refund_amount", newAmount)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.NewInvalidStateError("订单退款金额已变化，请刷新后重试")
		}

		order.PartialRefundAmount = newAmount
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("order partially refunded",
		zap.Int64("order_id", orderID),
		zap.String("amount", amount.String()),
	)
	return o.buildDetail(ctx, updated)
}

// validateItem 单条下单请求的校验，批量和单笔创建共用
func (o *OrderService) validateItem(ctx context.Context, item *types.CreateOrderRequest) (*models.Order, error) {
	if item.Quantity < 1 {
		return nil, response.NewValidationError("购买数量必须大于等于1")
	}

	status := item.Status
	if status == 0 {
		status = models.OrderStatusNotPaid
	}
	if !status.Valid() {
		return nil, response.NewValidationError(fmt.Sprintf("非法的订单状态 %d", item.Status))
	}

	groupBuy, err := o.GroupBuyDAO.FindByID(ctx, item.GroupBuyID)
	if err != nil {
		if o.GroupBuyDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("团购不存在或已删除")
		}
		return nil, err
	}
	if _, ok := groupBuy.FindUnit(item.UnitID); !ok {
		return nil, response.NewValidationError("所选规格在该团购中不存在")
	}

	if _, err := o.CustomerDAO.FindByID(ctx, item.CustomerID); err != nil {
		if o.CustomerDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("客户不存在或已删除")
		}
		return nil, err
	}

	return &models.Order{
		OrderSn:             snowflake.GenOrderSn(),
		GroupBuyID:          item.GroupBuyID,
		CustomerID:          item.CustomerID,
		UnitID:              item.UnitID,
		Quantity:            item.Quantity,
		Status:              status,
		PartialRefundAmount: decimal.Zero,
		Description:         item.Description,
	}, nil
}

func (o *OrderService) Create(ctx context.Context, req *types.CreateOrderRequest) (*types.OrderDetail, error) {
	order, err := o.validateItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.OrderDAO.Create(ctx, order); err != nil {
		return nil, err
	}
	return o.buildDetail(ctx, order)
}

// BatchCreate 批量下单。逐条校验、逐条写入，单条失败不影响其余，
// 失败明细随成功数一起返回
func (o *OrderService) BatchCreate(ctx context.Context, req *types.BatchCreateOrdersRequest) (*types.BatchCreateOrdersResponse, error) {
	resp := &types.BatchCreateOrdersResponse{
		FailedOrders: make([]types.BatchOrderFailure, 0),
	}

	for i := range req.Orders {
		item := req.Orders[i]
		order, err := o.validateItem(ctx, &item)
		if err == nil {
			err = o.OrderDAO.Create(ctx, order)
		}
		if err != nil {
			resp.FailCount++
			resp.FailedOrders = append(resp.FailedOrders, types.BatchOrderFailure{
				Index:  i,
				Reason: err.Error(),
				Item:   item,
			})
			log.L.Warn("batch create order item failed",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		resp.SuccessCount++
	}

	return resp, nil
}

// Update 修改订单内容。付款之后订单内容固化，只允许未付款订单修改
func (o *OrderService) Update(ctx context.Context, orderID int64, req *types.UpdateOrderRequest) (*types.OrderDetail, error) {
	order, err := o.OrderDAO.FindByID(ctx, orderID)
	if err != nil {
		if o.OrderDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("订单不存在")
		}
		return nil, err
	}

	if order.Status != models.OrderStatusNotPaid {
		return nil, response.NewInvalidStateError("只有未付款的订单才能修改")
	}

	values := map[string]interface{}{}
	if req.Quantity > 0 {
		values["quantity"] = req.Quantity
		order.Quantity = req.Quantity
	}
	if req.Description != "" {
		values["description"] = req.Description
		order.Description = req.Description
	}
	if len(values) > 0 {
		if err := o.OrderDAO.UpdateByID(ctx, orderID, values); err != nil {
			return nil, err
		}
	}

	return o.buildDetail(ctx, order)
}

func (o *OrderService) Get(ctx context.Context, orderID int64) (*types.OrderDetail, error) {
	order, err := o.OrderDAO.FindByID(ctx, orderID)
	if err != nil {
		if o.OrderDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("订单不存在")
		}
		return nil, err
	}
	return o.buildDetail(ctx, order)
}

func (o *OrderService) List(ctx context.Context, req *types.OrderListRequest) (*types.OrderListResponse, error) {
	filter := dao.OrderListFilter{
		GroupBuyID: req.GroupBuyID,
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	orders, total, err := o.OrderDAO.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 批量预取客户和团购，避免每行一次查询
	customerIDs := make([]int64, 0, len(orders))
	seenCustomers := make(map[int64]struct{}, len(orders))
	groupBuyMap := make(map[int64]*models.GroupBuy)
	for _, order := range orders {
		if _, ok := seenCustomers[order.CustomerID]; !ok {
			seenCustomers[order.CustomerID] = struct{}{}
			customerIDs = append(customerIDs, order.CustomerID)
		}
		if _, ok := groupBuyMap[order.GroupBuyID]; !ok {
			if gb, err := o.GroupBuyDAO.FindByID(ctx, order.GroupBuyID); err == nil {
				groupBuyMap[order.GroupBuyID] = gb
			}
		}
	}
	customerMap, err := o.CustomerDAO.BatchGetByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	details := make([]*types.OrderDetail, 0, len(orders))
	for _, order := range orders {
		details = append(details, o.detailFrom(order, groupBuyMap[order.GroupBuyID], customerMap[order.CustomerID]))
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return &types.OrderListResponse{
		Orders:   details,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (o *OrderService) Delete(ctx context.Context, orderID int64) error {
	if _, err := o.OrderDAO.FindByID(ctx, orderID); err != nil {
		if o.OrderDAO.IsNotFound(err) {
			return response.NewNotFoundError("订单不存在")
		}
		return err
	}
	return o.OrderDAO.DeleteByID(ctx, orderID)
}

// buildDetail 组装单个订单详情，团购或客户已被删除时对应字段留空
func (o *OrderService) buildDetail(ctx context.Context, order *models.Order) (*types.OrderDetail, error) {
	var groupBuy *models.GroupBuy
	if gb, err := o.GroupBuyDAO.FindByID(ctx, order.GroupBuyID); err == nil {
		groupBuy = gb
	}
	var customer *models.Customer
	if c, err := o.CustomerDAO.FindByID(ctx, order.CustomerID); err == nil {
		customer = c
	}
	return o.detailFrom(order, groupBuy, customer), nil
}

// detailFrom 金额按下单时固化在团购规格里的价格计算
func (o *OrderService) detailFrom(order *models.Order, groupBuy *models.GroupBuy, customer *models.Customer) *types.OrderDetail {
	detail := &types.OrderDetail{
		ID:                  order.ID,
		OrderSn:             order.OrderSn,
		GroupBuyID:          order.GroupBuyID,
		CustomerID:          order.CustomerID,
		UnitID:              order.UnitID,
		Quantity:            order.Quantity,
		PartialRefundAmount: order.PartialRefundAmount,
		Status:              order.Status,
		StatusMeta:          types.OrderStatusMeta[order.Status],
		CanAdvance:          order.Status.CanAdvance(),
		Description:         order.Description,
		CreatedAt:           order.CreatedAt,
	}

	if groupBuy != nil {
		detail.GroupBuyName = groupBuy.Name
		if unit, ok := groupBuy.FindUnit(order.UnitID); ok {
			detail.UnitLabel = unit.Unit
			detail.UnitPrice = unit.Price
			detail.TotalAmount = unit.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
		}
	}
	if customer != nil {
		detail.CustomerName = customer.Name
	}

	return detail
}
