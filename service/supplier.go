package service

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"

	"gorm.io/datatypes"
)

type SupplierService struct {
	Upload      *config.UploadConfig
	SupplierDAO *dao.Supplier
}

var _ ISupplierService = (*SupplierService)(nil)

type ISupplierService interface {
	Create(ctx context.Context, req *types.SupplierPayload) (*types.SupplierItem, error)
	Update(ctx context.Context, id int64, req *types.SupplierPayload) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*types.SupplierItem, error)
	List(ctx context.Context, req *types.SupplierListRequest) (*types.SupplierListResponse, error)
}

func (s *SupplierService) Create(ctx context.Context, req *types.SupplierPayload) (*types.SupplierItem, error) {
	supplier := &models.Supplier{
		Name:    req.Name,
		Phone:   req.Phone,
		Wechat:  req.Wechat,
		Address: req.Address,
		Remark:  req.Remark,
		Images:  datatypes.JSONSlice[string](req.Images),
	}
	if err := s.SupplierDAO.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return s.toItem(supplier), nil
}

func (s *SupplierService) Update(ctx context.Context, id int64, req *types.SupplierPayload) error {
	if _, err := s.SupplierDAO.FindByID(ctx, id); err != nil {
		if s.SupplierDAO.IsNotFound(err) {
			return response.NewNotFoundError("供货商不存在")
		}
		return err
	}
	return s.SupplierDAO.UpdateByID(ctx, id, map[string]interface{}{
		"name":    req.Name,
		"phone":   req.Phone,
		"wechat":  req.Wechat,
		"address": req.Address,
		"remark":  req.Remark,
		"images":  datatypes.JSONSlice[string](req.Images),
	})
}

func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.SupplierDAO.FindByID(ctx, id); err != nil {
		if s.SupplierDAO.IsNotFound(err) {
			return response.NewNotFoundError("供货商不存在")
		}
		return err
	}
	return s.SupplierDAO.DeleteByID(ctx, id)
}

func (s *SupplierService) Get(ctx context.Context, id int64) (*types.SupplierItem, error) {
	supplier, err := s.SupplierDAO.FindByID(ctx, id)
	if err != nil {
		if s.SupplierDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("供货商不存在")
		}
		return nil, err
	}
	return s.toItem(supplier), nil
}

func (s *SupplierService) List(ctx context.Context, req *types.SupplierListRequest) (*types.SupplierListResponse, error) {
	suppliers, total, err := s.SupplierDAO.ListPage(ctx, req.Keyword, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*types.SupplierItem, 0, len(suppliers))
	for _, supplier := range suppliers {
		items = append(items, s.toItem(supplier))
	}

	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &types.SupplierListResponse{
		Suppliers: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *SupplierService) toItem(supplier *models.Supplier) *types.SupplierItem {
	item := &types.SupplierItem{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Phone:     supplier.Phone,
		Wechat:    supplier.Wechat,
		Address:   supplier.Address,
		Remark:    supplier.Remark,
		Images:    []string(supplier.Images),
		ImageURLs: make([]string, 0, len(supplier.Images)),
	}
	for _, img := range supplier.Images {
		item.ImageURLs = append(item.ImageURLs, s.Upload.URL(img))
	}
	return item
}
