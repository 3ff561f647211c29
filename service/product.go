package service

import (
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
)

type ProductService struct {
	ProductDAO     *dao.Product
	ProductTypeDAO *dao.ProductType
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	Create(ctx context.Context, req *types.ProductPayload) (*types.ProductItem, error)
	Update(ctx context.Context, id int64, req *types.ProductPayload) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*types.ProductItem, error)

	CreateType(ctx context.Context, req *types.ProductTypePayload) error
	ListTypes(ctx context.Context) ([]*models.ProductType, error)
}

func (p *ProductService) Create(ctx context.Context, req *types.ProductPayload) (*types.ProductItem, error) {
	if _, err := p.ProductTypeDAO.FindByID(ctx, req.ProductTypeID); err != nil {
		if p.ProductTypeDAO.IsNotFound(err) {
			return nil, response.NewNotFoundError("商品分类不存在")
		}
		return nil, err
	}

	count, err := p.ProductDAO.CountByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewValidationError("已存在同名商品，请更换名称")
	}

	product := &models.Product{
		Name:          req.Name,
		ProductTypeID: req.ProductTypeID,
		Description:   req.Description,
	}
	if err := p.ProductDAO.Create(ctx, product); err != nil {
		return nil, err
	}

	return &types.ProductItem{
		ID:            product.ID,
		Name:          product.Name,
		ProductTypeID: product.ProductTypeID,
		Description:   product.Description,
	}, nil
}

func (p *ProductService) Update(ctx context.Context, id int64, req *types.ProductPayload) error {
	if _, err := p.ProductDAO.FindByID(ctx, id); err != nil {
		if p.ProductDAO.IsNotFound(err) {
			return response.NewNotFoundError("商品不存在")
		}
		return err
	}
	return p.ProductDAO.UpdateByID(ctx, id, map[string]interface{}{
		"name":            req.Name,
		"product_type_id": req.ProductTypeID,
		"description":     req.Description,
	})
}

func (p *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := p.ProductDAO.FindByID(ctx, id); err != nil {
		if p.ProductDAO.IsNotFound(err) {
			return response.NewNotFoundError("商品不存在")
		}
		return err
	}
	return p.ProductDAO.DeleteByID(ctx, id)
}

func (p *ProductService) List(ctx context.Context) ([]*types.ProductItem, error) {
	products, err := p.ProductDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	productTypes, err := p.ProductTypeDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	typeName := make(map[int64]string, len(productTypes))
	for _, t := range productTypes {
		typeName[t.ID] = t.Name
	}

	items := make([]*types.ProductItem, 0, len(products))
	for _, product := range products {
		items = append(items, &types.ProductItem{
			ID:              product.ID,
			Name:            product.Name,
			ProductTypeID:   product.ProductTypeID,
			ProductTypeName: typeName[product.ProductTypeID],
			Description:     product.Description,
		})
	}
	return items, nil
}

func (p *ProductService) CreateType(ctx context.Context, req *types.ProductTypePayload) error {
	return p.ProductTypeDAO.Create(ctx, &models.ProductType{Name: req.Name})
}

func (p *ProductService) ListTypes(ctx context.Context) ([]*models.ProductType, error) {
	return p.ProductTypeDAO.ListAll(ctx)
}
