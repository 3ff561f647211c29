package service

import (
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
)

type CustomerService struct {
	CustomerDAO *dao.Customer
	AddressDAO  *dao.CustomerAddress
}

var _ ICustomerService = (*CustomerService)(nil)

type ICustomerService interface {
	Create(ctx context.Context, req *types.CustomerPayload) (*types.CustomerItem, error)
	Update(ctx context.Context, id int64, req *types.CustomerPayload) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*types.CustomerItem, error)

	CreateAddress(ctx context.Context, req *types.CustomerAddressPayload) error
	ListAddresses(ctx context.Context) ([]*models.CustomerAddress, error)
}

func (c *CustomerService) Create(ctx context.Context, req *types.CustomerPayload) (*types.CustomerItem, error) {
	if req.AddressID > 0 {
		if _, err := c.AddressDAO.FindByID(ctx, req.AddressID); err != nil {
			if c.AddressDAO.IsNotFound(err) {
				return nil, response.NewNotFoundError("客户地址不存在")
			}
			return nil, err
		}
	}

	customer := &models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		AddressID: req.AddressID,
		Remark:    req.Remark,
	}
	if err := c.CustomerDAO.Create(ctx, customer); err != nil {
		return nil, err
	}

	return &types.CustomerItem{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		AddressID: customer.AddressID,
		Remark:    customer.Remark,
	}, nil
}

func (c *CustomerService) Update(ctx context.Context, id int64, req *types.CustomerPayload) error {
	if _, err := c.CustomerDAO.FindByID(ctx, id); err != nil {
		if c.CustomerDAO.IsNotFound(err) {
			return response.NewNotFoundError("客户不存在")
		}
		return err
	}
	return c.CustomerDAO.UpdateByID(ctx, id, map[string]interface{}{
		"name":       req.Name,
		"phone":      req.Phone,
		"address_id": req.AddressID,
		"remark":     req.Remark,
	})
}

func (c *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := c.CustomerDAO.FindByID(ctx, id); err != nil {
		if c.CustomerDAO.IsNotFound(err) {
			return response.NewNotFoundError("客户不存在")
		}
		return err
	}
	return c.CustomerDAO.DeleteByID(ctx, id)
}

func (c *CustomerService) List(ctx context.Context) ([]*types.CustomerItem, error) {
	customers, err := c.CustomerDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := c.AddressDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	addressName := make(map[int64]string, len(addresses))
	for _, a := range addresses {
		addressName[a.ID] = a.Name
	}

	items := make([]*types.CustomerItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, &types.CustomerItem{
			ID:          customer.ID,
			Name:        customer.Name,
			Phone:       customer.Phone,
			AddressID:   customer.AddressID,
			AddressName: addressName[customer.AddressID],
			Remark:      customer.Remark,
		})
	}
	return items, nil
}

func (c *CustomerService) CreateAddress(ctx context.Context, req *types.CustomerAddressPayload) error {
	return c.AddressDAO.Create(ctx, &models.CustomerAddress{Name: req.Name})
}

func (c *CustomerService) ListAddresses(ctx context.Context) ([]*models.CustomerAddress, error) {
	return c.AddressDAO.ListAll(ctx)
}
