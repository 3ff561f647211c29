package dao

import (
	"Tuanke/models"
	"context"

	"gorm.io/gorm"
)

type Customer struct {
	Repo[models.Customer]
}

func NewCustomer(db *gorm.DB) *Customer {
	return &Customer{Repo: NewRepo[models.Customer](db)}
}

func (c *Customer) ListAll(ctx context.Context) ([]*models.Customer, error) {
	customers := make([]*models.Customer, 0)
	if err := c.Db.WithContext(ctx).Order("id asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// BatchGetByIDs 批量查客户，返回 id -> customer 映射
func (c *Customer) BatchGetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Customer, error) {
	res := make(map[int64]*models.Customer)
	if len(ids) == 0 {
		return res, nil
	}

	var rows []models.Customer
	if err := c.Db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		cc := rows[i]
		res[cc.ID] = &cc
	}
	return res, nil
}

type CustomerAddress struct {
	Repo[models.CustomerAddress]
}

func NewCustomerAddress(db *gorm.DB) *CustomerAddress {
	return &CustomerAddress{Repo: NewRepo[models.CustomerAddress](db)}
}

func (a *CustomerAddress) ListAll(ctx context.Context) ([]*models.CustomerAddress, error) {
	addresses := make([]*models.CustomerAddress, 0)
	if err := a.Db.WithContext(ctx).Order("id asc").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
