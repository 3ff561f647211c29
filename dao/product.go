package dao

import (
	"Tuanke/models"
	"context"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{Repo: NewRepo[models.Product](db)}
}

func (p *Product) ListAll(ctx context.Context) ([]*models.Product, error) {
	products := make([]*models.Product, 0)
	if err := p.Db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Product) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("name = ?", name).
		Count(&count).Error
	return count, err
}

type ProductType struct {
	Repo[models.ProductType]
}

func NewProductType(db *gorm.DB) *ProductType {
	return &ProductType{Repo: NewRepo[models.ProductType](db)}
}

func (p *ProductType) ListAll(ctx context.Context) ([]*models.ProductType, error) {
	types := make([]*models.ProductType, 0)
	if err := p.Db.WithContext(ctx).Order("id asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
