package dao

import (
	"Tuanke/models"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Supplier struct {
	Repo[models.Supplier]
}

func NewSupplier(db *gorm.DB) *Supplier {
	return &Supplier{Repo: NewRepo[models.Supplier](db)}
}

func (s *Supplier) ListAll(ctx context.Context) ([]*models.Supplier, error) {
	suppliers := make([]*models.Supplier, 0)
	if err := s.Db.WithContext(ctx).Order("id asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *Supplier) ListPage(ctx context.Context, keyword string, page, pageSize int) ([]*models.Supplier, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := s.Db.WithContext(ctx).Model(&models.Supplier{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	suppliers := make([]*models.Supplier, 0)
	err := query.Order("id asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&suppliers).Error
	if err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

func (s *Supplier) UpdateImages(ctx context.Context, id int64, images []string) error {
	return s.Db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ?", id).
		Update("images", datatypes.JSONSlice[string](images)).Error
}
