package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO，各实体 DAO 内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) UpdateByID(ctx context.Context, id int64, values map[string]interface{}) error {
	var m T
	return r.Db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(values).Error
}

// DeleteByID 模型带 DeletedAt 时是软删除
func (r Repo[T]) DeleteByID(ctx context.Context, id int64) error {
	var m T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&m).Error
}

func (r Repo[T]) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
