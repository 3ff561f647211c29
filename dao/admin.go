package dao

import (
	"Tuanke/models"
	"context"

	"gorm.io/gorm"
)

type Admin struct {
	Repo[models.Admin]
}

func NewAdmin(db *gorm.DB) *Admin {
	return &Admin{Repo: NewRepo[models.Admin](db)}
}

func (a *Admin) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := a.Db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
