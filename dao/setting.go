package dao

import (
	"Tuanke/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Setting struct {
	Repo[models.GlobalSetting]
}

func NewSetting(db *gorm.DB) *Setting {
	return &Setting{Repo: NewRepo[models.GlobalSetting](db)}
}

// Get 不存在时返回空串，不算错误
func (s *Setting) Get(ctx context.Context, key string) (string, error) {
	var setting models.GlobalSetting
	err := s.Db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *Setting) Set(ctx context.Context, key, value string) error {
	return s.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&models.GlobalSetting{Key: key, Value: value}).Error
}

func (s *Setting) ListAll(ctx context.Context) ([]*models.GlobalSetting, error) {
	settings := make([]*models.GlobalSetting, 0)
	if err := s.Db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
