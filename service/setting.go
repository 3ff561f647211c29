package service

import (
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/types"
	"context"
)

type SettingService struct {
	SettingDAO *dao.Setting
}

var _ ISettingService = (*SettingService)(nil)

type ISettingService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*types.SettingItem, error)
	// IsSensitive sensitive 开关打开时接口层隐藏利润相关字段
	IsSensitive(ctx context.Context) bool
}

func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	return s.SettingDAO.Get(ctx, key)
}

func (s *SettingService) Set(ctx context.Context, key, value string) error {
	return s.SettingDAO.Set(ctx, key, value)
}

func (s *SettingService) List(ctx context.Context) ([]*types.SettingItem, error) {
	settings, err := s.SettingDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*types.SettingItem, 0, len(settings))
	for _, setting := range settings {
		items = append(items, &types.SettingItem{Key: setting.Key, Value: setting.Value})
	}
	return items, nil
}

func (s *SettingService) IsSensitive(ctx context.Context) bool {
	v, err := s.SettingDAO.Get(ctx, models.SettingKeySensitive)
	if err != nil {
		return false
	}
	return v == "1"
}
