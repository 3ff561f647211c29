package models

import "time"

// GlobalSetting 全局键值配置，如 sensitive 开关（隐藏利润数据）
type GlobalSetting struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"column:setting_key;type:varchar(64);not null;uniqueIndex:idx_setting_key" json:"key"`
	Value     string    `gorm:"column:setting_value;type:varchar(255)" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GlobalSetting) TableName() string {
	return "global_settings"
}

// SettingKeySensitive 为 "1" 时接口层隐藏利润相关字段
const SettingKeySensitive = "sensitive"
