package models

import "time"

// ImageAsset 上传文件目录，hash 唯一，去重任务据此识别重复文件
type ImageAsset struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename     string    `gorm:"column:filename;type:varchar(255);not null;index:idx_filename" json:"filename"`
	OriginalName string    `gorm:"column:original_name;type:varchar(255)" json:"original_name"`
	Hash         string    `gorm:"column:hash;type:char(64);not null;uniqueIndex:idx_hash" json:"hash"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ImageAsset) TableName() string {
	return "image_assets"
}
