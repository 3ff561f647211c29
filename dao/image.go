package dao

import (
	"Tuanke/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.ImageAsset]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{Repo: NewRepo[models.ImageAsset](db)}
}

func (i *Image) CreateAsset(ctx context.Context, asset *models.ImageAsset) error {
	return i.Db.WithContext(ctx).Create(asset).Error
}

// FindByHash 没有记录时返回 (nil, nil)
func (i *Image) FindByHash(ctx context.Context, hash string) (*models.ImageAsset, error) {
	var asset models.ImageAsset
	err := i.Db.WithContext(ctx).Where("hash = ?", hash).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListHashes 返回已入库的全部 hash 集合
func (i *Image) ListHashes(ctx context.Context) (map[string]struct{}, error) {
	var hashes []string
	err := i.Db.WithContext(ctx).Model(&models.ImageAsset{}).
		Pluck("hash", &hashes).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		res[h] = struct{}{}
	}
	return res, nil
}
