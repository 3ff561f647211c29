package service

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadSize int64 = 10 << 20 // 10MB

var allowedImageExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

type UploadService struct {
	Upload   *config.UploadConfig
	ImageDAO *dao.Image
}

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	SaveImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error)
}

// SaveImage 保存上传图片。内容哈希已存在时直接复用已有文件，
// 上传阶段就不产生重复文件
func (s *UploadService) SaveImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	if header == nil {
		return nil, response.NewValidationError("缺少图片文件")
	}
	if header.Size <= 0 || header.Size > maxUploadSize {
		return nil, response.NewValidationError("图片大小超出限制")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedImageExt[ext]; !ok {
		return nil, response.NewValidationError("只支持 jpg/png/gif 图片")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxUploadSize {
		return nil, response.NewValidationError("图片大小超出限制")
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if existing, err := s.ImageDAO.FindByHash(ctx, hash); err != nil {
		return nil, err
	} else if existing != nil {
		return &types.UploadImageResp{
			Filename: existing.Filename,
			URL:      s.Upload.URL(existing.Filename),
		}, nil
	}

	filename := uuid.NewString() + ext
	if err := os.MkdirAll(s.Upload.Dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(s.Upload.Dir, filename), data, 0o644); err != nil {
		return nil, err
	}

	asset := &models.ImageAsset{
		Filename:     filename,
		OriginalName: header.Filename,
		Hash:         hash,
	}
	if err := s.ImageDAO.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	log.L.Info("image uploaded",
		zap.String("filename", filename),
		zap.String("original", header.Filename),
	)
	return &types.UploadImageResp{
		Filename: filename,
		URL:      s.Upload.URL(filename),
	}, nil
}
