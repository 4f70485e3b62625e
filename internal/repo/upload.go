package repo

import (
	"context"

	"github.com/babyzion/market/internal/models"
)

func (r *GormRepo) CreateUpload(ctx context.Context, upload *models.Upload) (*models.Upload, error) {
	if err := r.DB.WithContext(ctx).Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

func (r *GormRepo) ListUploads(ctx context.Context, limit int) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}
