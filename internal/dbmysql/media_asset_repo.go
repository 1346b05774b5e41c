package dbmysql

import (
	"context"

	"gorm.io/gorm"
)

type MediaAssetRepository interface {
	CreateAsset(ctx context.Context, asset *MediaAsset) error
	GetAssetByID(ctx context.Context, assetID uint64) (*MediaAsset, error)
	ListByEntity(ctx context.Context, entityID uint64) ([]MediaAsset, error)
	CountByEntity(ctx context.Context, entityID uint64) (int64, error)
	MaxPosition(ctx context.Context, entityID uint64) (int, error)
	DeleteAsset(ctx context.Context, assetID uint64) error
}

type mediaAssetRepository struct {
	db *gorm.DB
}

func NewMediaAssetRepository(db *gorm.DB) MediaAssetRepository {
	return &mediaAssetRepository{db: db}
}

func (r *mediaAssetRepository) CreateAsset(ctx context.Context, asset *MediaAsset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *mediaAssetRepository) GetAssetByID(ctx context.Context, assetID uint64) (*MediaAsset, error) {
	var asset MediaAsset
	err := r.db.WithContext(ctx).First(&asset, "asset_id = ?", assetID).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *mediaAssetRepository) ListByEntity(ctx context.Context, entityID uint64) ([]MediaAsset, error) {
	var assets []MediaAsset
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("position ASC").
		Find(&assets).Error
	return assets, err
}

func (r *mediaAssetRepository) CountByEntity(ctx context.Context, entityID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MediaAsset{}).
		Where("entity_id = ?", entityID).
		Count(&count).Error
	return count, err
}

// MaxPosition returns -1 when the entity has no assets yet, so the next
// position is always max+1. Gaps left by deletes are never reclaimed.
func (r *mediaAssetRepository) MaxPosition(ctx context.Context, entityID uint64) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&MediaAsset{}).
		Where("entity_id = ?", entityID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *mediaAssetRepository) DeleteAsset(ctx context.Context, assetID uint64) error {
	result := r.db.WithContext(ctx).Delete(&MediaAsset{}, "asset_id = ?", assetID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
