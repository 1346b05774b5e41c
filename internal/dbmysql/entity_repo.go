package dbmysql

import (
	"context"

	"gorm.io/gorm"

	"clubhub/internal/common"
)

// EntityRepository owns the ContentEntity rows. The asset list is never
// cached anywhere; reads always come back from here.
type EntityRepository interface {
	CreateEntity(ctx context.Context, entity *ContentEntity) error
	GetEntityByID(ctx context.Context, id uint64) (*ContentEntity, error)
	UpdateEntity(ctx context.Context, entity *ContentEntity) error
	DeleteEntity(ctx context.Context, id uint64) error

	ListByCategory(ctx context.Context, category common.ContentCategory) ([]ContentEntity, error)
	ListPage(ctx context.Context, category common.ContentCategory, page, limit int) ([]ContentEntity, int64, error)
	CountByCategory(ctx context.Context, category common.ContentCategory) (*CategoryCounts, error)
}

// CategoryCounts is the repository-level aggregate for one category, so
// counts never have to be folded from a partial page.
type CategoryCounts struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
	Active   int64 `json:"active"`
}

type entityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepository{db: db}
}

func (r *entityRepository) CreateEntity(ctx context.Context, entity *ContentEntity) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *entityRepository) GetEntityByID(ctx context.Context, id uint64) (*ContentEntity, error) {
	var entity ContentEntity
	err := r.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&entity, "entity_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepository) UpdateEntity(ctx context.Context, entity *ContentEntity) error {
	return r.db.WithContext(ctx).Omit("Assets").Save(entity).Error
}

func (r *entityRepository) DeleteEntity(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&ContentEntity{}, "entity_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entityRepository) ListByCategory(ctx context.Context, category common.ContentCategory) ([]ContentEntity, error) {
	var entities []ContentEntity
	err := r.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("category = ?", category).
		Order("display_order ASC, created_at DESC").
		Find(&entities).Error
	return entities, err
}

func (r *entityRepository) ListPage(ctx context.Context, category common.ContentCategory, page, limit int) ([]ContentEntity, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&ContentEntity{}).
		Where("category = ?", category).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []ContentEntity
	err := r.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("category = ?", category).
		Order("display_order ASC, created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entities).Error
	return entities, total, err
}

func (r *entityRepository) CountByCategory(ctx context.Context, category common.ContentCategory) (*CategoryCounts, error) {
	counts := &CategoryCounts{}
	base := r.db.WithContext(ctx).Model(&ContentEntity{}).Where("category = ?", category)

	if err := base.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("featured = ?", true).Count(&counts.Featured).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("active = ?", true).Count(&counts.Active).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
