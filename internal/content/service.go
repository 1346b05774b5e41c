package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmysql"
)

// ContentService is the create/update/delete command surface for content
// records and their assets. Destructive commands are expected to have passed
// a ConfirmGate before they reach here; the service does not re-confirm.
type ContentService interface {
	Create(ctx context.Context, cmd CreateEntityCommand, files []NewFile) (*dbmysql.ContentEntity, error)
	Update(ctx context.Context, id uint64, cmd UpdateEntityCommand, keepIDs []uint64, files []NewFile) (*dbmysql.ContentEntity, error)
	Delete(ctx context.Context, id uint64) error
	DeleteAsset(ctx context.Context, assetID uint64) error

	Get(ctx context.Context, id uint64) (*dbmysql.ContentEntity, error)
	List(ctx context.Context, category common.ContentCategory) ([]dbmysql.ContentEntity, error)
	ListPage(ctx context.Context, category common.ContentCategory, page, limit int) (*PageResult, error)
	Counts(ctx context.Context, category common.ContentCategory) (*dbmysql.CategoryCounts, error)
}

type contentService struct {
	entities dbmysql.EntityRepository
	assets   *AssetManager
}

func NewContentService(entities dbmysql.EntityRepository, assets *AssetManager) ContentService {
	return &contentService{entities: entities, assets: assets}
}

func (s *contentService) validateCreate(cmd CreateEntityCommand) error {
	if !cmd.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, cmd.Category)
	}
	if err := common.ValidateTitle(cmd.Title); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Create persists the entity first, then stores any attached files. If asset
// storage fails after the row is written the entity is returned together with
// ErrAssetIncomplete — the caller re-issues an update to retry, no rollback.
func (s *contentService) Create(ctx context.Context, cmd CreateEntityCommand, files []NewFile) (*dbmysql.ContentEntity, error) {
	if err := s.validateCreate(cmd); err != nil {
		return nil, err
	}

	// Reject bad files before writing anything.
	rule := RuleFor(cmd.Category)
	if len(files) > 0 {
		if rule.MaxAssets == 0 {
			return nil, fmt.Errorf("%w: %s does not accept attachments", ErrValidation, cmd.Category)
		}
		if rule.MaxAssets > 0 && len(files) > rule.MaxAssets {
			return nil, fmt.Errorf("%w: at most %d asset(s) for %s", ErrAssetLimit, rule.MaxAssets, cmd.Category)
		}
		for _, file := range files {
			if !rule.Allows(file.ContentType) {
				return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, file.FileName, file.ContentType)
			}
		}
	}

	entity := &dbmysql.ContentEntity{
		Category:     cmd.Category,
		Title:        cmd.Title,
		Description:  cmd.Description,
		Subtitle:     cmd.Subtitle,
		EventDate:    cmd.EventDate,
		Location:     cmd.Location,
		Featured:     cmd.Featured,
		Active:       cmd.Active,
		DisplayOrder: cmd.DisplayOrder,
	}
	if err := s.entities.CreateEntity(ctx, entity); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		assets, err := s.assets.Reconcile(ctx, entity.EntityID, entity.Category, nil, files)
		if err != nil {
			log.Printf("Warning: entity %d created but asset storage failed: %v", entity.EntityID, err)
			return entity, fmt.Errorf("%w: %v", ErrAssetIncomplete, err)
		}
		entity.Assets = assets
	}

	return entity, nil
}

// Update applies merge semantics: nil command fields keep their stored value.
func (s *contentService) Update(ctx context.Context, id uint64, cmd UpdateEntityCommand, keepIDs []uint64, files []NewFile) (*dbmysql.ContentEntity, error) {
	entity, err := s.entities.GetEntityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: entity %d", ErrNotFound, id)
		}
		return nil, err
	}

	if cmd.Title != nil {
		if err := common.ValidateTitle(*cmd.Title); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		entity.Title = *cmd.Title
	}
	if cmd.Description != nil {
		entity.Description = *cmd.Description
	}
	if cmd.Subtitle != nil {
		entity.Subtitle = *cmd.Subtitle
	}
	if cmd.EventDate != nil {
		entity.EventDate = cmd.EventDate
	}
	if cmd.Location != nil {
		entity.Location = *cmd.Location
	}
	if cmd.Featured != nil {
		entity.Featured = *cmd.Featured
	}
	if cmd.Active != nil {
		entity.Active = *cmd.Active
	}
	if cmd.DisplayOrder != nil {
		entity.DisplayOrder = *cmd.DisplayOrder
	}

	if err := s.entities.UpdateEntity(ctx, entity); err != nil {
		return nil, err
	}

	assets, err := s.assets.Reconcile(ctx, entity.EntityID, entity.Category, keepIDs, files)
	if err != nil {
		return nil, err
	}
	entity.Assets = assets

	return entity, nil
}

// Delete cascades: every asset goes through the same single-asset delete
// path (bytes then record), then the entity row is removed.
func (s *contentService) Delete(ctx context.Context, id uint64) error {
	entity, err := s.entities.GetEntityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: entity %d", ErrNotFound, id)
		}
		return err
	}

	for _, asset := range entity.Assets {
		if err := s.assets.DeleteAsset(ctx, asset.AssetID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	if err := s.entities.DeleteEntity(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: entity %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *contentService) DeleteAsset(ctx context.Context, assetID uint64) error {
	return s.assets.DeleteAsset(ctx, assetID)
}

func (s *contentService) Get(ctx context.Context, id uint64) (*dbmysql.ContentEntity, error) {
	entity, err := s.entities.GetEntityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: entity %d", ErrNotFound, id)
		}
		return nil, err
	}
	return entity, nil
}

func (s *contentService) List(ctx context.Context, category common.ContentCategory) ([]dbmysql.ContentEntity, error) {
	return s.entities.ListByCategory(ctx, category)
}

// ListPage is the server-limited paging strategy: the repository returns one
// page plus the true total at fetch time.
func (s *contentService) ListPage(ctx context.Context, category common.ContentCategory, page, limit int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	items, total, err := s.entities.ListPage(ctx, category, page, limit)
	if err != nil {
		return nil, err
	}
	return &PageResult{
		Items:      items,
		Page:       page,
		PageSize:   limit,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *contentService) Counts(ctx context.Context, category common.ContentCategory) (*dbmysql.CategoryCounts, error) {
	return s.entities.CountByCategory(ctx, category)
}
