package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmongo"
	"clubhub/internal/dbmysql"
)

// BlobStore is the durable byte store behind media assets. dbmongo.AssetStore
// is the production implementation (GridFS).
type BlobStore interface {
	Store(ctx context.Context, filename, contentType string, content io.Reader) (*dbmongo.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

// AssetManager reconciles an entity's asset list on create/update and handles
// single-asset deletes. It never caches; every read re-derives from the
// repository.
type AssetManager struct {
	assets       dbmysql.MediaAssetRepository
	store        BlobStore
	mediaBaseURL string
}

func NewAssetManager(assets dbmysql.MediaAssetRepository, store BlobStore, mediaBaseURL string) *AssetManager {
	return &AssetManager{assets: assets, store: store, mediaBaseURL: mediaBaseURL}
}

// Reconcile validates and stores newFiles against the entity, appending each
// at the next free position (max existing + 1). keepIDs is the set of
// existing assets the caller wants kept; assets omitted from it are left
// untouched — omission means "no change", removal only ever happens through
// an explicit DeleteAsset call. Validation is all-or-nothing: one bad file
// rejects the whole batch before any byte is stored.
func (m *AssetManager) Reconcile(ctx context.Context, entityID uint64, category common.ContentCategory, keepIDs []uint64, newFiles []NewFile) ([]dbmysql.MediaAsset, error) {
	rule := RuleFor(category)

	if len(newFiles) > 0 {
		if rule.MaxAssets == 0 {
			return nil, fmt.Errorf("%w: %s does not accept attachments", ErrValidation, category)
		}

		for _, file := range newFiles {
			if !rule.Allows(file.ContentType) {
				return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, file.FileName, file.ContentType)
			}
		}

		if rule.MaxAssets > 0 {
			existing, err := m.assets.CountByEntity(ctx, entityID)
			if err != nil {
				return nil, err
			}
			if existing+int64(len(newFiles)) > int64(rule.MaxAssets) {
				return nil, fmt.Errorf("%w: at most %d asset(s) for %s", ErrAssetLimit, rule.MaxAssets, category)
			}
		}

		position, err := m.assets.MaxPosition(ctx, entityID)
		if err != nil {
			return nil, err
		}

		for _, file := range newFiles {
			stored, err := m.store.Store(ctx, file.FileName, file.ContentType, file.Content)
			if err != nil {
				return nil, fmt.Errorf("asset storage failed: %w", err)
			}

			position++
			asset := &dbmysql.MediaAsset{
				EntityID:    entityID,
				FileID:      stored.ID,
				FileName:    stored.FileName,
				ContentType: stored.ContentType,
				Size:        stored.Size,
				URL:         m.mediaBaseURL + stored.ID,
				Position:    position,
				CreatedAt:   time.Now(),
			}
			if err := m.assets.CreateAsset(ctx, asset); err != nil {
				return nil, fmt.Errorf("asset record failed: %w", err)
			}
		}
	}

	return m.assets.ListByEntity(ctx, entityID)
}

// DeleteAsset removes exactly one asset: bytes first, then the record.
// A second call for the same id reports ErrNotFound and changes nothing.
// Sibling assets keep their URLs and positions; gaps are never renumbered.
func (m *AssetManager) DeleteAsset(ctx context.Context, assetID uint64) error {
	asset, err := m.assets.GetAssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: asset %d", ErrNotFound, assetID)
		}
		return err
	}

	if err := m.store.Delete(ctx, asset.FileID); err != nil {
		// Orphaned bytes beat an orphaned record; keep going.
		log.Printf("Warning: failed to delete stored bytes for asset %d: %v", assetID, err)
	}

	if err := m.assets.DeleteAsset(ctx, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: asset %d", ErrNotFound, assetID)
		}
		return err
	}
	return nil
}
