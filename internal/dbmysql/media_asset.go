package dbmysql

import (
	"time"
)

// MediaAsset is one binary attachment owned by exactly one ContentEntity.
// The bytes live in GridFS under FileID; this row carries the reference.
type MediaAsset struct {
	AssetID     uint64    `gorm:"primaryKey;autoIncrement;column:asset_id" json:"id"`
	EntityID    uint64    `gorm:"index;column:entity_id" json:"entity_id"`
	FileID      string    `gorm:"size:24;uniqueIndex;column:file_id" json:"file_id"` // MongoDB ObjectID
	FileName    string    `gorm:"size:255;column:file_name" json:"file_name"`
	ContentType string    `gorm:"size:100;column:content_type" json:"content_type"`
	Size        int64     `gorm:"column:size" json:"size"`
	URL         string    `gorm:"size:500;column:url" json:"url"` // media server URL
	Position    int       `gorm:"column:position" json:"position"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (MediaAsset) TableName() string {
	return "media_assets"
}
