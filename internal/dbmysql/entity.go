package dbmysql

import (
	"time"

	"clubhub/internal/common"
)

// ContentEntity is one admin-managed content record. The scalar columns cover
// every category; unused ones stay at their zero value for that category.
type ContentEntity struct {
	EntityID     uint64                 `gorm:"primaryKey;autoIncrement;column:entity_id" json:"id"`
	Category     common.ContentCategory `gorm:"size:32;index;column:category" json:"category"`
	Title        string                 `gorm:"size:255;column:title" json:"title"`
	Description  string                 `gorm:"type:text;column:description" json:"description"`
	Subtitle     string                 `gorm:"size:255;column:subtitle" json:"subtitle"` // role, company or author line
	EventDate    *time.Time             `gorm:"column:event_date" json:"event_date,omitempty"`
	Location     string                 `gorm:"size:255;column:location" json:"location"`
	Featured     bool                   `gorm:"column:featured" json:"featured"`
	Active       bool                   `gorm:"column:active;default:true" json:"active"`
	DisplayOrder int                    `gorm:"column:display_order;default:0" json:"display_order"`
	CreatedAt    time.Time              `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"column:updated_at" json:"updated_at"`

	Assets []MediaAsset `gorm:"foreignKey:EntityID" json:"assets"`
}

func (ContentEntity) TableName() string {
	return "content_entities"
}
