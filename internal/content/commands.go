package content

import (
	"io"
	"time"

	"clubhub/internal/common"
)

// CreateEntityCommand carries every scalar field for a new content record.
type CreateEntityCommand struct {
	Category     common.ContentCategory `json:"category"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Subtitle     string                 `json:"subtitle"`
	EventDate    *time.Time             `json:"event_date,omitempty"`
	Location     string                 `json:"location"`
	Featured     bool                   `json:"featured"`
	Active       bool                   `json:"active"`
	DisplayOrder int                    `json:"display_order"`
}

// UpdateEntityCommand uses merge semantics: a nil field means "leave the
// stored value untouched", never "clear it".
type UpdateEntityCommand struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Subtitle     *string    `json:"subtitle,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Featured     *bool      `json:"featured,omitempty"`
	Active       *bool      `json:"active,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

// NewFile is one uploaded binary payload with its declared content type.
type NewFile struct {
	FileName    string
	ContentType string
	Content     io.Reader
}
