package common

import "strings"

// ContentCategory identifies which kind of content record an entity is.
// Media rules (how many assets, which MIME types) hang off the category.
type ContentCategory string

const (
	CategoryActivity        ContentCategory = "activity"
	CategoryBoardMember     ContentCategory = "board_member"
	CategoryJobPost         ContentCategory = "job_post"
	CategoryCVTemplate      ContentCategory = "cv_template"
	CategoryCareerGuideline ContentCategory = "career_guideline"
	CategoryInterviewTip    ContentCategory = "interview_tip"
	CategorySuccessStory    ContentCategory = "success_story"
)

// String returns the string representation
func (c ContentCategory) String() string {
	return string(c)
}

// IsValid checks if the content category is valid
func (c ContentCategory) IsValid() bool {
	switch c {
	case CategoryActivity, CategoryBoardMember, CategoryJobPost, CategoryCVTemplate,
		CategoryCareerGuideline, CategoryInterviewTip, CategorySuccessStory:
		return true
	}
	return false
}

// MediaKind represents the broad asset class stored for an entity
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindDocument MediaKind = "document"
)

// String returns the string representation
func (mk MediaKind) String() string {
	return string(mk)
}

// IsValid checks if the media kind is valid
func (mk MediaKind) IsValid() bool {
	return mk == MediaKindImage || mk == MediaKindDocument
}

func DetectMediaKind(mimeType string) MediaKind {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaKindImage
	}
	if lowerMimeType == "application/pdf" {
		return MediaKindDocument
	}
	return MediaKindImage // Default fallback
}
