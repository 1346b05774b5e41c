package content

import (
	"clubhub/internal/common"
)

// MediaRule describes what a content category may attach: which MIME types
// and how many assets at most. MaxAssets 0 means media-less, -1 unlimited.
type MediaRule struct {
	Kind         common.MediaKind
	AllowedTypes []string
	MaxAssets    int
}

var (
	imageTypes    = []string{"image/jpeg", "image/png", "image/webp"}
	documentTypes = []string{"application/pdf"}
)

var mediaRules = map[common.ContentCategory]MediaRule{
	common.CategoryActivity:        {Kind: common.MediaKindImage, AllowedTypes: imageTypes, MaxAssets: -1},
	common.CategoryBoardMember:     {Kind: common.MediaKindImage, AllowedTypes: imageTypes, MaxAssets: 1},
	common.CategoryJobPost:         {MaxAssets: 0},
	common.CategoryCVTemplate:      {Kind: common.MediaKindDocument, AllowedTypes: documentTypes, MaxAssets: 1},
	common.CategoryCareerGuideline: {Kind: common.MediaKindImage, AllowedTypes: imageTypes, MaxAssets: 1},
	common.CategoryInterviewTip:    {MaxAssets: 0},
	common.CategorySuccessStory:    {Kind: common.MediaKindImage, AllowedTypes: imageTypes, MaxAssets: 1},
}

// RuleFor returns the media rule for a category. Unknown categories get the
// media-less rule.
func RuleFor(category common.ContentCategory) MediaRule {
	if rule, ok := mediaRules[category]; ok {
		return rule
	}
	return MediaRule{MaxAssets: 0}
}

func (r MediaRule) Allows(contentType string) bool {
	for _, allowed := range r.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
