package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentCategory_String(t *testing.T) {
	assert.Equal(t, "activity", CategoryActivity.String())
	assert.Equal(t, "board_member", CategoryBoardMember.String())
	assert.Equal(t, "cv_template", CategoryCVTemplate.String())
}

func TestContentCategory_IsValid(t *testing.T) {
	valid := []ContentCategory{
		CategoryActivity,
		CategoryBoardMember,
		CategoryJobPost,
		CategoryCVTemplate,
		CategoryCareerGuideline,
		CategoryInterviewTip,
		CategorySuccessStory,
	}
	for _, c := range valid {
		assert.True(t, c.IsValid(), "expected %s to be valid", c)
	}

	assert.False(t, ContentCategory("gallery").IsValid())
	assert.False(t, ContentCategory("").IsValid())
}

func TestMediaKind_IsValid(t *testing.T) {
	assert.True(t, MediaKindImage.IsValid())
	assert.True(t, MediaKindDocument.IsValid())

	invalidKind := MediaKind("video")
	assert.False(t, invalidKind.IsValid())
}

func TestDetectMediaKind_Images(t *testing.T) {
	imageTypes := []string{
		"image/jpeg",
		"image/png",
		"image/webp",
		"IMAGE/PNG",
	}

	for _, mimeType := range imageTypes {
		result := DetectMediaKind(mimeType)
		assert.Equal(t, MediaKindImage, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectMediaKind_Documents(t *testing.T) {
	assert.Equal(t, MediaKindDocument, DetectMediaKind("application/pdf"))
	assert.Equal(t, MediaKindDocument, DetectMediaKind("Application/PDF"))
}

func TestDetectMediaKind_DefaultFallback(t *testing.T) {
	unknownTypes := []string{
		"text/plain",
		"audio/mp3",
		"unknown/type",
		"",
	}

	for _, mimeType := range unknownTypes {
		result := DetectMediaKind(mimeType)
		assert.Equal(t, MediaKindImage, result, "Failed for MIME type: %s", mimeType)
	}
}
