package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clubhub/internal/common"
)

// AssetStore keeps the actual media bytes in GridFS. Callers only ever see
// the hex file ID; a stable URL is derived from it by the media server.
type AssetStore struct {
	gridFS *gridfs.Bucket
}

func NewAssetStore(mongoClient *MongoClient) *AssetStore {
	return &AssetStore{
		gridFS: mongoClient.GridFS,
	}
}

type StoredFile struct {
	ID          string           `json:"id"` // GridFS ObjectID hex
	FileName    string           `json:"file_name"`
	ContentType string           `json:"content_type"`
	Size        int64            `json:"size"`
	Kind        common.MediaKind `json:"kind"`
	UploadedAt  time.Time        `json:"uploaded_at"`
}

func (s *AssetStore) Store(ctx context.Context, filename, contentType string, content io.Reader) (*StoredFile, error) {
	kind := common.DetectMediaKind(contentType)

	metadata := bson.M{
		"kind":         kind.String(),
		"content_type": contentType,
		"uploaded_at":  time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := s.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &StoredFile{
		ID:          stream.FileID.(primitive.ObjectID).Hex(),
		FileName:    filename,
		ContentType: contentType,
		Size:        size,
		Kind:        kind,
		UploadedAt:  time.Now(),
	}, nil
}

func (s *AssetStore) Open(ctx context.Context, fileID string) (io.Reader, *StoredFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := s.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	stored := &StoredFile{
		ID:          fileID,
		FileName:    fileInfo.Name,
		Size:        fileInfo.Length,
		ContentType: getStringFromMap(metadata, "content_type"),
		Kind:        common.MediaKind(getStringFromMap(metadata, "kind")),
		UploadedAt:  fileInfo.UploadDate,
	}

	return stream, stored, nil
}

func (s *AssetStore) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return s.gridFS.Delete(objectID)
}

// Helper function for metadata extraction
func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
