package di

import (
	"gorm.io/gorm"

	"clubhub/internal/admin"
	"clubhub/internal/config"
	"clubhub/internal/content"
	"clubhub/internal/dbmongo"
	"clubhub/internal/submission"
)

// Application bundles everything the admin server needs after wiring.
type Application struct {
	Config            *config.Config
	DB                *gorm.DB
	Mongo             *dbmongo.MongoClient
	ContentHandler    *content.Handler
	SubmissionHandler *submission.Handler
	AuthHandler       *admin.Handler
}

func ProvideMediaBaseURL(cfg *config.Config) string {
	return cfg.Server.MediaBaseURL
}

func ProvideBlobStore(store *dbmongo.AssetStore) content.BlobStore {
	return store
}

func ProvideSubmissionStore(store *dbmongo.AssetStore) submission.AssetStore {
	return store
}
