//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"clubhub/internal/admin"
	"clubhub/internal/config"
	"clubhub/internal/content"
	"clubhub/internal/dbmongo"
	"clubhub/internal/dbmysql"
	"clubhub/internal/submission"
)

// This is just a declaration — wire generates the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewAssetStore,
		ProvideMediaBaseURL,
		ProvideBlobStore,
		ProvideSubmissionStore,
		dbmysql.NewEntityRepository,
		dbmysql.NewMediaAssetRepository,
		dbmysql.NewContactMessageRepository,
		dbmysql.NewJobApplicationRepository,
		dbmysql.NewAdminRepository,
		content.NewAssetManager,
		content.NewContentService,
		content.NewHandler,
		submission.NewSubmissionService,
		submission.NewHandler,
		admin.NewAuthService,
		admin.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil // dummy for compilation
}
