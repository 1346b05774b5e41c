package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"SERVER_PORT", "SERVER_HOST", "MEDIA_BASE_URL", "ENVIRONMENT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"MONGO_URI", "MONGO_DB", "MONGO_BUCKET",
	"UPLOAD_MAX_FILE_MB", "UPLOAD_MAX_FILES",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
}

func clearTestEnvVars() {
	for _, key := range testEnvVars {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_DefaultBehavior(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	config := LoadConfig()

	require.NotNil(t, config)

	// Database defaults
	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, "3306", config.Database.Port)
	assert.Equal(t, "clubhub_user", config.Database.Username)
	assert.Equal(t, "clubhub_db", config.Database.DatabaseName)
	assert.Equal(t, 25, config.Database.MaxOpenConns)
	assert.Equal(t, 5, config.Database.MaxIdleConns)

	// Mongo defaults
	assert.Equal(t, "mongodb://localhost:27017", config.MongoDB.URI)
	assert.Equal(t, "clubhub_media", config.MongoDB.Database)
	assert.Equal(t, "media_files", config.MongoDB.Bucket)

	// Upload defaults
	assert.Equal(t, 10, config.Upload.MaxFileSizeMB)
	assert.Equal(t, 10, config.Upload.MaxFilesPerReq)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "3307")
	os.Setenv("DB_USER", "admin")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_NAME", "club_prod")
	os.Setenv("UPLOAD_MAX_FILE_MB", "25")

	config := LoadConfig()

	assert.Equal(t, "db.internal", config.Database.Host)
	assert.Equal(t, "3307", config.Database.Port)
	assert.Equal(t, 25, config.Upload.MaxFileSizeMB)
}

func TestConfig_DSN(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("DB_USER", "admin")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "3307")
	os.Setenv("DB_NAME", "club_prod")

	config := LoadConfig()
	dsn := config.DSN()

	assert.Equal(t, "admin:secret@tcp(db.internal:3307)/club_prod?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestConfig_DSN_FallbackHostPort(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Username = "u"
	cfg.Database.DatabaseName = "d"

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "@tcp(localhost:3306)/d")
}

func TestGetEnvIntOrDefault_BadValue(t *testing.T) {
	os.Setenv("UPLOAD_MAX_FILE_MB", "not-a-number")
	defer os.Unsetenv("UPLOAD_MAX_FILE_MB")

	config := LoadConfig()
	assert.Equal(t, 10, config.Upload.MaxFileSizeMB)
}
