package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (media bytes live in GridFS)
	MongoDB MongoConfig `json:"mongodb"`

	// Upload Configuration
	Upload UploadConfig `json:"upload"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	MediaBaseURL string `json:"media_base_url"` // prefix for generated asset URLs
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains MongoDB/GridFS configuration
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

// UploadConfig bounds multipart submissions
type UploadConfig struct {
	MaxFileSizeMB  int `json:"max_file_size_mb"`
	MaxFilesPerReq int `json:"max_files_per_req"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig builds the config from environment variables with sane defaults.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			MediaBaseURL: getEnvOrDefault("MEDIA_BASE_URL", "http://localhost:8081/media/"),
			ReadTimeout:  getEnvIntOrDefault("READ_TIMEOUT", 30),
			WriteTimeout: getEnvIntOrDefault("WRITE_TIMEOUT", 30),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "clubhub_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "clubhub_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnvOrDefault("MONGO_DB", "clubhub_media"),
			Bucket:   getEnvOrDefault("MONGO_BUCKET", "media_files"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB:  getEnvIntOrDefault("UPLOAD_MAX_FILE_MB", 10),
			MaxFilesPerReq: getEnvIntOrDefault("UPLOAD_MAX_FILES", 10),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

// DSN builds the MySQL connection string
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI returns the MongoDB connection URI
func (cfg *Config) GetMongoURI() string {
	return cfg.MongoDB.URI
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
