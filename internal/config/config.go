package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Service holds settings for the API process itself.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	PublicURL   string `envconfig:"SERVICE_PUBLIC_URL" default:"http://localhost:8080"`
}

// Mongo holds document store connection settings.
type Mongo struct {
	URI      string `envconfig:"MONGODB_URI" required:"true"`
	Database string `envconfig:"MONGODB_DB" default:"portfolio"`
}

// Auth holds admin authentication settings. AdminEmail/AdminPassword seed
// the first admin account when the users collection is empty.
type Auth struct {
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"24"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

// S3 holds object storage settings. Endpoint and UsePathStyle support
// MinIO-compatible deployments.
type S3 struct {
	Bucket       string `envconfig:"S3_BUCKET" required:"true"`
	Region       string `envconfig:"S3_REGION" default:"us-east-1"`
	Endpoint     string `envconfig:"S3_ENDPOINT"`
	AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	SecretKey    string `envconfig:"S3_SECRET_KEY"`
	UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	KeyPrefix    string `envconfig:"S3_KEY_PREFIX" default:"portfolio"`
}

// Upload holds settings for the local-disk half of the upload path.
type Upload struct {
	LocalDir   string `envconfig:"UPLOAD_LOCAL_DIR" default:"uploads"`
	MaxSizeMB  int64  `envconfig:"UPLOAD_MAX_SIZE_MB" default:"5"`
	PublicPath string `envconfig:"UPLOAD_PUBLIC_PATH" default:"/uploads"`
}

// Config holds all application configuration.
type Config struct {
	Service Service
	Mongo   Mongo
	Auth    Auth
	S3      S3
	Upload  Upload
}

// Load reads configuration from the environment. A .env file is optional
// and only used for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
