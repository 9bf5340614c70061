package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	UploadBackendR2     = "r2"
	UploadBackendImages = "images"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port               string
	AppEnv             string
	MongoURI           string
	MongoDatabase      string
	JWTSecret          string
	ClientURL          string
	CORSOrigin         string
	RateLimitPerMinute int
	UploadBackend      string

	Email            EmailConfig
	R2               R2Config
	CloudflareImages struct {
		AccountID string
		Token     string
		Hash      string // imagedelivery.net account hash
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "travel_planner"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ClientURL:     strings.TrimRight(os.Getenv("CLIENT_URL"), "/"),
		UploadBackend: getEnv("UPLOAD_BACKEND", UploadBackendR2),
	}
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.ClientURL)

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %q", os.Getenv("RATE_LIMIT_PER_MINUTE"))
	}
	cfg.RateLimitPerMinute = limit

	// Mail relay
	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "no-reply@travelplanner.com")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Travel Planner")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = strings.TrimRight(os.Getenv("R2_PUBLIC_URL"), "/")

	// Cloudflare Images config
	cfg.CloudflareImages.AccountID = os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	cfg.CloudflareImages.Token = os.Getenv("CLOUDFLARE_IMAGES_TOKEN")
	cfg.CloudflareImages.Hash = os.Getenv("CLOUDFLARE_IMAGES_HASH")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.ClientURL == "" {
		missing = append(missing, "CLIENT_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.UploadBackend {
	case UploadBackendR2, UploadBackendImages:
	default:
		return fmt.Errorf("unknown UPLOAD_BACKEND %q", c.UploadBackend)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
