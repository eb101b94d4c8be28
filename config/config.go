package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	DBSource       string `mapstructure:"DB_SOURCE"`      // Database connection string
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"` // Address where the server will run (e.g., "0.0.0.0:8080")
	FrontendURL    string `mapstructure:"FRONTEND_URL"`   // Allowed CORS origin
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`

	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`
	LLMMaxAttempts int    `mapstructure:"LLM_MAX_ATTEMPTS"`

	UploadDir       string `mapstructure:"UPLOAD_DIR"`
	MaxUploadBytes  int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	StorageProvider string `mapstructure:"STORAGE_PROVIDER"` // "local" or "s3"
	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Prefix        string `mapstructure:"S3_PREFIX"`
	S3Region        string `mapstructure:"S3_REGION"`
	S3Endpoint      string `mapstructure:"S3_ENDPOINT"` // set for MinIO or R2
	S3AccessKey     string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey     string `mapstructure:"S3_SECRET_KEY"`

	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`   // Secret key for signing tokens
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"` // Duration tokens will remain valid (e.g., "15m", "1h")
	AdminUsername       string        `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash   string        `mapstructure:"ADMIN_PASSWORD_HASH"` // bcrypt hash, see `cvreview token --hash`

	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	SeedFile        string        `mapstructure:"SEED_FILE"` // empty means the built-in catalog
}

var defaults = map[string]any{
	"DB_SOURCE":             "",
	"SERVER_ADDRESS":        "0.0.0.0:8080",
	"FRONTEND_URL":          "http://localhost:3000",
	"METRICS_ENABLED":       true,
	"GEMINI_API_KEY":        "",
	"GEMINI_MODEL":          "gemini-2.5-flash-lite",
	"LLM_MAX_ATTEMPTS":      2,
	"UPLOAD_DIR":            "public/uploads",
	"MAX_UPLOAD_BYTES":      16 << 20,
	"STORAGE_PROVIDER":      "local",
	"S3_BUCKET":             "",
	"S3_PREFIX":             "uploads",
	"S3_REGION":             "",
	"S3_ENDPOINT":           "",
	"S3_ACCESS_KEY":         "",
	"S3_SECRET_KEY":         "",
	"TOKEN_SYMMETRIC_KEY":   "",
	"ACCESS_TOKEN_DURATION": "15m",
	"ADMIN_USERNAME":        "admin",
	"ADMIN_PASSWORD_HASH":   "",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"SHUTDOWN_TIMEOUT":      "10s",
	"SEED_FILE":             "",
}

// LoadConfig loads app.env from path plus the environment into a Config.
// A .env.local file next to it is loaded into the environment first, for
// secrets that should not be committed. Both files are optional.
func LoadConfig(path string) (config Config, err error) {
	err = godotenv.Load(filepath.Join(path, ".env.local"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("failed to load .env.local: %w", err)
	}

	v := viper.New()

	// Add the directory where the config file is located
	v.AddConfigPath(path)

	// Specify the name of the config file (without extension)
	v.SetConfigName("app")

	// Specify the file type. In this case, we're using a .env-style file
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Automatically read in any environment variables that match the keys
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal the config values into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks values that would otherwise fail later at first use.
func (c Config) Validate() error {
	switch c.StorageProvider {
	case "local", "s3":
	default:
		return fmt.Errorf("invalid STORAGE_PROVIDER %q: must be 'local' or 's3'", c.StorageProvider)
	}
	if c.StorageProvider == "s3" && c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when STORAGE_PROVIDER is s3")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.LLMMaxAttempts < 1 {
		return fmt.Errorf("LLM_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}
