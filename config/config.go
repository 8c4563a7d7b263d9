package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultJWTSecret = "dev-only-change-me"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort         string   `yaml:"server_port"`
	ServerHost         string   `yaml:"server_host"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Database configuration
	DBDriver   string `yaml:"db_driver"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`
	SQLitePath string `yaml:"sqlite_path"`

	// Redis configuration
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisURL      string `yaml:"redis_url"`

	// JWT configuration
	JWTSecret string        `yaml:"jwt_secret"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`

	// Object storage for progress photos
	S3Bucket   string        `yaml:"s3_bucket"`
	AWSRegion  string        `yaml:"aws_region"`
	S3Endpoint string        `yaml:"s3_endpoint"`
	PresignTTL time.Duration `yaml:"presign_ttl"`

	// Meal recommendations
	RecommendationStrictScaling bool `yaml:"recommendation_strict_scaling"`
	RecentMealWindow            int  `yaml:"recent_meal_window"`
	RecommendationRateLimit     int  `yaml:"recommendation_rate_limit"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		ServerPort:              "8080",
		ServerHost:              "0.0.0.0",
		CORSAllowedOrigins:      []string{"http://localhost:5173"},
		DBDriver:                "postgres",
		DBHost:                  "localhost",
		DBPort:                  "5432",
		DBUser:                  "postgres",
		DBName:                  "fittrack",
		DBSSLMode:               "disable",
		SQLitePath:              "fittrack.db",
		RedisHost:               "localhost",
		RedisPort:               "6379",
		JWTSecret:               defaultJWTSecret,
		JWTTTL:                  24 * time.Hour,
		S3Bucket:                "fittrack-progress-photos",
		AWSRegion:               "us-east-1",
		PresignTTL:              15 * time.Minute,
		RecentMealWindow:        10,
		RecommendationRateLimit: 60,
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, environment variables and finally Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}
	loadSecrets(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.ServerHost, "SERVER_HOST")
	setList(&cfg.CORSAllowedOrigins, "CORS_ALLOWED_ORIGINS")
	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.S3Bucket, "S3_BUCKET_NAME")
	setString(&cfg.AWSRegion, "AWS_REGION")
	setString(&cfg.S3Endpoint, "S3_ENDPOINT")

	if err := setInt(&cfg.RedisDB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&cfg.RecentMealWindow, "RECENT_MEAL_WINDOW"); err != nil {
		return err
	}
	if err := setInt(&cfg.RecommendationRateLimit, "RECOMMENDATION_RATE_LIMIT"); err != nil {
		return err
	}
	if err := setBool(&cfg.RecommendationStrictScaling, "RECOMMENDATION_STRICT_SCALING"); err != nil {
		return err
	}
	if err := setDuration(&cfg.JWTTTL, "JWT_TTL"); err != nil {
		return err
	}
	return setDuration(&cfg.PresignTTL, "PRESIGN_TTL")
}

// loadSecrets lets Docker secrets override sensitive values.
func loadSecrets(cfg *Config) {
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setList(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
