package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server         ServerConfig    `yaml:"server"`
	DatabaseConfig DatabaseConfig  `yaml:"databaseConfig"`
	RedisConfig    RedisConfig     `yaml:"redisConfig"`
	S3Config       S3Config        `yaml:"s3Config"`
	JWT            JWTConfig       `yaml:"jwt"`
	Cookie         CookieConfig    `yaml:"cookie"`
	TTL            TTL             `yaml:"TTL"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Log            LogConfig       `yaml:"log"`
}

// LoadConfig : читает yaml, подставляет секреты из окружения, заполняет значения по умолчанию
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	return ParseConfig(file)
}

func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("невалидная конфигурация: %w", err)
	}

	return &cfg, nil
}

func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv("VIDEOTUBE_ACCESS_SECRET"); v != "" {
		c.JWT.AccessSecretKey = v
	}
	if v := os.Getenv("VIDEOTUBE_REFRESH_SECRET"); v != "" {
		c.JWT.RefreshSecretKey = v
	}
	if v := os.Getenv("VIDEOTUBE_DATABASE_DSN"); v != "" {
		c.DatabaseConfig.DSN = v
	}
	if v := os.Getenv("VIDEOTUBE_S3_SECRET_KEY"); v != "" {
		c.S3Config.SecretKey = v
	}
}

func (c *AppConfig) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api/v1"
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 512 << 20
	}
	if c.JWT.AccessTokenTTL == "" {
		c.JWT.AccessTokenTTL = "15m"
	}
	if c.JWT.RefreshTokenTTL == "" {
		c.JWT.RefreshTokenTTL = "240h"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "videotube-server"
	}
	if c.Cookie.SameSite == "" {
		c.Cookie.SameSite = "lax"
	}
	if c.TTL.VideoCache == 0 {
		c.TTL.VideoCache = 300
	}
	if c.RateLimit.AuthRequestsPerMinute == 0 {
		c.RateLimit.AuthRequestsPerMinute = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *AppConfig) validate() error {
	if c.JWT.AccessSecretKey == "" {
		return fmt.Errorf("jwt.access_secret_key обязателен")
	}
	if c.JWT.RefreshSecretKey == "" {
		return fmt.Errorf("jwt.refresh_secret_key обязателен")
	}
	if c.JWT.AccessSecretKey == c.JWT.RefreshSecretKey {
		return fmt.Errorf("ключи access и refresh токенов должны отличаться")
	}
	if _, err := time.ParseDuration(c.JWT.AccessTokenTTL); err != nil {
		return fmt.Errorf("jwt.access_token_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshTokenTTL); err != nil {
		return fmt.Errorf("jwt.refresh_token_ttl: %w", err)
	}
	if c.DatabaseConfig.DSN == "" {
		return fmt.Errorf("databaseConfig.dsn обязателен")
	}
	if c.S3Config.Bucket == "" {
		return fmt.Errorf("s3Config.bucket обязателен")
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	database, err := NewDatabaseConnection("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
