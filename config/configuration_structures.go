package config

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	BasePath       string `yaml:"base_path"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	Development    bool   `yaml:"development"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Local         bool   `yaml:"local"`
}

// JWTConfig : access и refresh токены подписываются разными ключами
type JWTConfig struct {
	AccessSecretKey  string `yaml:"access_secret_key"`
	RefreshSecretKey string `yaml:"refresh_secret_key"`
	AccessTokenTTL   string `yaml:"access_token_ttl"`
	RefreshTokenTTL  string `yaml:"refresh_token_ttl"`
	Issuer           string `yaml:"issuer"`
}

type CookieConfig struct {
	Secure   bool   `yaml:"secure"`
	SameSite string `yaml:"same_site"`
}

type TTL struct {
	VideoCache int `yaml:"video_cache"` // секунды
}

type RateLimitConfig struct {
	AuthRequestsPerMinute int `yaml:"auth_requests_per_minute"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}
