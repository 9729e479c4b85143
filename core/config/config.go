package config

import (
	"crewhub/core/logger"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Google   GoogleOAuthConfig
	S3       S3Config
}

type ServerConfig struct {
	Port              string
	BaseURL           string
	RateLimitPerSec   int
	RateLimitBurst    int
	EnableMetrics     bool
	EnableWorker      bool
	WorkerConcurrency int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  int // minutes
	RefreshTokenTTL int // hours
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

var (
	instance *Config
	once     sync.Once
)

// Load reads configuration from environment variables (and a local .env file
// when present) exactly once and returns the shared instance.
func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.Info("no .env file found, using environment variables")
		}

		v := viper.New()
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		v.SetDefault("SERVER_PORT", "7070")
		v.SetDefault("SERVER_BASE_URL", "http://localhost:7070")
		v.SetDefault("RATE_LIMIT_PER_SEC", 20)
		v.SetDefault("RATE_LIMIT_BURST", 40)
		v.SetDefault("ENABLE_METRICS", true)
		v.SetDefault("ENABLE_WORKER", true)
		v.SetDefault("WORKER_CONCURRENCY", 5)

		v.SetDefault("DB_HOST", "localhost")
		v.SetDefault("DB_PORT", 5432)
		v.SetDefault("DB_USER", "postgres")
		v.SetDefault("DB_PASSWORD", "postgres")
		v.SetDefault("DB_NAME", "crewhub")
		v.SetDefault("DB_SSLMODE", "disable")

		v.SetDefault("REDIS_ADDR", "localhost:6379")
		v.SetDefault("REDIS_PASSWORD", "")
		v.SetDefault("REDIS_DB", 0)

		v.SetDefault("JWT_ACCESS_TTL_MINUTES", 60)
		v.SetDefault("JWT_REFRESH_TTL_HOURS", 168)

		v.SetDefault("S3_REGION", "ap-northeast-2")

		instance = &Config{
			Server: ServerConfig{
				Port:              v.GetString("SERVER_PORT"),
				BaseURL:           v.GetString("SERVER_BASE_URL"),
				RateLimitPerSec:   v.GetInt("RATE_LIMIT_PER_SEC"),
				RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),
				EnableMetrics:     v.GetBool("ENABLE_METRICS"),
				EnableWorker:      v.GetBool("ENABLE_WORKER"),
				WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("DB_HOST"),
				Port:     v.GetInt("DB_PORT"),
				User:     v.GetString("DB_USER"),
				Password: v.GetString("DB_PASSWORD"),
				DBName:   v.GetString("DB_NAME"),
				SSLMode:  v.GetString("DB_SSLMODE"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			JWT: JWTConfig{
				Secret:          v.GetString("JWT_SECRET"),
				AccessTokenTTL:  v.GetInt("JWT_ACCESS_TTL_MINUTES"),
				RefreshTokenTTL: v.GetInt("JWT_REFRESH_TTL_HOURS"),
			},
			Google: GoogleOAuthConfig{
				ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
				ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
				RedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
			},
			S3: S3Config{
				Region:          v.GetString("S3_REGION"),
				Bucket:          v.GetString("S3_BUCKET"),
				AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
				SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
				Endpoint:        v.GetString("S3_ENDPOINT"),
			},
		}
	})
	return instance
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	return Load()
}
