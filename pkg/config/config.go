package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Password      PasswordConfig
	RateLimit     RateLimitConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Storage       StorageConfig
	Upload        UploadConfig
	SMTP          SMTPConfig
	Company       CompanyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RECRUITMENT_APP_ENV" required:"true"`
	Port         string `envconfig:"RECRUITMENT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RECRUITMENT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RECRUITMENT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RECRUITMENT_DB_DSN"`
	Driver string `envconfig:"RECRUITMENT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RECRUITMENT_DB_HOST"`
	LegacyPort     int    `envconfig:"RECRUITMENT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RECRUITMENT_DB_USER"`
	LegacyPassword string `envconfig:"RECRUITMENT_DB_PASSWORD"`
	LegacyName     string `envconfig:"RECRUITMENT_DB_NAME"`
	LegacySSLMode  string `envconfig:"RECRUITMENT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RECRUITMENT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RECRUITMENT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RECRUITMENT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RECRUITMENT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.LegacyHost == "" || db.LegacyUser == "" || db.LegacyName == "" {
		return fmt.Errorf("database DSN or host/user/name settings are required")
	}
	db.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.LegacyHost, db.LegacyPort, db.LegacyUser, db.LegacyPassword, db.LegacyName, db.LegacySSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"RECRUITMENT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"RECRUITMENT_REDIS_ADDR"`
	Password     string        `envconfig:"RECRUITMENT_REDIS_PASSWORD"`
	DB           int           `envconfig:"RECRUITMENT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RECRUITMENT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RECRUITMENT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RECRUITMENT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RECRUITMENT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RECRUITMENT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RECRUITMENT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RECRUITMENT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RECRUITMENT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RECRUITMENT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RECRUITMENT_ARGON_KEY_LEN" default:"32"`
}

// RateLimitConfig drives the process-wide fixed-window limiter.
type RateLimitConfig struct {
	Window time.Duration `envconfig:"RECRUITMENT_RATE_LIMIT_WINDOW" default:"15m"`
	Max    int           `envconfig:"RECRUITMENT_RATE_LIMIT_MAX" default:"300"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginPhoneLimit    int           `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_LOGIN_PHONE_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterPhoneLimit int           `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_REGISTER_PHONE_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"RECRUITMENT_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RECRUITMENT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RECRUITMENT_AUTO_MIGRATE" default:"false"`
}

// StorageConfig points at the S3-compatible attachment store (MinIO in dev).
type StorageConfig struct {
	Bucket       string `envconfig:"RECRUITMENT_S3_BUCKET" required:"true"`
	Region       string `envconfig:"RECRUITMENT_S3_REGION" default:"us-east-1"`
	BaseEndpoint string `envconfig:"RECRUITMENT_S3_BASE_ENDPOINT"`
	AccessKey    string `envconfig:"RECRUITMENT_S3_ACCESS_KEY"`
	SecretKey    string `envconfig:"RECRUITMENT_S3_SECRET_KEY"`
	UsePathStyle bool   `envconfig:"RECRUITMENT_S3_USE_PATH_STYLE" default:"true"`
}

type UploadConfig struct {
	MaxUploadMB int `envconfig:"RECRUITMENT_MAX_UPLOAD_MB" default:"5"`
}

// MaxUploadBytes returns the upload ceiling in bytes.
func (u UploadConfig) MaxUploadBytes() int64 {
	return int64(u.MaxUploadMB) * 1024 * 1024
}

type SMTPConfig struct {
	Host      string `envconfig:"RECRUITMENT_SMTP_HOST"`
	Port      int    `envconfig:"RECRUITMENT_SMTP_PORT" default:"587"`
	Username  string `envconfig:"RECRUITMENT_SMTP_USER"`
	Password  string `envconfig:"RECRUITMENT_SMTP_PASS"`
	FromEmail string `envconfig:"RECRUITMENT_MAIL_FROM_EMAIL"`
	FromName  string `envconfig:"RECRUITMENT_MAIL_FROM_NAME" default:"HR"`
}

// Enabled reports whether outbound mail is configured at all.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.FromEmail != ""
}

type CompanyConfig struct {
	Name     string `envconfig:"RECRUITMENT_COMPANY_NAME" default:"Our Company"`
	LogoURL  string `envconfig:"RECRUITMENT_COMPANY_LOGO_URL"`
	LoginURL string `envconfig:"RECRUITMENT_APP_LOGIN_URL" default:"#"`
}
