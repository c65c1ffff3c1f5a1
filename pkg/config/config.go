package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	Upload UploadConfig
}

type AppConfig struct {
	Port        string `envconfig:"PORT" default:"3000"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	DSN      string `envconfig:"DATABASE_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"gudang"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"100"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"rahasia-ganti-di-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"2h"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"go-gudang-api"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"` // 5MB
	MaxWidth int    `envconfig:"UPLOAD_MAX_WIDTH" default:"800"`
	Quality  int    `envconfig:"UPLOAD_JPEG_QUALITY" default:"70"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// EnsureDSN assembles a postgres DSN from the discrete DB_* variables when
// DATABASE_URL is not set.
func (d *DBConfig) EnsureDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}
