package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var of the same name.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBDriver              string `mapstructure:"DB_DRIVER"` // mysql | postgres
	DatabaseURL           string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns        int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns        int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeMins int    `mapstructure:"DB_CONN_MAX_LIFETIME_MIN"`

	// Redis (empty URL disables the options cache)
	RedisURL                string `mapstructure:"REDIS_URL"`
	OpcionesCacheTTLSeconds int    `mapstructure:"OPCIONES_CACHE_TTL_SECONDS"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	AuthRequired       bool   `mapstructure:"AUTH_REQUIRED"`
	AuthWriteRoles     string `mapstructure:"AUTH_WRITE_ROLES"` // comma separated

	// Rate limits (requests per minute per IP)
	LoginRateLimit int `mapstructure:"LOGIN_RATE_LIMIT"`
	APIRateLimit   int `mapstructure:"API_RATE_LIMIT"`

	// CORS (comma separated, "*" allows any origin)
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Exports
	ExportTitulo string `mapstructure:"EXPORT_TITULO"`
}

// WriteRoles returns AuthWriteRoles split into trimmed, non-empty role names.
func (c *Config) WriteRoles() []string { return lista(c.AuthWriteRoles) }

// Origins returns the allowed CORS origins.
func (c *Config) Origins() []string { return lista(c.CORSOrigins) }

func lista(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 3001)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DATABASE_URL", "root:@tcp(localhost:3306)/sistema_maquinas?charset=utf8mb4&parseTime=true")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("OPCIONES_CACHE_TTL_SECONDS", 300)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("AUTH_REQUIRED", true)
	v.SetDefault("AUTH_WRITE_ROLES", "admin")
	v.SetDefault("LOGIN_RATE_LIMIT", 20)
	v.SetDefault("API_RATE_LIMIT", 1000)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("EXPORT_TITULO", "Inventario de maquinas")

	// Optional .env file for local development, does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
