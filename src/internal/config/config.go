package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

type Config struct {
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	Database          Database
	HTTP              HTTP
	Auth              Auth
	PoolStatsInterval time.Duration `env:"POOL_STATS_INTERVAL" envDefault:"1m"`
}

type Database struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DSN             string        `env:"DATABASE_DSN"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	Name            string        `env:"DB_NAME" envDefault:"investimentos"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"15m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
}

// Auth is optional: basic auth is only enforced when both values are set.
type Auth struct {
	User    string `env:"BASIC_AUTH_USER"`
	KeyHash string `env:"BASIC_AUTH_KEY_HASH"`
}

func (a Auth) Enabled() bool {
	return strings.TrimSpace(a.User) != "" && strings.TrimSpace(a.KeyHash) != ""
}

func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver != DriverPQ && cfg.Database.Driver != DriverPGX {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	for i, origin := range cfg.HTTP.AllowedOrigins {
		cfg.HTTP.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return cfg, nil
}

// ConnectionString returns DATABASE_DSN when set, otherwise a libpq keyword DSN built from the DB_* parts.
func (d Database) ConnectionString() string {
	if dsn := strings.TrimSpace(d.DSN); dsn != "" {
		return normalizeConnectionString(dsn)
	}

	parts := []string{
		"host=" + quoteValue(d.Host),
		fmt.Sprintf("port=%d", d.Port),
		"dbname=" + quoteValue(d.Name),
		"user=" + quoteValue(d.User),
	}
	if d.Password != "" {
		parts = append(parts, "password="+quoteValue(d.Password))
	}
	parts = append(parts, "sslmode="+quoteValue(d.SSLMode))

	return strings.Join(parts, " ")
}

func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, ` '\`) {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `'`, `\'`)
		return "'" + v + "'"
	}
	return v
}

// normalizeConnectionString accepts URLs and libpq DSNs as-is and rewrites the
// "Host=..;Database=..;Username=.." form into libpq keywords.
func normalizeConnectionString(raw string) string {
	if u, err := url.Parse(raw); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		return raw
	}
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := quoteValue(strings.TrimSpace(kv[1]))

		switch key {
		case "host", "server":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username", "user id", "user":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "sslmode", "ssl mode":
			hasSSLMode = true
			out = append(out, "sslmode="+strings.ToLower(val))
		default:
			out = append(out, strings.ReplaceAll(key, " ", "_")+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
