package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPQ, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t,
		"host=db.internal port=5432 dbname=investimentos user=postgres password=s3cret sslmode=disable",
		cfg.Database.ConnectionString(),
	)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadTrimsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
}

func TestConnectionStringQuotesSpecialValues(t *testing.T) {
	db := Database{Host: "localhost", Port: 5433, Name: "inv", User: "app", Password: "p w'd", SSLMode: "require"}

	assert.Equal(t,
		`host=localhost port=5433 dbname=inv user=app password='p w\'d' sslmode=require`,
		db.ConnectionString(),
	)
}

func TestNormalizeConnectionString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "semicolon form",
			raw:  "Host=localhost;Port=5432;Database=investimentos;Username=postgres;Password=x;Timeout=30",
			want: "host=localhost port=5432 dbname=investimentos user=postgres password=x connect_timeout=30 sslmode=disable",
		},
		{
			name: "semicolon form keeps ssl mode",
			raw:  "Host=db;Database=inv;SslMode=Require",
			want: "host=db dbname=inv sslmode=require",
		},
		{
			name: "url untouched",
			raw:  "postgres://u:p@db:5432/inv?sslmode=disable",
			want: "postgres://u:p@db:5432/inv?sslmode=disable",
		},
		{
			name: "keyword dsn untouched",
			raw:  "host=db dbname=inv",
			want: "host=db dbname=inv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeConnectionString(tt.raw))
		})
	}
}

func TestAuthEnabled(t *testing.T) {
	assert.True(t, Auth{User: "front", KeyHash: "$2a$10$abc"}.Enabled())
	assert.False(t, Auth{User: "front"}.Enabled())
}
