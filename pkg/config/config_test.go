package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinpoint/cms/pkg/observability"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CMS_S3_BUCKET", "cms-media")
	t.Setenv("CMS_OIDC_ISSUER_URL", "https://id.example.com")
	t.Setenv("CMS_OIDC_CLIENT_ID", "cms-admin")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.MongoURI)
	assert.Equal(t, "cms", cfg.Storage.MongoDB)
	assert.Equal(t, 10*time.Second, cfg.Storage.MongoTimeout)
	assert.Equal(t, observability.InfoLevel, cfg.Observability.LogLevel)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Empty(t, cfg.Revalidate.Endpoint)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CMS_PORT", "9000")
	t.Setenv("CMS_MONGO_URI", "mongodb://db:27017")
	t.Setenv("CMS_MONGO_DB", "skinpoint")
	t.Setenv("CMS_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("CMS_S3_USE_PATH_STYLE", "true")
	t.Setenv("CMS_LOG_LEVEL", "debug")
	t.Setenv("CMS_REVALIDATE_ENDPOINT", "https://site.example.com/api/revalidate")
	t.Setenv("CMS_REVALIDATE_PATHS", "/, /behandelingen ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.MongoURI)
	assert.Equal(t, "skinpoint", cfg.Storage.MongoDB)
	assert.True(t, cfg.Storage.S3UsePathStyle)
	assert.Equal(t, observability.DebugLevel, cfg.Observability.LogLevel)
	assert.Equal(t, "https://site.example.com/api/revalidate", cfg.Revalidate.Endpoint)
	assert.Equal(t, []string{"/", "/behandelingen"}, cfg.Revalidate.Paths)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  string
	}{
		{name: "missing bucket", unset: "CMS_S3_BUCKET", want: "S3 bucket is required"},
		{name: "missing issuer", unset: "CMS_OIDC_ISSUER_URL", want: "OIDC issuer URL is required"},
		{name: "missing client id", unset: "CMS_OIDC_CLIENT_ID", want: "OIDC client ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
