package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.True(t, cfg.Reports.Enabled)
	assert.False(t, cfg.Reports.CacheEnabled)
	assert.Equal(t, time.Minute, cfg.Reports.SnapshotCacheTTL)
	assert.Equal(t, "$", cfg.Reports.CurrencySymbol)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("COURSE_REPORTS_SNAPSHOT_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("COURSE_REPORTS_REQUIRE_AUTH", true)

	cfg := fromViper(v)

	assert.Equal(t, time.Minute, cfg.Reports.SnapshotCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Reports.RequireAuth)
}
