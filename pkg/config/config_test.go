package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "memory")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, "fieldstock", cfg.DB.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL())
	assert.True(t, cfg.JWT.UsingDefaultSecret())
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, 25*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, "Mozilla/5.0", cfg.Scraper.UserAgent)
	assert.Equal(t, "mijninstallatiepartner", cfg.Scraper.SupplierID)
	assert.Empty(t, cfg.Webhook.Secret)
}

func TestFromViper_PortFallback(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "memory")
	v.Set("PORT", "9090")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	v.Set("HTTP_PORT", "7070")
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
}

func TestFromViper_MongoSinURL_RetornaError(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_DriverDesconocido_RetornaError(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}
