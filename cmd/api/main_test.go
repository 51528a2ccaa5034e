package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server:      config.ServerConfig{Port: 3000, ShutdownTimeout: 10 * time.Second},
		Store:       config.StoreConfig{Driver: config.StoreDriverJSONFile, Path: "./data/db.json"},
		Logger:      config.LoggerConfig{Level: "info"},
		Pool:        config.PoolConfig{SessionSize: 100},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))

	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"Zero session size", func(c *config.Config) { c.Pool.SessionSize = 0 }},
		{"Port out of range", func(c *config.Config) { c.Server.Port = 70000 }},
		{"Blank store path", func(c *config.Config) { c.Store.Path = " " }},
		{"Unknown driver", func(c *config.Config) { c.Store.Driver = "lowdb" }},
		{"Unknown environment", func(c *config.Config) { c.Environment = "staging" }},
		{"Postgres without host", func(c *config.Config) { c.Store.Driver = config.StoreDriverPostgres }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestOpenStores_JSONFile(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "nested", "db.json")

	st, err := openStores(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	require.NoError(t, err)

	assert.NotNil(t, st.users)
	assert.NotNil(t, st.sets)
	assert.NotNil(t, st.history)
	assert.NoError(t, st.pinger.Ping(context.Background()))
	assert.NoError(t, st.shutdown())
}

func TestDatabaseConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Database = config.DatabaseConfig{Host: "db", Port: 5433, Name: "studrev", QueryTimeout: time.Second}

	dbCfg := databaseConfig(cfg)

	assert.Equal(t, "postgres", dbCfg.Driver)
	assert.Equal(t, "db", dbCfg.Host)
	assert.Equal(t, 5433, dbCfg.Port)
	assert.Equal(t, "studrev", dbCfg.Database)
	assert.Equal(t, time.Second, dbCfg.QueryTimeout)
}
