package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "football-manager-test",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		LeagueName:         "La Liga",
		SeedEnabled:        true,
		ManagerBudget:      100,
		TeamMaxPlayers:     25,
		SeasonWorkers:      2,
		SnapshotStore:      config.SnapshotStoreMemory,
		SnapshotWorkers:    2,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
	}
}

func TestNew_MemoryStoreServesSeededLeague(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Real Madrid")
	assert.Equal(t, time.Second, a.Server.ReadTimeout)
}

func TestNew_FileStoreRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.SnapshotStore = config.SnapshotStoreFile
	cfg.SnapshotDir = filepath.Join(t.TempDir(), "snapshots")

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/teams/Real%20Madrid/snapshot", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	entries, err := os.ReadDir(cfg.SnapshotDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNew_SeedDisabledStartsEmpty(t *testing.T) {
	cfg := testConfig()
	cfg.SeedEnabled = false

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/Real%20Madrid", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_Errors(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		cfg := testConfig()
		cfg.HTTPAddr = " "
		_, err := New(context.Background(), cfg, nil)
		require.Error(t, err)
	})

	t.Run("missing seed file", func(t *testing.T) {
		cfg := testConfig()
		cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := New(context.Background(), cfg, nil)
		require.Error(t, err)
	})
}
