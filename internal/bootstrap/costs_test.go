package bootstrap

import (
	"path/filepath"
	"testing"
	"time"

	intconfig "tripplanner/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostSourceWithSnapshotStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "costs.db")
	src, closeFn, err := CostSource(intconfig.CostsEnv{
		CacheTTL:    time.Minute,
		CachePath:   path,
		HTTPTimeout: time.Second,
	}, nil)
	require.NoError(t, err)
	defer closeFn()

	require.NotNil(t, src)
	assert.Equal(t, "India", src.Catalog().Country)
	assert.FileExists(t, path)
}

func TestCostSourceWithoutCachePath(t *testing.T) {
	src, closeFn, err := CostSource(intconfig.CostsEnv{}, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, src)
}
