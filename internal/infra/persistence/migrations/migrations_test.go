package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	provider, err := newProvider(sqlDB)
	require.NoError(t, err)

	sources := provider.ListSources()
	require.Len(t, sources, 2)
	assert.Equal(t, int64(1), sources[0].Version)
	assert.Equal(t, int64(2), sources[1].Version)
}
