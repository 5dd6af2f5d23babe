package services

import (
	"MerakiHMS/cache"
	"MerakiHMS/database"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnv points the global database and Redis handles at an in-memory
// SQLite database and a miniredis instance for the duration of one test.
func setupTestEnv(t *testing.T) *cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.RunMigrations(db))

	c, err := cache.NewCache()
	require.NoError(t, err)
	return c
}
