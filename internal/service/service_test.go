package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chat-history-be/internal/pkg/logger"
	"chat-history-be/internal/repository/unitofwork"
	"chat-history-be/pkg/database"
)

// newTestDB opens a fresh in-memory database with the full schema. A
// single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func newTestLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
