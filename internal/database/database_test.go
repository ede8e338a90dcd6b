package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/smartwork/dashboard/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	t.Run("file database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "activity.db")

		db, err := NewDatabase(dbPath, "silent", nil)
		require.NoError(t, err)
		defer db.Close()

		assert.True(t, db.DB.Migrator().HasTable(&entities.AuditEvent{}))
		assert.NoError(t, db.Ping(context.Background()))
	})

	t.Run("defaults to in-memory", func(t *testing.T) {
		db, err := NewDatabase("", "", nil)
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, db.DB.Create(&entities.AuditEvent{WorkspaceID: "ws", Action: "test"}).Error)

		var count int64
		require.NoError(t, db.DB.Model(&entities.AuditEvent{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, parseLogLevel("INFO"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Error, parseLogLevel("error"))
	assert.Equal(t, logger.Silent, parseLogLevel(""))
}
