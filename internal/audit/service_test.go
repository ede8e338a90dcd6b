package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	auditRepo "github.com/smartwork/dashboard/internal/database/audit"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	repo := auditRepo.NewRepository(db)
	svc := NewService(repo, nil)

	return svc, db
}

func TestService_Log(t *testing.T) {
	svc, db := setupTestService(t)

	event := &entities.AuditEvent{
		WorkspaceID: "ws-1",
		EventType:   entities.AuditEventImport,
		Action:      "test_import",
		Description: "Test import event",
		Status:      entities.AuditStatusSuccess,
	}

	err := svc.Log(event)
	require.NoError(t, err)

	var saved entities.AuditEvent
	err = db.First(&saved, event.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "test_import", saved.Action)
}

func TestService_LogImport(t *testing.T) {
	svc, db := setupTestService(t)

	t.Run("successful import", func(t *testing.T) {
		svc.LogImport("ws-1", "products", importers.Summary{Kind: "products", FileName: "produits.xlsx", Total: 12, Imported: 10, RejectedCount: 2}, nil)
		svc.Wait()

		var event entities.AuditEvent
		err := db.Where("action = ?", "products_import").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusSuccess, event.Status)
		assert.Equal(t, "ws-1", event.WorkspaceID)
		assert.Equal(t, "Imported 10 of 12 rows from produits.xlsx", event.Description)
		assert.Contains(t, event.Metadata, `"rejected":2`)
	})

	t.Run("failed import", func(t *testing.T) {
		svc.LogImport("ws-1", "clients", importers.Summary{}, errors.New("collection locked"))
		svc.Wait()

		var event entities.AuditEvent
		err := db.Where("action = ?", "clients_import").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusFailed, event.Status)
		assert.Contains(t, event.ErrorMsg, "collection locked")
	})
}

func TestService_LogChange(t *testing.T) {
	svc, db := setupTestService(t)

	svc.LogChange("ws-1", entities.AuditEventDelete, "client", 42, "Deleted client: Acme Corporation")
	svc.Wait()

	var event entities.AuditEvent
	err := db.Where("action = ?", "client_delete").First(&event).Error
	require.NoError(t, err)
	assert.Equal(t, entities.AuditEventDelete, event.EventType)
	assert.Equal(t, "client", event.EntityType)
	require.NotNil(t, event.EntityID)
	assert.Equal(t, 42, *event.EntityID)
}

func TestService_LogSendAndSweep(t *testing.T) {
	svc, db := setupTestService(t)

	svc.LogSend("ws-1", entities.Message{Model: entities.Model{ID: 3}, Type: entities.ChannelWhatsApp, To: "+221 77 123 4567"}, errors.New("401 unauthorized"))
	svc.LogSweep("ws-1", []string{"FAC-2024-002"})
	svc.Wait()

	var send entities.AuditEvent
	require.NoError(t, db.Where("action = ?", "whatsapp_send").First(&send).Error)
	assert.Equal(t, entities.AuditStatusFailed, send.Status)

	var sweep entities.AuditEvent
	require.NoError(t, db.Where("event_type = ?", entities.AuditEventSweep).First(&sweep).Error)
	assert.Contains(t, sweep.Metadata, "FAC-2024-002")
}

func TestService_GetEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	for i := 0; i < 5; i++ {
		err := svc.Log(&entities.AuditEvent{
			WorkspaceID: "ws-1",
			EventType:   entities.AuditEventImport,
			Action:      "test",
			Status:      entities.AuditStatusSuccess,
		})
		require.NoError(t, err)
	}

	events, total, err := svc.GetEvents("ws-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, events, 5)

	_, total, err = svc.GetEvents("ws-2", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, db := setupTestService(t)

	require.NoError(t, db.Create(&entities.AuditEvent{WorkspaceID: "ws-1", Action: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}).Error)
	require.NoError(t, db.Create(&entities.AuditEvent{WorkspaceID: "ws-1", Action: "new", CreatedAt: time.Now()}).Error)

	deleted, err := svc.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []entities.AuditEvent
	db.Find(&remaining)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "new", remaining[0].Action)
}

func TestService_NilIsNoop(t *testing.T) {
	var svc *Service

	assert.NotPanics(t, func() {
		svc.LogChange("ws", entities.AuditEventCreate, "task", 1, "created")
		svc.Wait()
	})
	events, total, err := svc.GetEvents("ws", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Zero(t, total)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a very long string", 10, "this is..."},
		{"", 5, ""},
	}

	for _, tc := range tests {
		result := truncate(tc.input, tc.maxLen)
		assert.Equal(t, tc.expected, result)
	}
}

func TestService_GetEventsByType(t *testing.T) {
	svc, _ := setupTestService(t)

	svc.LogChange("ws-1", entities.AuditEventCreate, "task", 1, "created")
	svc.LogChange("ws-1", entities.AuditEventUpdate, "task", 1, "updated")
	svc.LogChange("ws-2", entities.AuditEventUpdate, "task", 1, "updated")
	svc.Wait()

	events, total, err := svc.GetEventsByType(entities.AuditEventUpdate, "ws-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, "task_update", events[0].Action)

	var nilSvc *Service
	events, total, err = nilSvc.GetEventsByType(entities.AuditEventUpdate, "ws-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Zero(t, total)
}
