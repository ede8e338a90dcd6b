package audit

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/database/audit"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
)

// Service records the activity journal of each workspace. A nil *Service is
// valid and records nothing.
type Service struct {
	repo   *audit.Repository
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Log records an event synchronously.
func (s *Service) Log(event *entities.AuditEvent) error {
	if s == nil {
		return nil
	}
	return s.repo.LogEvent(event)
}

// LogAsync records an event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	if s == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			s.logger.Warn("Failed to log audit event",
				zap.String("action", event.Action),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every pending asynchronous write has finished.
func (s *Service) Wait() {
	if s == nil {
		return
	}
	s.wg.Wait()
}

// LogImport records the outcome of a confirmed import.
func (s *Service) LogImport(workspaceID, kind string, summary importers.Summary, err error) {
	event := &entities.AuditEvent{
		WorkspaceID: workspaceID,
		EventType:   entities.AuditEventImport,
		Action:      kind + "_import",
		Description: fmt.Sprintf("Imported %d of %d rows from %s", summary.Imported, summary.Total, summary.FileName),
		EntityType:  kind,
		Status:      entities.AuditStatusSuccess,
	}
	event.Metadata = encodeMetadata(map[string]any{
		"file":       summary.FileName,
		"total":      summary.Total,
		"imported":   summary.Imported,
		"rejected":   summary.RejectedCount,
		"from_cache": summary.FromCache,
	})

	if err != nil {
		event.Description = "Import failed"
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogExport records a generated export file.
func (s *Service) LogExport(workspaceID, entityType, fileName string, records int, err error) {
	event := &entities.AuditEvent{
		WorkspaceID: workspaceID,
		EventType:   entities.AuditEventExport,
		Action:      entityType + "_export",
		Description: fmt.Sprintf("Exported %d records to %s", records, fileName),
		EntityType:  entityType,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogChange records a create, update or delete of a single record.
func (s *Service) LogChange(workspaceID string, eventType entities.AuditEventType, entityType string, entityID int, description string) {
	id := entityID
	event := &entities.AuditEvent{
		WorkspaceID: workspaceID,
		EventType:   eventType,
		Action:      entityType + "_" + string(eventType),
		Description: truncate(description, 500),
		EntityType:  entityType,
		EntityID:    &id,
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// LogSend records the delivery of a message.
func (s *Service) LogSend(workspaceID string, msg entities.Message, err error) {
	id := msg.ID
	event := &entities.AuditEvent{
		WorkspaceID: workspaceID,
		EventType:   entities.AuditEventSend,
		Action:      string(msg.Type) + "_send",
		Description: "Message sent to " + msg.To,
		EntityType:  "message",
		EntityID:    &id,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Description = "Message to " + msg.To + " failed"
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogSweep records invoices marked overdue by the scheduler.
func (s *Service) LogSweep(workspaceID string, invoiceNumbers []string) {
	event := &entities.AuditEvent{
		WorkspaceID: workspaceID,
		EventType:   entities.AuditEventSweep,
		Action:      "invoice_overdue_sweep",
		Description: fmt.Sprintf("%d invoices marked overdue", len(invoiceNumbers)),
		EntityType:  "invoice",
		Metadata:    encodeMetadata(map[string]any{"invoices": invoiceNumbers}),
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated events of a workspace.
func (s *Service) GetEvents(workspaceID string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	if s == nil {
		return []entities.AuditEvent{}, 0, nil
	}
	return s.repo.GetEvents(workspaceID, limit, offset)
}

// GetEventsByType retrieves paginated events of one type for a workspace.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, workspaceID string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	if s == nil {
		return []entities.AuditEvent{}, 0, nil
	}
	return s.repo.GetEventsByType(eventType, workspaceID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	if s == nil {
		return 0, nil
	}
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// DeleteWorkspaceEvents drops the journal of a workspace.
func (s *Service) DeleteWorkspaceEvents(workspaceID string) (int64, error) {
	if s == nil {
		return 0, nil
	}
	return s.repo.DeleteWorkspaceEvents(workspaceID)
}

func encodeMetadata(metadata map[string]any) string {
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
