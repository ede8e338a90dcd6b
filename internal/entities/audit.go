package entities

import "time"

type AuditEventType string

const (
	AuditEventImport AuditEventType = "import"
	AuditEventExport AuditEventType = "export"
	AuditEventCreate AuditEventType = "create"
	AuditEventUpdate AuditEventType = "update"
	AuditEventDelete AuditEventType = "delete"
	AuditEventSend   AuditEventType = "send"
	AuditEventSweep  AuditEventType = "sweep"
)

// Valid reports whether t is one of the journaled event types.
func (t AuditEventType) Valid() bool {
	switch t {
	case AuditEventImport, AuditEventExport, AuditEventCreate, AuditEventUpdate,
		AuditEventDelete, AuditEventSend, AuditEventSweep:
		return true
	}
	return false
}

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent is one entry of a workspace's activity journal.
type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID string         `gorm:"index;size:64" json:"workspace_id"`
	EventType   AuditEventType `gorm:"index;size:50" json:"event_type"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g. "products_import", "invoice_send"
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	EntityType  string         `gorm:"size:50" json:"entity_type"`
	EntityID    *int           `gorm:"index" json:"entity_id,omitempty"`
	Metadata    string         `gorm:"type:text" json:"metadata,omitempty"` // JSON for extra data
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
