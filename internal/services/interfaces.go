package services

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
)

var (
	// ErrUnknownProduct is returned when a stock movement names no existing product.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInvalidTransition is returned when a status action does not apply to the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidStatus is returned for a status label that maps to no known status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidMovement is returned for a stock movement with an unknown type or a zero quantity.
	ErrInvalidMovement = errors.New("invalid stock movement")
	// ErrUnknownEntity is returned when an export or import names no supported entity.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrUnknownTemplate is returned when a message references a missing template.
	ErrUnknownTemplate = errors.New("unknown message template")
	// ErrIncompleteMessage is returned when a message to send lacks a recipient or content.
	ErrIncompleteMessage = errors.New("message needs a recipient and content")
	// ErrInvalidSettings is returned when settings fail their cross-field rules.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrAlreadyCheckedIn is returned for a second check-in on the same day.
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	// ErrNotCheckedIn is returned for a check-out without a check-in that day.
	ErrNotCheckedIn = errors.New("no check-in today")
	// ErrInvalidClock is returned for a check-in or check-out time that is not HH:MM.
	ErrInvalidClock = errors.New("invalid clock time")
)

// Journal records workspace activity. *audit.Service satisfies it, including
// when nil.
type Journal interface {
	LogImport(workspaceID, kind string, summary importers.Summary, err error)
	LogExport(workspaceID, entityType, fileName string, records int, err error)
	LogChange(workspaceID string, eventType entities.AuditEventType, entityType string, entityID int, description string)
	LogSend(workspaceID string, msg entities.Message, err error)
	LogSweep(workspaceID string, invoiceNumbers []string)
}

// Deps are the collaborators shared by every service.
type Deps struct {
	Journal Journal
	Logger  *zap.Logger
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Journal == nil {
		d.Journal = nopJournal{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) today() string {
	return d.Now().Format(entities.DateLayout)
}

type nopJournal struct{}

func (nopJournal) LogImport(string, string, importers.Summary, error) {}
func (nopJournal) LogExport(string, string, string, int, error) {}
func (nopJournal) LogChange(string, entities.AuditEventType, string, int, string) {}
func (nopJournal) LogSend(string, entities.Message, error) {}
func (nopJournal) LogSweep(string, []string) {}
