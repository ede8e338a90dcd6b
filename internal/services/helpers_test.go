package services

import (
	"context"
	"sync"
	"time"

	"github.com/smartwork/dashboard/internal/demo"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/store"
)

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

type journalEntry struct {
	kind     string
	event    entities.AuditEventType
	entity   string
	entityID int
	text     string
	err      error
	summary  importers.Summary
	invoices []string
}

type journalRecorder struct {
	mu      sync.Mutex
	entries []journalEntry
}

func (j *journalRecorder) add(e journalEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
}

func (j *journalRecorder) LogImport(_ string, kind string, summary importers.Summary, err error) {
	j.add(journalEntry{kind: "import", entity: kind, summary: summary, err: err})
}

func (j *journalRecorder) LogExport(_ string, entityType, fileName string, _ int, err error) {
	j.add(journalEntry{kind: "export", entity: entityType, text: fileName, err: err})
}

func (j *journalRecorder) LogChange(_ string, eventType entities.AuditEventType, entityType string, entityID int, description string) {
	j.add(journalEntry{kind: "change", event: eventType, entity: entityType, entityID: entityID, text: description})
}

func (j *journalRecorder) LogSend(_ string, msg entities.Message, err error) {
	j.add(journalEntry{kind: "send", entity: "message", entityID: msg.ID, err: err})
}

func (j *journalRecorder) LogSweep(_ string, invoiceNumbers []string) {
	j.add(journalEntry{kind: "sweep", invoices: invoiceNumbers})
}

func (j *journalRecorder) last() journalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == 0 {
		return journalEntry{}
	}
	return j.entries[len(j.entries)-1]
}

func (j *journalRecorder) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

type stubSender struct {
	err  error
	sent []entities.Message
}

func (s *stubSender) Deliver(_ context.Context, msg entities.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func testDeps(j *journalRecorder) Deps {
	return Deps{Journal: j, Now: func() time.Time { return fixedNow }}
}

func demoWorkspace() *store.Workspace {
	return store.NewWorkspace("ws-test", demo.Dataset())
}
