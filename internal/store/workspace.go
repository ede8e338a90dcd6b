package store

import (
	"sync"
	"time"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/importers"
)

type (
	Employees  = Collection[entities.Employee, *entities.Employee]
	Clients    = Collection[entities.Client, *entities.Client]
	Tasks      = Collection[entities.Task, *entities.Task]
	Products   = Collection[entities.Product, *entities.Product]
	Movements  = Collection[entities.StockMovement, *entities.StockMovement]
	Invoices   = Collection[entities.Invoice, *entities.Invoice]
	Payslips   = Collection[entities.Payslip, *entities.Payslip]
	Messages   = Collection[entities.Message, *entities.Message]
	Attendance = Collection[entities.AttendanceRecord, *entities.AttendanceRecord]
)

// Dataset is the initial content of a workspace.
type Dataset struct {
	Employees  []entities.Employee
	Clients    []entities.Client
	Tasks      []entities.Task
	Products   []entities.Product
	Movements  []entities.StockMovement
	Invoices   []entities.Invoice
	Payslips   []entities.Payslip
	Messages   []entities.Message
	Attendance []entities.AttendanceRecord
}

// Workspace owns every collection a single dashboard user works on, plus the
// import sessions opened against them.
type Workspace struct {
	ID        string
	CreatedAt time.Time

	Employees  *Employees
	Clients    *Clients
	Tasks      *Tasks
	Products   *Products
	Movements  *Movements
	Invoices   *Invoices
	Payslips   *Payslips
	Messages   *Messages
	Attendance *Attendance

	mu       sync.Mutex
	imports  map[string]importers.Importer
	settings *entities.Settings
}

func NewWorkspace(id string, seed Dataset) *Workspace {
	return &Workspace{
		ID:         id,
		CreatedAt:  time.Now(),
		Employees:  NewCollection[entities.Employee](seed.Employees...),
		Clients:    NewCollection[entities.Client](seed.Clients...),
		Tasks:      NewCollection[entities.Task](seed.Tasks...),
		Products:   NewCollection[entities.Product](seed.Products...),
		Movements:  NewCollection[entities.StockMovement](seed.Movements...),
		Invoices:   NewCollection[entities.Invoice](seed.Invoices...),
		Payslips:   NewCollection[entities.Payslip](seed.Payslips...),
		Messages:   NewCollection[entities.Message](seed.Messages...),
		Attendance: NewCollection[entities.AttendanceRecord](seed.Attendance...),
		imports:    make(map[string]importers.Importer),
	}
}

// Settings returns the workspace settings. The first call stores init().
func (w *Workspace) Settings(init func() entities.Settings) entities.Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.settingsLocked(init)
}

// UpdateSettings applies mutate to a copy of the settings and stores it when
// mutate succeeds.
func (w *Workspace) UpdateSettings(init func() entities.Settings, mutate func(*entities.Settings) error) (entities.Settings, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := *w.settingsLocked(init)
	if err := mutate(&next); err != nil {
		return entities.Settings{}, err
	}
	w.settings = &next
	return next, nil
}

func (w *Workspace) settingsLocked(init func() entities.Settings) *entities.Settings {
	if w.settings == nil {
		s := init()
		w.settings = &s
	}
	return w.settings
}

// Importer returns the import session for kind, creating it on first use.
func (w *Workspace) Importer(kind string, create func() importers.Importer) importers.Importer {
	w.mu.Lock()
	defer w.mu.Unlock()

	if imp, ok := w.imports[kind]; ok {
		return imp
	}
	imp := create()
	w.imports[kind] = imp
	return imp
}

// ExpirePreviews cancels import sessions whose preview has been open longer than maxAge.
func (w *Workspace) ExpirePreviews(maxAge time.Duration) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	expired := 0
	for _, imp := range w.imports {
		p := imp.Current()
		if p.State == importers.StatePreviewing && time.Since(p.SelectedAt) > maxAge {
			imp.Cancel()
			expired++
		}
	}
	return expired
}
