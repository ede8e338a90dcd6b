package services

import (
	"fmt"
	"sync"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

type EmployeeService struct {
	*Records[entities.Employee, *entities.Employee]
}

func NewEmployeeService(deps Deps) *EmployeeService {
	return &EmployeeService{&Records[entities.Employee, *entities.Employee]{
		entity:     "employee",
		collection: func(ws *store.Workspace) *store.Employees { return ws.Employees },
		matches: func(e entities.Employee, q string) bool {
			return contains(q, e.Name, e.Email, e.Role, e.Department)
		},
		prepare: func(_ *store.Workspace, e *entities.Employee) {
			e.Status = entities.ParseEmployeeStatus(string(e.Status))
		},
		describe: func(e entities.Employee) string { return "employee " + e.Name },
		deps:     deps.withDefaults(),
	}}
}

type ClientService struct {
	*Records[entities.Client, *entities.Client]
}

func NewClientService(deps Deps) *ClientService {
	return &ClientService{&Records[entities.Client, *entities.Client]{
		entity:     "client",
		collection: func(ws *store.Workspace) *store.Clients { return ws.Clients },
		matches: func(c entities.Client, q string) bool {
			return contains(q, c.Name, c.Contact, c.Email, c.Company)
		},
		prepare: func(_ *store.Workspace, c *entities.Client) {
			c.Status = entities.ParseClientStatus(string(c.Status))
		},
		describe: func(c entities.Client) string { return "client " + c.Name },
		deps:     deps.withDefaults(),
	}}
}

type TaskService struct {
	*Records[entities.Task, *entities.Task]
}

func NewTaskService(deps Deps) *TaskService {
	deps = deps.withDefaults()
	return &TaskService{&Records[entities.Task, *entities.Task]{
		entity:     "task",
		collection: func(ws *store.Workspace) *store.Tasks { return ws.Tasks },
		matches: func(t entities.Task, q string) bool {
			return contains(q, t.Title, t.Description, t.Assignee)
		},
		prepare: func(_ *store.Workspace, t *entities.Task) {
			t.Priority = entities.ParseTaskPriority(string(t.Priority))
			if status, ok := entities.ParseTaskStatus(string(t.Status)); ok {
				t.Status = status
			} else {
				t.Status = entities.TaskTodo
			}
			if t.CreatedAt == "" {
				t.CreatedAt = deps.today()
			}
		},
		describe: func(t entities.Task) string { return "task " + t.Title },
		deps:     deps,
	}}
}

// Move changes the board column of a task. status accepts the column keys
// and their French labels.
func (s *TaskService) Move(ws *store.Workspace, id int, status string) (entities.Task, error) {
	target, ok := entities.ParseTaskStatus(status)
	if !ok {
		return entities.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	task, err := ws.Tasks.Update(id, func(t *entities.Task) error {
		t.Status = target
		return nil
	})
	if err != nil {
		return task, err
	}
	s.deps.Journal.LogChange(ws.ID, entities.AuditEventUpdate, s.entity, id,
		fmt.Sprintf("Moved task %s to %s", task.Title, target.Label()))
	return task, nil
}

// AttendanceService exposes the day's check-in records and clocks
// employees in and out against the workspace work hours.
type AttendanceService struct {
	*Records[entities.AttendanceRecord, *entities.AttendanceRecord]
	settings *SettingsService
	// clock serializes check-ins so an employee gets one record per day.
	clock sync.Mutex
}

func NewAttendanceService(settings *SettingsService, deps Deps) *AttendanceService {
	return &AttendanceService{
		Records: &Records[entities.AttendanceRecord, *entities.AttendanceRecord]{
			entity:     "attendance",
			collection: func(ws *store.Workspace) *store.Attendance { return ws.Attendance },
			matches: func(a entities.AttendanceRecord, q string) bool {
				return contains(q, a.Name, a.Date)
			},
			describe: func(a entities.AttendanceRecord) string { return "attendance of " + a.Name + " on " + a.Date },
			deps:     deps.withDefaults(),
		},
		settings: settings,
	}
}

// CheckIn records the employee's arrival today at clock (HH:MM, now when
// blank). Arrivals after the work start plus the late threshold are Retard.
func (s *AttendanceService) CheckIn(ws *store.Workspace, employeeID int, clock string) (entities.AttendanceRecord, error) {
	emp, err := ws.Employees.Get(employeeID)
	if err != nil {
		return entities.AttendanceRecord{}, fmt.Errorf("employee %d: %w", employeeID, err)
	}
	if clock == "" {
		clock = s.deps.Now().Format(entities.ClockLayout)
	}
	status, err := s.settings.Get(ws).ArrivalStatus(clock)
	if err != nil {
		return entities.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrInvalidClock, err)
	}

	s.clock.Lock()
	defer s.clock.Unlock()
	today := s.deps.today()
	if _, ok := s.dayRecord(ws, employeeID, today); ok {
		return entities.AttendanceRecord{}, fmt.Errorf("%w: %s on %s", ErrAlreadyCheckedIn, emp.Name, today)
	}
	return s.Create(ws, entities.AttendanceRecord{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Date:       today,
		CheckIn:    clock,
		Status:     status,
	}), nil
}

// CheckOut closes the employee's record for today and fills in the hours
// worked.
func (s *AttendanceService) CheckOut(ws *store.Workspace, employeeID int, clock string) (entities.AttendanceRecord, error) {
	if clock == "" {
		clock = s.deps.Now().Format(entities.ClockLayout)
	}

	s.clock.Lock()
	defer s.clock.Unlock()
	today := s.deps.today()
	rec, ok := s.dayRecord(ws, employeeID, today)
	if !ok || rec.CheckIn == "" {
		return entities.AttendanceRecord{}, fmt.Errorf("%w: employee %d on %s", ErrNotCheckedIn, employeeID, today)
	}
	hours, err := entities.WorkedHours(rec.CheckIn, clock)
	if err != nil {
		return entities.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrInvalidClock, err)
	}
	rec.CheckOut = clock
	rec.Hours = hours
	return s.Update(ws, rec.ID, rec)
}

func (s *AttendanceService) dayRecord(ws *store.Workspace, employeeID int, date string) (entities.AttendanceRecord, bool) {
	found := ws.Attendance.Filter(func(a entities.AttendanceRecord) bool {
		return a.EmployeeID == employeeID && a.Date == date
	})
	if len(found) == 0 {
		return entities.AttendanceRecord{}, false
	}
	return found[0], true
}

// PresentOn counts employees checked in on date, late arrivals included.
func (s *AttendanceService) PresentOn(ws *store.Workspace, date string) int {
	return len(ws.Attendance.Filter(func(a entities.AttendanceRecord) bool {
		return a.Date == date && a.Status != entities.AttendanceAbsent
	}))
}
