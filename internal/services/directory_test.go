package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

func TestEmployeeService_CRUD(t *testing.T) {
	j := &journalRecorder{}
	svc := NewEmployeeService(testDeps(j))
	ws := demoWorkspace()

	created := svc.Create(ws, entities.Employee{Name: "Awa Traoré", Email: "awa.t@company.com", Status: "en conge"})
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, entities.EmployeeOnLeave, created.Status)
	assert.Equal(t, entities.AuditEventCreate, j.last().event)
	assert.Equal(t, 7, j.last().entityID)

	created.Role = "Comptable"
	updated, err := svc.Update(ws, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "Comptable", updated.Role)
	assert.Equal(t, entities.AuditEventUpdate, j.last().event)

	require.NoError(t, svc.Delete(ws, created.ID))
	assert.Equal(t, entities.AuditEventDelete, j.last().event)

	_, err = svc.Get(ws, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ws, created.ID), store.ErrNotFound)

	// Deleting the highest id frees it for the next record.
	again := svc.Create(ws, entities.Employee{Name: "Awa Traoré", Email: "awa.t@company.com"})
	assert.Equal(t, 7, again.ID)
}

func TestEmployeeService_Search(t *testing.T) {
	svc := NewEmployeeService(Deps{})
	ws := demoWorkspace()

	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"marie", []string{"Marie Kouassi"}},
		{"  DÉVELOPPEUR ", []string{"Marie Kouassi", "Ibrahim Keita"}},
		{"technique", []string{"Marie Kouassi", "Ibrahim Keita"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := svc.List(ws, tt.query)
			if tt.want == nil {
				assert.Len(t, got, 6)
				return
			}
			names := []string{}
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestTaskService_Move(t *testing.T) {
	j := &journalRecorder{}
	svc := NewTaskService(testDeps(j))
	ws := demoWorkspace()

	t.Run("accepts keys and labels", func(t *testing.T) {
		task, err := svc.Move(ws, 1, "En cours")
		require.NoError(t, err)
		assert.Equal(t, entities.TaskInProgress, task.Status)

		task, err = svc.Move(ws, 1, "done")
		require.NoError(t, err)
		assert.Equal(t, entities.TaskDone, task.Status)
		assert.Contains(t, j.last().text, "Terminé")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.Move(ws, 1, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.Move(ws, 99, "todo")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTaskService_CreateDefaults(t *testing.T) {
	svc := NewTaskService(testDeps(&journalRecorder{}))
	ws := demoWorkspace()

	task := svc.Create(ws, entities.Task{Title: "Inventaire annuel"})
	assert.Equal(t, entities.TaskTodo, task.Status)
	assert.Equal(t, entities.PriorityMedium, task.Priority)
	assert.Equal(t, "2024-03-01", task.CreatedAt)
}

func TestAttendanceService_PresentOn(t *testing.T) {
	svc := NewAttendanceService(NewSettingsService(entities.DefaultSettings(), Deps{}), Deps{})
	ws := demoWorkspace()

	assert.Equal(t, 5, svc.PresentOn(ws, "2025-11-14"))
	assert.Equal(t, 0, svc.PresentOn(ws, "2025-11-15"))
}

func newAttendance(j *journalRecorder) *AttendanceService {
	return NewAttendanceService(NewSettingsService(entities.DefaultSettings(), testDeps(j)), testDeps(j))
}

func TestAttendanceService_CheckIn(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  entities.AttendanceStatus
	}{
		{"before start", "07:55", entities.AttendanceOnTime},
		{"within threshold", "08:15", entities.AttendanceOnTime},
		{"past threshold", "08:16", entities.AttendanceLate},
		{"defaults to now", "", entities.AttendanceLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &journalRecorder{}
			svc := newAttendance(j)
			ws := demoWorkspace()

			rec, err := svc.CheckIn(ws, 3, tt.clock)
			require.NoError(t, err)
			assert.Equal(t, 7, rec.ID)
			assert.Equal(t, "Sophie Diallo", rec.Name)
			assert.Equal(t, "2024-03-01", rec.Date)
			assert.Equal(t, tt.want, rec.Status)
			assert.Equal(t, 1, svc.PresentOn(ws, "2024-03-01"))
			assert.Equal(t, entities.AuditEventCreate, j.last().event)
		})
	}
}

func TestAttendanceService_CheckInFollowsSettings(t *testing.T) {
	svc := newAttendance(&journalRecorder{})
	ws := demoWorkspace()

	st := svc.settings.Get(ws)
	st.WorkStart = "09:00"
	st.LateThresholdMinutes = 0
	_, err := svc.settings.Update(ws, st)
	require.NoError(t, err)

	rec, err := svc.CheckIn(ws, 1, "08:59")
	require.NoError(t, err)
	assert.Equal(t, entities.AttendanceOnTime, rec.Status)

	rec, err = svc.CheckIn(ws, 2, "09:01")
	require.NoError(t, err)
	assert.Equal(t, entities.AttendanceLate, rec.Status)
}

func TestAttendanceService_CheckInErrors(t *testing.T) {
	svc := newAttendance(&journalRecorder{})
	ws := demoWorkspace()

	_, err := svc.CheckIn(ws, 99, "08:00")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.CheckIn(ws, 1, "8h")
	assert.ErrorIs(t, err, ErrInvalidClock)

	_, err = svc.CheckIn(ws, 1, "08:00")
	require.NoError(t, err)
	_, err = svc.CheckIn(ws, 1, "08:05")
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Equal(t, 7, ws.Attendance.Len())
}

func TestAttendanceService_CheckOut(t *testing.T) {
	svc := newAttendance(&journalRecorder{})
	ws := demoWorkspace()

	_, err := svc.CheckOut(ws, 1, "17:00")
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	in, err := svc.CheckIn(ws, 1, "08:10")
	require.NoError(t, err)

	_, err = svc.CheckOut(ws, 1, "07:00")
	assert.ErrorIs(t, err, ErrInvalidClock)

	out, err := svc.CheckOut(ws, 1, "17:25")
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, "08:10", out.CheckIn)
	assert.Equal(t, "17:25", out.CheckOut)
	assert.Equal(t, "9h15", out.Hours)
	assert.Equal(t, entities.AttendanceOnTime, out.Status)
}
