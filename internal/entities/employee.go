package entities

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Actif"
	EmployeeOnLeave  EmployeeStatus = "En congé"
	EmployeeInactive EmployeeStatus = "Inactif"
)

var employeeStatuses = map[string]EmployeeStatus{
	"actif":    EmployeeActive,
	"active":   EmployeeActive,
	"en congé": EmployeeOnLeave,
	"en conge": EmployeeOnLeave,
	"congé":    EmployeeOnLeave,
	"on leave": EmployeeOnLeave,
	"inactif":  EmployeeInactive,
	"inactive": EmployeeInactive,
}

// ParseEmployeeStatus maps a free-form label to a status, defaulting to Actif.
func ParseEmployeeStatus(s string) EmployeeStatus {
	if st, ok := matchLabel(s, employeeStatuses); ok {
		return st
	}
	return EmployeeActive
}

type Employee struct {
	Model
	Name       string         `json:"name" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	Phone      string         `json:"phone"`
	Role       string         `json:"role"`
	Department string         `json:"department"`
	Status     EmployeeStatus `json:"status"`
	HiredAt    string         `json:"hired_at,omitempty"`
}

type AttendanceStatus string

const (
	AttendanceOnTime AttendanceStatus = "À l'heure"
	AttendanceLate   AttendanceStatus = "Retard"
	AttendanceAbsent AttendanceStatus = "Absent"
)

// AttendanceRecord is one employee's check-in/check-out for a day.
type AttendanceRecord struct {
	Model
	EmployeeID int              `json:"employee_id"`
	Name       string           `json:"name"`
	Date       string           `json:"date"`
	CheckIn    string           `json:"check_in"`
	CheckOut   string           `json:"check_out"`
	Hours      string           `json:"hours"`
	Status     AttendanceStatus `json:"status"`
}
