package entities

type ClientStatus string

const (
	ClientActive ClientStatus = "Actif"
	ClientLead   ClientStatus = "Lead"
	ClientLost   ClientStatus = "Perdu"
)

var clientStatuses = map[string]ClientStatus{
	"actif":    ClientActive,
	"active":   ClientActive,
	"client":   ClientActive,
	"lead":     ClientLead,
	"prospect": ClientLead,
	"perdu":    ClientLost,
	"lost":     ClientLost,
}

// ParseClientStatus maps a free-form label to a status, defaulting to Lead.
func ParseClientStatus(s string) ClientStatus {
	if st, ok := matchLabel(s, clientStatuses); ok {
		return st
	}
	return ClientLead
}

type Client struct {
	Model
	Name        string       `json:"name" binding:"required"`
	Contact     string       `json:"contact"`
	Email       string       `json:"email" binding:"required,email"`
	Phone       string       `json:"phone"`
	Company     string       `json:"company,omitempty"`
	Status      ClientStatus `json:"status"`
	Value       string       `json:"value"` // amount with currency suffix, e.g. "125,000 FCFA"
	LastContact string       `json:"last_contact"`
	Notes       string       `json:"notes,omitempty"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "inProgress"
	TaskDone       TaskStatus = "done"
)

var taskStatuses = map[string]TaskStatus{
	"todo":        TaskTodo,
	"à faire":     TaskTodo,
	"a faire":     TaskTodo,
	"inprogress":  TaskInProgress,
	"in progress": TaskInProgress,
	"en cours":    TaskInProgress,
	"done":        TaskDone,
	"terminé":     TaskDone,
	"termine":     TaskDone,
}

// ParseTaskStatus accepts both the kanban keys and their French labels.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	return matchLabel(s, taskStatuses)
}

// Label is the French column title shown on the board and in exports.
func (s TaskStatus) Label() string {
	switch s {
	case TaskInProgress:
		return "En cours"
	case TaskDone:
		return "Terminé"
	default:
		return "À faire"
	}
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "Haute"
	PriorityMedium TaskPriority = "Moyenne"
	PriorityLow    TaskPriority = "Basse"
)

var taskPriorities = map[string]TaskPriority{
	"haute":   PriorityHigh,
	"high":    PriorityHigh,
	"moyenne": PriorityMedium,
	"medium":  PriorityMedium,
	"basse":   PriorityLow,
	"low":     PriorityLow,
}

// ParseTaskPriority maps a free-form label to a priority, defaulting to Moyenne.
func ParseTaskPriority(s string) TaskPriority {
	if p, ok := matchLabel(s, taskPriorities); ok {
		return p
	}
	return PriorityMedium
}

type Task struct {
	Model
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description,omitempty"`
	Assignee    string       `json:"assignee"`
	AssigneeID  int          `json:"assignee_id,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     string       `json:"due_date"`
	CreatedAt   string       `json:"created_at,omitempty"`
}
