package importers

import "github.com/smartwork/dashboard/internal/entities"

var taskColumns = []Column{
	{Key: "title", Label: "Titre", Required: true},
	{Key: "description", Label: "Description"},
	{Key: "assignee", Label: "Assigné"},
	{Key: "priority", Label: "Priorité"},
	{Key: "status", Label: "Statut"},
	{Key: "due_date", Label: "Date Limite"},
}

var TaskDefinition = Definition[entities.Task]{
	Kind:         "tasks",
	TemplateName: "taches",
	Columns:      taskColumns,
	Parse:        parseTask,
}

func parseTask(r Row) Outcome[entities.Task] {
	t := entities.Task{
		Title:       r.Text("titre", "title"),
		Description: r.Text("description"),
		Assignee:    r.Text("assigné", "assigne", "assignee"),
		Priority:    entities.ParseTaskPriority(r.Text("priorité", "priorite", "priority")),
		DueDate:     r.Text("date limite", "due date", "duedate"),
	}
	if t.Title == "" {
		return Reject[entities.Task]("title is required")
	}
	status, ok := entities.ParseTaskStatus(r.Text("statut", "status"))
	if !ok {
		status = entities.TaskTodo
	}
	t.Status = status
	return Accept(t)
}
