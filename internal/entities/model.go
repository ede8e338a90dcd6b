package entities

import "strings"

// DateLayout is the calendar date format used by every record (ISO 8601 day).
const DateLayout = "2006-01-02"

// Model carries the integer identity shared by all workspace records.
type Model struct {
	ID int `json:"id"`
}

func (m *Model) GetID() int {
	return m.ID
}

func (m *Model) SetID(id int) {
	m.ID = id
}

// matchLabel returns the first candidate equal to s ignoring case and surrounding spaces.
func matchLabel[T ~string](s string, candidates map[string]T) (T, bool) {
	v, ok := candidates[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}
