package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status is the lifecycle stage of a task
type Status string

// Status values
const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// DefaultStatus is assigned to every new task
const DefaultStatus = StatusTodo

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}

// ============================================================================
// DATE CONSTANTS
// ============================================================================

// DueDateLayout is the only accepted due date format (YYYY-MM-DD)
const DueDateLayout = "2006-01-02"
