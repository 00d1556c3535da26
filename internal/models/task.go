package models

// Task represents a single tracked work item
type Task struct {
	ID          int      `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description *string  `db:"description" json:"description"`
	DueDate     *string  `db:"due_date" json:"due_date"`
	Priority    Priority `db:"priority" json:"priority"`
	Status      Status   `db:"status" json:"status"`
	Tags        *string  `db:"tags" json:"tags"`
}

// GetID lets the quiet output mode print just the identifier
func (t *Task) GetID() int {
	return t.ID
}

// TaskFilter narrows a listing. All set fields must match (logical AND);
// nil pointers and an empty Tag place no constraint.
type TaskFilter struct {
	Status   *Status
	Priority *Priority
	// Tag is matched as a case-sensitive substring of the raw tags string
	Tag string
}

// IsEmpty reports whether the filter places no constraint at all
func (f TaskFilter) IsEmpty() bool {
	return f.Status == nil && f.Priority == nil && f.Tag == ""
}

// TaskUpdate carries the fields to change on an existing task.
// A nil field is left untouched. For the optional text fields
// (Description, DueDate, Tags) a pointer to "" clears the stored value.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Status      *Status
	Tags        *string
}

// IsEmpty reports whether no field was supplied
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.DueDate == nil &&
		u.Priority == nil &&
		u.Status == nil &&
		u.Tags == nil
}

// StatusCounts maps every status to the number of tasks holding it
type StatusCounts map[Status]int

// NewStatusCounts returns counts with every status present and zero
func NewStatusCounts() StatusCounts {
	counts := make(StatusCounts, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	return counts
}

// Total sums the per-status counts
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// StringValue dereferences an optional field, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalString returns nil for an empty string and a pointer otherwise
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
