package models

import "strconv"

// Priority is an urgency rank, 1 being the most urgent
type Priority int

// Priority values
const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Priorities lists every priority from most to least urgent
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// DefaultPriority is used when a task is created without one
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Description returns the human name of the priority
func (p Priority) Description() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

func (p Priority) String() string {
	return strconv.Itoa(int(p))
}

// ParsePriority accepts either the number (1, 2, 3) or the name (high, medium, low)
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	p := Priority(n)
	return p, p.Valid()
}
