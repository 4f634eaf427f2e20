package todos

import "github.com/google/uuid"

// Priority of a todo, ascending by importance.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Status of a todo. The declaration order is the canonical sort order for
// the status dimension: active work first, parked work next, finished last.
type Status int

const (
	StatusInProgress Status = iota
	StatusBacklog
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusBacklog:
		return "backlog"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// Todo is a single task record. Records are created, mutated, and removed
// exclusively through a List; callers only ever hold copies.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	Status    Status    `json:"status"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
	Deadline  *int64    `json:"deadline,omitempty"`
}

// NewTodo is the creation input. Title and deadline carry raw, unvalidated
// values; the store resolves them.
type NewTodo struct {
	Title    Title
	Priority Priority
	Deadline DeadlineInput
}

// UpdateTodo is the partial-update input. Title, priority, and status are
// applied only when present. The deadline is different: it is re-evaluated
// on every update, so an absent deadline input clears a stored deadline.
type UpdateTodo struct {
	Title    *Title
	Priority *Priority
	Status   *Status
	Deadline DeadlineInput
}

func (u *UpdateTodo) hasChange() bool {
	return u.Title != nil ||
		u.Priority != nil ||
		u.Status != nil ||
		u.Deadline.IsSet()
}
