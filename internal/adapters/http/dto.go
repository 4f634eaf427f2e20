package http

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ithinkicancode/golem-todo-list/internal/domain/todos"
)

// CreateTodoRequest is the payload for creating a todo
type CreateTodoRequest struct {
	Title    string  `json:"title" validate:"required"`
	Priority string  `json:"priority" validate:"required,oneof=low medium high"`
	Deadline *string `json:"deadline"`
}

// UpdateTodoRequest is the payload for partially updating a todo. Absent
// fields are left alone, except the deadline: it is re-evaluated on every
// update, so omitting it clears a stored deadline.
type UpdateTodoRequest struct {
	Title    *string `json:"title"`
	Priority *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status   *string `json:"status" validate:"omitempty,oneof=backlog in_progress done"`
	Deadline *string `json:"deadline"`
}

// SearchTodosRequest is the payload for search and count-by queries
type SearchTodosRequest struct {
	Keyword        *string `json:"keyword"`
	Priority       *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status         *string `json:"status" validate:"omitempty,oneof=backlog in_progress done"`
	DeadlineBefore *string `json:"deadline_before"`
	Sort           *string `json:"sort" validate:"omitempty,oneof=title priority status deadline"`
	Limit          *uint32 `json:"limit"`
}

// DeleteByIDsRequest is the payload for batch deletion by ID
type DeleteByIDsRequest struct {
	IDs []string `json:"ids"`
}

// DeleteByPrioritiesRequest is the payload for batch deletion by priority
type DeleteByPrioritiesRequest struct {
	Priorities []string `json:"priorities" validate:"dive,oneof=low medium high"`
}

// DeleteByStatusesRequest is the payload for batch deletion by status
type DeleteByStatusesRequest struct {
	Statuses []string `json:"statuses" validate:"dive,oneof=backlog in_progress done"`
}

// TodoResponse is the external representation of a todo
type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	Deadline  *int64 `json:"deadline,omitempty"`
}

// TodoListResponse wraps a search result
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count uint64         `json:"count"`
}

// CountResponse wraps a count result
type CountResponse struct {
	Count uint64 `json:"count"`
}

// DeletedResponse reports how many todos a delete operation removed
type DeletedResponse struct {
	Removed uint64 `json:"removed"`
}

// MessageResponse is a simple message payload
type MessageResponse struct {
	Message string `json:"message"`
}

func toTodoResponse(t todos.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Priority:  t.Priority.String(),
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Deadline:  t.Deadline,
	}
}

func toTodoListResponse(items []todos.Todo) (TodoListResponse, error) {
	out := make([]TodoResponse, len(items))
	for i, t := range items {
		out[i] = toTodoResponse(t)
	}

	count, err := countToUint64(len(items))
	if err != nil {
		return TodoListResponse{}, err
	}

	return TodoListResponse{Todos: out, Count: count}, nil
}

// parseTodoID converts an external identifier string into the internal ID
// type, or fails with the shared invalid-ID error.
func parseTodoID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, todos.NewInvalidIDError(raw, err)
	}
	return id, nil
}

// Enum translation is an explicit, exhaustive mapping in both directions;
// unknown external values are rejected, never reinterpreted.

func priorityFromDTO(value string) (todos.Priority, error) {
	switch value {
	case "low":
		return todos.PriorityLow, nil
	case "medium":
		return todos.PriorityMedium, nil
	case "high":
		return todos.PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", value)
	}
}

func statusFromDTO(value string) (todos.Status, error) {
	switch value {
	case "backlog":
		return todos.StatusBacklog, nil
	case "in_progress":
		return todos.StatusInProgress, nil
	case "done":
		return todos.StatusDone, nil
	default:
		return 0, fmt.Errorf("unknown status %q", value)
	}
}

func sortFromDTO(value string) (todos.SortDimension, error) {
	switch value {
	case "title":
		return todos.SortByTitle, nil
	case "priority":
		return todos.SortByPriority, nil
	case "status":
		return todos.SortByStatus, nil
	case "deadline":
		return todos.SortByDeadline, nil
	default:
		return 0, fmt.Errorf("unknown sort dimension %q", value)
	}
}

// countToUint64 widens a count to the external unsigned representation.
// The guard only trips on a negative count, which no operation produces.
func countToUint64(n int) (uint64, error) {
	if n < 0 {
		return 0, &todos.CountConversionError{Count: n}
	}
	return uint64(n), nil
}

func toQuery(req SearchTodosRequest) (todos.Query, error) {
	query := todos.Query{Keyword: req.Keyword}

	if req.Priority != nil {
		priority, err := priorityFromDTO(*req.Priority)
		if err != nil {
			return todos.Query{}, err
		}
		query.Priority = &priority
	}

	if req.Status != nil {
		status, err := statusFromDTO(*req.Status)
		if err != nil {
			return todos.Query{}, err
		}
		query.Status = &status
	}

	if req.DeadlineBefore != nil {
		query.Deadline = todos.DeadlineOf(*req.DeadlineBefore)
	}

	if req.Sort != nil {
		sortBy, err := sortFromDTO(*req.Sort)
		if err != nil {
			return todos.Query{}, err
		}
		query.SortBy = sortBy
	}

	if req.Limit != nil {
		query.Limit = todos.LimitOf(*req.Limit)
	}

	return query, nil
}
