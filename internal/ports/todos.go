package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ithinkicancode/golem-todo-list/internal/domain/todos"
)

// TodoService is the in-process contract transport adapters consume. The
// implementation serializes all access to the underlying collection, so a
// single instance is safe behind a concurrent boundary.
type TodoService interface {
	Create(ctx context.Context, item todos.NewTodo) (todos.Todo, error)
	Update(ctx context.Context, id uuid.UUID, change todos.UpdateTodo) (todos.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (todos.Todo, error)
	Search(ctx context.Context, query todos.Query) ([]todos.Todo, error)
	CountBy(ctx context.Context, query todos.Query) (int, error)
	CountAll(ctx context.Context) int
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	DeleteByPriorities(ctx context.Context, priorities []todos.Priority) (int, error)
	DeleteByStatuses(ctx context.Context, statuses []todos.Status) (int, error)
	DeleteByStatus(ctx context.Context, status todos.Status) int
	DeleteAll(ctx context.Context) int
}
