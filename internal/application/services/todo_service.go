package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ithinkicancode/golem-todo-list/internal/domain/todos"
	"github.com/ithinkicancode/golem-todo-list/internal/infrastructure/logger"
)

// TodoService exposes the todo collection behind the concurrent HTTP
// boundary. The collection itself has no synchronization, so every
// operation — reads included — holds the service mutex for its full
// duration; each call is atomic with respect to every other.
type TodoService struct {
	mu     sync.Mutex
	list   *todos.List
	logger *logger.Logger
}

// NewTodoService creates a new todo service owning the given collection.
func NewTodoService(list *todos.List, logger *logger.Logger) *TodoService {
	return &TodoService{
		list:   list,
		logger: logger,
	}
}

// Create adds a new todo
func (s *TodoService) Create(ctx context.Context, item todos.NewTodo) (todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := s.list.Add(item)
	if err != nil {
		return todos.Todo{}, err
	}

	s.logger.Infow("Todo created", "todo_id", todo.ID, "title", todo.Title)

	return todo, nil
}

// Update applies a partial update to a todo
func (s *TodoService) Update(ctx context.Context, id uuid.UUID, change todos.UpdateTodo) (todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := s.list.Update(id, change)
	if err != nil {
		return todos.Todo{}, err
	}

	s.logger.Infow("Todo updated", "todo_id", todo.ID)

	return todo, nil
}

// Get retrieves a todo by ID
func (s *TodoService) Get(ctx context.Context, id uuid.UUID) (todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Get(id)
}

// Search returns the best-ranked todos matching the query, capped by its
// result limit.
func (s *TodoService) Search(ctx context.Context, query todos.Query) ([]todos.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Search(query)
}

// CountBy counts the todos matching the query's filters
func (s *TodoService) CountBy(ctx context.Context, query todos.Query) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.CountBy(query)
}

// CountAll returns the total number of todos
func (s *TodoService) CountAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.CountAll()
}

// Delete removes a todo by ID
func (s *TodoService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.list.Delete(id); err != nil {
		return err
	}

	s.logger.Infow("Todo deleted", "todo_id", id)

	return nil
}

// DeleteByIDs removes every todo whose ID is in the target set
func (s *TodoService) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.list.DeleteByIDs(ids)
	if err != nil {
		return 0, err
	}

	s.logger.Infow("Todos deleted by IDs", "removed", removed)

	return removed, nil
}

// DeleteByPriorities removes every todo whose priority is in the target set
func (s *TodoService) DeleteByPriorities(ctx context.Context, priorities []todos.Priority) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.list.DeleteByPriorities(priorities)
	if err != nil {
		return 0, err
	}

	s.logger.Infow("Todos deleted by priorities", "removed", removed)

	return removed, nil
}

// DeleteByStatuses removes every todo whose status is in the target set
func (s *TodoService) DeleteByStatuses(ctx context.Context, statuses []todos.Status) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.list.DeleteByStatuses(statuses)
	if err != nil {
		return 0, err
	}

	s.logger.Infow("Todos deleted by statuses", "removed", removed)

	return removed, nil
}

// DeleteByStatus removes every todo with the given status
func (s *TodoService) DeleteByStatus(ctx context.Context, status todos.Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.list.DeleteByStatus(status)

	s.logger.Infow("Todos deleted by status", "status", status.String(), "removed", removed)

	return removed
}

// DeleteAll clears the collection and returns the prior size
func (s *TodoService) DeleteAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.list.DeleteAll()

	s.logger.Infow("All todos deleted", "removed", removed)

	return removed
}
