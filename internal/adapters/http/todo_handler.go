package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ithinkicancode/golem-todo-list/internal/domain/todos"
	"github.com/ithinkicancode/golem-todo-list/internal/infrastructure/logger"
	"github.com/ithinkicancode/golem-todo-list/internal/ports"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	todoService ports.TodoService
	logger      *logger.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService ports.TodoService, logger *logger.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// CreateTodo handles todo creation
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	priority, err := priorityFromDTO(req.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := todos.NewTodo{
		Title:    todos.NewTitle(req.Title),
		Priority: priority,
	}
	if req.Deadline != nil {
		item.Deadline = todos.DeadlineOf(*req.Deadline)
	}

	todo, err := h.todoService.Create(c.Request().Context(), item)
	if err != nil {
		h.logger.Error("Create todo failed", "error", err)
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// UpdateTodo handles partial updates of a todo
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	id, err := parseTodoID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var change todos.UpdateTodo

	if req.Title != nil {
		title := todos.NewTitle(*req.Title)
		change.Title = &title
	}

	if req.Priority != nil {
		priority, err := priorityFromDTO(*req.Priority)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		change.Priority = &priority
	}

	if req.Status != nil {
		status, err := statusFromDTO(*req.Status)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		change.Status = &status
	}

	if req.Deadline != nil {
		change.Deadline = todos.DeadlineOf(*req.Deadline)
	}

	todo, err := h.todoService.Update(c.Request().Context(), id, change)
	if err != nil {
		h.logger.Error("Update todo failed", "error", err, "todo_id", id)
		return domainError(err)
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// GetTodo handles getting a todo by ID
func (h *TodoHandler) GetTodo(c echo.Context) error {
	id, err := parseTodoID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.todoService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// SearchTodos handles filtered, ranked, capped search
func (h *TodoHandler) SearchTodos(c echo.Context) error {
	var req SearchTodosRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query, err := toQuery(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	results, err := h.todoService.Search(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Search todos failed", "error", err)
		return domainError(err)
	}

	response, err := toTodoListResponse(results)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, response)
}

// CountTodos handles counting todos matching a query's filters
func (h *TodoHandler) CountTodos(c echo.Context) error {
	var req SearchTodosRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query, err := toQuery(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := h.todoService.CountBy(c.Request().Context(), query)
	if err != nil {
		return domainError(err)
	}

	external, err := countToUint64(count)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, CountResponse{Count: external})
}

// CountAllTodos handles counting every stored todo
func (h *TodoHandler) CountAllTodos(c echo.Context) error {
	count, err := countToUint64(h.todoService.CountAll(c.Request().Context()))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// DeleteTodo handles deleting a todo by ID
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	id, err := parseTodoID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.todoService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Todo deleted"})
}

// DeleteTodosByIDs handles batch deletion by ID set
func (h *TodoHandler) DeleteTodosByIDs(c echo.Context) error {
	var req DeleteByIDsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	ids := make([]uuid.UUID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := parseTodoID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		ids[i] = id
	}

	removed, err := h.todoService.DeleteByIDs(c.Request().Context(), ids)
	if err != nil {
		return domainError(err)
	}

	return deletedResponse(c, removed)
}

// DeleteTodosByPriorities handles batch deletion by priority set
func (h *TodoHandler) DeleteTodosByPriorities(c echo.Context) error {
	var req DeleteByPrioritiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	priorities := make([]todos.Priority, len(req.Priorities))
	for i, raw := range req.Priorities {
		priority, err := priorityFromDTO(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		priorities[i] = priority
	}

	removed, err := h.todoService.DeleteByPriorities(c.Request().Context(), priorities)
	if err != nil {
		return domainError(err)
	}

	return deletedResponse(c, removed)
}

// DeleteTodosByStatuses handles batch deletion by status set
func (h *TodoHandler) DeleteTodosByStatuses(c echo.Context) error {
	var req DeleteByStatusesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	statuses := make([]todos.Status, len(req.Statuses))
	for i, raw := range req.Statuses {
		status, err := statusFromDTO(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		statuses[i] = status
	}

	removed, err := h.todoService.DeleteByStatuses(c.Request().Context(), statuses)
	if err != nil {
		return domainError(err)
	}

	return deletedResponse(c, removed)
}

// DeleteTodosByStatus handles deleting every todo with one status
func (h *TodoHandler) DeleteTodosByStatus(c echo.Context) error {
	status, err := statusFromDTO(c.Param("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	removed := h.todoService.DeleteByStatus(c.Request().Context(), status)

	return deletedResponse(c, removed)
}

// DeleteAllTodos handles clearing the whole collection
func (h *TodoHandler) DeleteAllTodos(c echo.Context) error {
	removed := h.todoService.DeleteAll(c.Request().Context())

	return deletedResponse(c, removed)
}

func deletedResponse(c echo.Context, removed int) error {
	count, err := countToUint64(removed)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DeletedResponse{Removed: count})
}

// domainError maps domain errors to HTTP status codes
func domainError(err error) error {
	var (
		notFound *todos.NotFoundError
		tooLong  *todos.TitleTooLongError
		badDate  *todos.DateTimeParseError
	)

	switch {
	case errors.As(err, &notFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &tooLong),
		errors.As(err, &badDate),
		errors.Is(err, todos.ErrEmptyTitle),
		errors.Is(err, todos.ErrNoChanges),
		errors.Is(err, todos.ErrEmptyCollection):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
