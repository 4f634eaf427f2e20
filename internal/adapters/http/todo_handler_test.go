package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ithinkicancode/golem-todo-list/internal/application/services"
	"github.com/ithinkicancode/golem-todo-list/internal/domain/todos"
	"github.com/ithinkicancode/golem-todo-list/internal/infrastructure/logger"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestHandler() (*echo.Echo, *TodoHandler) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	nop := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	service := services.NewTodoService(todos.NewList(), nop)

	return e, NewTodoHandler(service, nop)
}

func doJSON(e *echo.Echo, handler echo.HandlerFunc, method, target, body string, pathParams map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath(target)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestCreateTodoEndpoint(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos",
		`{"title":"pay invoice","priority":"high","deadline":"2022-01-01 09"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pay invoice", resp.Title)
	assert.Equal(t, "high", resp.Priority)
	assert.Equal(t, "backlog", resp.Status)
	require.NotNil(t, resp.Deadline)
	assert.Equal(t, int64(1641027600), *resp.Deadline)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateTodoRejectsBadInput(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"priority":"low"}`},
		{"unknown priority", `{"title":"x","priority":"critical"}`},
		{"bad deadline", `{"title":"x","priority":"low","deadline":"tomorrow"}`},
		{"blank title", `{"title":"   ","priority":"low"}`},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos", testCase.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateTodoEndpoint(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos",
		`{"title":"draft email","priority":"low"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, h.UpdateTodo, http.MethodPatch, "/api/v1/todos/:id",
		`{"status":"in_progress","priority":"high"}`, map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, "high", updated.Priority)
}

func TestUpdateTodoErrors(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		rec := doJSON(e, h.UpdateTodo, http.MethodPatch, "/api/v1/todos/:id",
			`{"status":"done"}`, map[string]string{"id": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		rec := doJSON(e, h.UpdateTodo, http.MethodPatch, "/api/v1/todos/:id",
			`{"status":"done"}`, map[string]string{"id": "7f9c24e5-2f86-4a6b-8d53-1f4b2a6c9e01"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no changes", func(t *testing.T) {
		t.Parallel()

		rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos",
			`{"title":"some task","priority":"low"}`, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(e, h.UpdateTodo, http.MethodPatch, "/api/v1/todos/:id",
			`{}`, map[string]string{"id": created.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchTodosEndpoint(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	for _, body := range []string{
		`{"title":"pay invoice","priority":"high"}`,
		`{"title":"mail invoice","priority":"low"}`,
		`{"title":"call supplier","priority":"high"}`,
	} {
		rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, h.SearchTodos, http.MethodPost, "/api/v1/todos/search",
		`{"keyword":"invoice","priority":"high"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TodoListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(1), resp.Count)
	assert.Equal(t, "pay invoice", resp.Todos[0].Title)

	rec = doJSON(e, h.CountTodos, http.MethodPost, "/api/v1/todos/count",
		`{"priority":"high"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, uint64(2), count.Count)
}

func TestBatchDeleteEndpoints(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	var ids []string
	for _, body := range []string{
		`{"title":"a","priority":"low"}`,
		`{"title":"b","priority":"medium"}`,
		`{"title":"c","priority":"high"}`,
	} {
		rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		ids = append(ids, created.ID)
	}

	t.Run("empty target set is rejected", func(t *testing.T) {
		rec := doJSON(e, h.DeleteTodosByPriorities, http.MethodPost,
			"/api/v1/todos/delete-by-priorities", `{"priorities":[]}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete by priorities", func(t *testing.T) {
		rec := doJSON(e, h.DeleteTodosByPriorities, http.MethodPost,
			"/api/v1/todos/delete-by-priorities", `{"priorities":["medium"]}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeletedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.Removed)
	})

	t.Run("delete by ids", func(t *testing.T) {
		rec := doJSON(e, h.DeleteTodosByIDs, http.MethodPost,
			"/api/v1/todos/delete-by-ids", `{"ids":["`+ids[0]+`"]}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeletedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.Removed)
	})

	t.Run("delete all", func(t *testing.T) {
		rec := doJSON(e, h.DeleteAllTodos, http.MethodDelete, "/api/v1/todos", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeletedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.Removed)
	})
}

func TestDeleteByStatusEndpoint(t *testing.T) {
	t.Parallel()

	e, h := newTestHandler()

	rec := doJSON(e, h.CreateTodo, http.MethodPost, "/api/v1/todos",
		`{"title":"finish slides","priority":"low"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, h.UpdateTodo, http.MethodPatch, "/api/v1/todos/:id",
		`{"status":"done"}`, map[string]string{"id": created.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, h.DeleteTodosByStatus, http.MethodDelete, "/api/v1/todos/status/:status",
		"", map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeletedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1), resp.Removed)

	rec = doJSON(e, h.DeleteTodosByStatus, http.MethodDelete, "/api/v1/todos/status/:status",
		"", map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(0), resp.Removed)
}
