package handler

import (
	"log/slog"
	"net/http"

	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/validator"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
	Logger *slog.Logger
}

// TodoHandler holds dependencies for todo handlers.
type TodoHandler struct {
	todoUC usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC: params.TodoUC,
		logger: params.Logger,
	}
}

// TitleRequest is the body for creating or renaming a todo.
type TitleRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// ListTodos returns the caller's todos.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	todos, err := h.todoUC.ListTodos(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todos)
}

// CreateTodo adds a todo for the caller.
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TitleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid todo input", validator.FieldErrors(err))
	}

	todo, err := h.todoUC.CreateTodo(c.Request().Context(), user.ID, &usecase.CreateTodoInput{Title: req.Title})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, todo)
}

// RenameTodo changes the title of one of the caller's todos.
func (h *TodoHandler) RenameTodo(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TitleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid todo input", validator.FieldErrors(err))
	}

	todo, err := h.todoUC.RenameTodo(c.Request().Context(), user.ID, c.Param("id"), req.Title)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// CompleteTodo marks one of the caller's todos as done.
func (h *TodoHandler) CompleteTodo(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	todo, err := h.todoUC.CompleteTodo(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// IncompleteTodo marks one of the caller's todos as not done.
func (h *TodoHandler) IncompleteTodo(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	todo, err := h.todoUC.IncompleteTodo(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// DeleteTodo removes one of the caller's todos.
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	user, err := middleware.Authenticated(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.todoUC.DeleteTodo(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
