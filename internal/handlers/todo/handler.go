package todo

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todosvc/infras/otel"
	"todosvc/internal/domains/todo/model"
	"todosvc/internal/domains/todo/model/dto"
	"todosvc/internal/domains/todo/service"
	"todosvc/shared/constant"
	"todosvc/shared/failure"
	"todosvc/shared/validator"
	"todosvc/transport/http/response"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(todos chi.Router) {
		todos.Get("/", handler.List)
		todos.Post("/", handler.Create)
		todos.Get("/{"+constant.RequestParamID+"}", handler.Read)
		todos.Put("/{"+constant.RequestParamID+"}", handler.Update)
		todos.Delete("/{"+constant.RequestParamID+"}", handler.Delete)
	})
}

// List
// @Summary List todos
// @Description Every stored todo in creation order. An empty store yields [].
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "List")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		fail(w, scope, err)

		return
	}

	scope.SetAttribute("todo.count", len(todos))

	response.WithJSON(w, http.StatusOK, todos)
}

// Create
// @Summary Create a todo
// @Description The server assigns id and created_at. A new todo is never completed.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "New todo"
// @Success 201 {object} dto.TodoResponse
// @Failure 400 {object} response.Error "Title is required"
// @Failure 500 {object} response.Error
// @Router /todos [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Create")
	defer scope.End()

	var req dto.CreateTodoRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		if failure.GetCode(err) == http.StatusBadRequest {
			log.Warn().Err(err).Msg("Invalid request: missing title")
		}

		fail(w, scope, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		fail(w, scope, err)

		return
	}

	scope.SetAttribute(model.FieldID, todo.ID)

	response.WithJSON(w, http.StatusCreated, todo)
}

// Read
// @Summary Get a todo
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} response.Error "Todo not found"
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
func (handler *Handler) Read(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Read")
	defer scope.End()

	todo, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		fail(w, scope, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// Update applies a partial change. The id is resolved before the body is
// decoded, so an unknown id answers 404 whatever the body holds. The body must
// be a JSON object.
// @Summary Update a todo
// @Description Fields present in the body overwrite the stored values. Absent or null fields are kept.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Changed fields"
// @Success 200 {object} dto.TodoResponse
// @Failure 404 {object} response.Error "Todo not found"
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Update")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Exist(ctx, id); err != nil {
		fail(w, scope, err)

		return
	}

	var req dto.UpdateTodoRequest
	if err := validator.ValidateObject(r.Body, &req); err != nil {
		fail(w, scope, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id)
	if err != nil {
		fail(w, scope, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// Delete
// @Summary Delete a todo
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Message "Todo deleted"
// @Failure 404 {object} response.Error "Todo not found"
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Delete")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		fail(w, scope, err)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageTodoDeleted)
}

func (handler *Handler) scope(r *http.Request, operation string) (ctx context.Context, scope otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
}

func fail(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)

	response.WithError(w, err)
}
