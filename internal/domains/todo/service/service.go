package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todosvc/infras/otel"
	"todosvc/internal/domains/todo/model"
	"todosvc/internal/domains/todo/model/dto"
	"todosvc/internal/domains/todo/repository"
	"todosvc/shared/constant"
	"todosvc/shared/failure"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Exist(ctx context.Context, id string) error
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo := req.ToModel()

	if err = s.repo.Put(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	log.Info().Str(model.FieldID, todo.ID).Msg("Created todo")

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	log.Info().Int("count", len(todos)).Msg("Fetching all todos")

	res.FromModels(todos)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, s.mapError(err, id, "failed to get todo")
	}

	res.FromModel(todo)

	return res, nil
}

// Exist reports a not-found failure for an unknown id, so callers can reject the
// request before reading its body.
func (s *serviceImpl) Exist(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Get(ctx, id); err != nil {
		return s.mapError(err, id, "failed to check if todo exists")
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Update(ctx, id, req.Apply)
	if err != nil {
		return res, s.mapError(err, id, "failed to update todo")
	}

	log.Info().Str(model.FieldID, id).Msg("Updated todo")

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return s.mapError(err, id, "failed to delete todo")
	}

	log.Info().Str(model.FieldID, id).Msg("Deleted todo")

	return nil
}

func (s *serviceImpl) mapError(err error, id, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str(model.FieldID, id).Msg("Todo not found")

		return failure.NotFound(constant.ResponseErrorTodoNotFound) // nolint:wrapcheck
	}

	log.Error().Err(err).Str(model.FieldID, id).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}
