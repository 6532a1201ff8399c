package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"slices"
	"sync"

	"todosvc/infras/otel"
	"todosvc/internal/domains/todo/model"
	"todosvc/shared/constant"
)

var ErrNotFound = errors.New("todo not found")

// Todo is the authoritative holder of todo records for the lifetime of the process.
// Records cross the boundary by value, so callers never alias stored state.
type Todo interface {
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id string) (model.Todo, error)
	Put(ctx context.Context, todo model.Todo) error
	Update(ctx context.Context, id string, apply func(todo *model.Todo)) (model.Todo, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	mu      sync.RWMutex
	records map[string]model.Todo
	order   []string
	otel    otel.Otel
}

func New(otel otel.Otel) Todo {
	return &repositoryImpl{
		records: make(map[string]model.Todo),
		otel:    otel,
	}
}

// List returns every record in insertion order.
func (r *repositoryImpl) List(ctx context.Context) ([]model.Todo, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".List")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]model.Todo, 0, len(r.order))
	for _, id := range r.order {
		todos = append(todos, r.records[id])
	}

	scope.SetAttribute("todo.count", len(todos))

	return todos, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Todo, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	scope.SetAttribute("todo.id", id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.records[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}

	return todo, nil
}

// Put inserts the record or overwrites the one with the same ID.
func (r *repositoryImpl) Put(ctx context.Context, todo model.Todo) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Put")
	defer scope.End()

	scope.SetAttribute("todo.id", todo.ID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[todo.ID]; !ok {
		r.order = append(r.order, todo.ID)
	}

	r.records[todo.ID] = todo

	return nil
}

// Update runs apply against a copy of the stored record and stores the result, all
// under the write lock. The ID cannot be changed through apply.
func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(todo *model.Todo)) (model.Todo, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()

	scope.SetAttribute("todo.id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.records[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}

	apply(&todo)
	todo.ID = id

	r.records[id] = todo

	return todo, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute("todo.id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}

	delete(r.records, id)
	r.order = slices.DeleteFunc(r.order, func(existing string) bool {
		return existing == id
	})

	return nil
}
