package mocks

import (
	"context"
	"sync"

	"todosvc/infras/otel"
)

// Otel is an in-memory otel.Otel for unit tests. It exports nothing and keeps
// the name of every opened scope and every error traced on one.
type Otel struct {
	mu     sync.Mutex
	scopes []string
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.scopes = append(o.scopes, name)

	return ctx, &scope{otel: o}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the opened scope names in order.
func (o *Otel) Scopes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.scopes...)
}

// Errors returns the errors traced on any scope.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errors = append(o.errors, err)
}

type scope struct {
	otel *Otel
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	s.otel.record(err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.otel.record(err)
	}
}
