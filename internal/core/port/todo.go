package port

import (
	"context"

	"taskboard/internal/core/domain"
)

type TodoRepository interface {
	ListAll(ctx context.Context) ([]domain.Todo, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (int64, error)
	SetStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type TodoService interface {
	ListAll(ctx context.Context) ([]domain.Todo, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Todo, error)
	Create(ctx context.Context, username, title, targetDatetime string) (int64, error)
	SetStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
