package service

import (
	"context"
	"log/slog"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	tel "taskboard/internal/core/telemetry"
)

// TodoService holds the board's business rules: presence checks, the status
// enumeration, and target date normalization. Storage failures are wrapped
// into a uniform StorageError at this boundary; the cause stays in the logs.
type TodoService struct {
	repo      port.TodoRepository
	telemetry port.Telemetry
}

func NewTodoService(repo port.TodoRepository, telemetry port.Telemetry) *TodoService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoService{repo: repo, telemetry: telemetry}
}

func (ts *TodoService) ListAll(ctx context.Context) ([]domain.Todo, error) {
	todos, err := ts.repo.ListAll(ctx)

	if err != nil {
		slog.Error("Error listing todos", "error", err)
		return nil, &domain.StorageError{Op: "list", Err: err}
	}

	return todos, nil
}

func (ts *TodoService) ListByUsername(ctx context.Context, username string) ([]domain.Todo, error) {
	todos, err := ts.repo.ListByUsername(ctx, username)

	if err != nil {
		slog.Error("Error listing todos by username", "error", err, "username", username)
		return nil, &domain.StorageError{Op: "list_by_username", Err: err}
	}

	return todos, nil
}

func (ts *TodoService) Create(ctx context.Context, username, title, targetDatetime string) (int64, error) {
	if username == "" || title == "" || targetDatetime == "" {
		return 0, &domain.ValidationError{Message: "Missing fields"}
	}

	todo := domain.Todo{
		Username:       username,
		Title:          title,
		TargetDatetime: domain.NormalizeTargetDatetime(targetDatetime),
		Status:         domain.StatusTodo,
	}

	id, err := ts.repo.Create(ctx, todo)

	if err != nil {
		slog.Error("Error creating todo", "error", err, "username", username)
		return 0, &domain.StorageError{Op: "create", Err: err}
	}

	ts.telemetry.RecordBusinessEvent(ctx, "created", "todo", todo.Username, map[string]interface{}{
		"title": todo.Title,
	})

	return id, nil
}

// SetStatus overwrites the status of the record with the given id. An id
// that matches nothing is a silent no-op, not an error: the store reports
// zero rows affected and the call still succeeds.
func (ts *TodoService) SetStatus(ctx context.Context, id int64, status string) error {
	parsed, err := domain.ParseStatus(status)

	if err != nil {
		return err
	}

	if err := ts.repo.SetStatus(ctx, id, parsed); err != nil {
		slog.Error("Error updating todo status", "error", err, "id", id)
		return &domain.StorageError{Op: "set_status", Err: err}
	}

	return nil
}

// Delete removes the record with the given id. Like SetStatus, a missing id
// still reports success.
func (ts *TodoService) Delete(ctx context.Context, id int64) error {
	if err := ts.repo.Delete(ctx, id); err != nil {
		slog.Error("Error deleting todo", "error", err, "id", id)
		return &domain.StorageError{Op: "delete", Err: err}
	}

	return nil
}
