package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"taskboard/internal/adapter/database/postgres"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	tel "taskboard/internal/core/telemetry"
)

const naiveTimestampLayout = "2006-01-02 15:04:05"

type TodoRepository struct {
	db        *postgres.DB
	telemetry port.Telemetry
}

func NewTodoRepository(db *postgres.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{db: db, telemetry: telemetry}
}

func (tr *TodoRepository) ListAll(ctx context.Context) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "ListAll", "todo", map[string]interface{}{
		"db.system": "postgresql",
		"db.table":  "todos",
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Select("id", "username", "title", "target_datetime", "status").
		From("todos").
		OrderBy("target_datetime DESC").
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "ListAll", "todo", time.Since(startTime), err)
		return nil, err
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "ListAll", "todo", time.Since(startTime), err)
		return nil, err
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "ListAll", "todo", time.Since(startTime), nil)

	return todos, nil
}

func (tr *TodoRepository) ListByUsername(ctx context.Context, username string) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "ListByUsername", "todo", map[string]interface{}{
		"db.system":     "postgresql",
		"db.table":      "todos",
		"todo.username": username,
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Select("id", "username", "title", "target_datetime", "status").
		From("todos").
		Where(sq.Eq{"username": username}).
		OrderBy("target_datetime DESC").
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "ListByUsername", "todo", time.Since(startTime), err)
		return nil, err
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "ListByUsername", "todo", time.Since(startTime), err)
		return nil, err
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "ListByUsername", "todo", time.Since(startTime), nil)

	return todos, nil
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (int64, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "todo", map[string]interface{}{
		"db.system":     "postgresql",
		"db.table":      "todos",
		"db.operation":  "INSERT",
		"todo.username": todo.Username,
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("username", "title", "target_datetime", "status").
		Values(todo.Username, todo.Title, todo.TargetDatetime, todo.Status.String()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return 0, err
	}

	var id int64
	if err := tr.db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), err)
		return 0, err
	}

	span.SetAttributes(map[string]interface{}{"todo.id": id})
	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), nil)

	return id, nil
}

func (tr *TodoRepository) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "SetStatus", "todo", map[string]interface{}{
		"db.system":    "postgresql",
		"db.table":     "todos",
		"db.operation": "UPDATE",
		"todo.id":      id,
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Update("todos").
		Set("status", status.String()).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return err
	}

	// Zero rows affected is still success.
	if _, err := tr.db.ExecContext(ctx, sqlStr, args...); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "SetStatus", "todo", time.Since(startTime), err)
		return err
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "SetStatus", "todo", time.Since(startTime), nil)

	return nil
}

func (tr *TodoRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Delete", "todo", map[string]interface{}{
		"db.system":    "postgresql",
		"db.table":     "todos",
		"db.operation": "DELETE",
		"todo.id":      id,
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return err
	}

	if _, err := tr.db.ExecContext(ctx, sqlStr, args...); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "todo", time.Since(startTime), err)
		return err
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "todo", time.Since(startTime), nil)

	return nil
}

func scanTodos(rows *sql.Rows) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0)

	for rows.Next() {
		var todo domain.Todo
		var status string
		var target time.Time

		if err := rows.Scan(&todo.ID, &todo.Username, &todo.Title, &target, &status); err != nil {
			return nil, err
		}

		// The column is a naive TIMESTAMP; re-serialize to the fixed
		// textual form the API exposes.
		todo.TargetDatetime = target.Format(naiveTimestampLayout)
		todo.Status = domain.Status(status)
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
