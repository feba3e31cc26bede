package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"taskboard/internal/adapter/database/sqlite"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	tel "taskboard/internal/core/telemetry"
)

type TodoRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewTodoRepository(db *sqlite.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{db: db, telemetry: telemetry}
}

// Listings order by target_datetime descending; ties fall back to storage
// order, so no secondary ORDER BY clause is added.

func (tr *TodoRepository) ListAll(ctx context.Context) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "ListAll", "todo", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "todos",
	})
	defer span.End()

	startTime := time.Now()

	query := tr.db.QueryBuilder.Select("id", "username", "title", "target_datetime", "status").
		From("todos").
		OrderBy("target_datetime DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return nil, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "ListAll", "todo", sqlStr, args)

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

	span.SetAttributes(map[string]interface{}{"db.rows_returned": len(todos)})
	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "ListAll", "todo", time.Since(startTime), nil)

	return todos, nil
}

func (tr *TodoRepository) ListByUsername(ctx context.Context, username string) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "ListByUsername", "todo", map[string]interface{}{
		"db.system":     "sqlite",
		"db.table":      "todos",
		"todo.username": username,
	})
	defer span.End()

	startTime := time.Now()

	query := tr.db.QueryBuilder.Select("id", "username", "title", "target_datetime", "status").
		From("todos").
		Where(sq.Eq{"username": username}).
		OrderBy("target_datetime DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return nil, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "ListByUsername", "todo", sqlStr, args)

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

	span.SetAttributes(map[string]interface{}{"db.rows_returned": len(todos)})
	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "ListByUsername", "todo", time.Since(startTime), nil)

	return todos, nil
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (int64, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "todo", map[string]interface{}{
		"db.system":     "sqlite",
		"db.table":      "todos",
		"db.operation":  "INSERT",
		"todo.username": todo.Username,
	})
	defer span.End()

	startTime := time.Now()

	sqlStr, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("username", "title", "target_datetime", "status").
		Values(todo.Username, todo.Title, todo.TargetDatetime, todo.Status.String()).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return 0, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Create", "todo", sqlStr, args)

	result, err := tr.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), err)
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
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

// SetStatus issues the UPDATE unconditionally. Zero rows affected is still
// success; the caller cannot tell a no-op from a hit.
func (tr *TodoRepository) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "SetStatus", "todo", map[string]interface{}{
		"db.system":    "sqlite",
		"db.table":     "todos",
		"db.operation": "UPDATE",
		"todo.id":      id,
		"todo.status":  status.String(),
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

	tr.telemetry.RecordRepositoryQuery(ctx, "SetStatus", "todo", sqlStr, args)

	result, err := tr.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "SetStatus", "todo", time.Since(startTime), err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil {
		span.SetAttributes(map[string]interface{}{"db.rows_affected": rowsAffected})
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "SetStatus", "todo", time.Since(startTime), nil)

	return nil
}

// Delete issues the DELETE unconditionally; a missing id is not an error.
func (tr *TodoRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Delete", "todo", map[string]interface{}{
		"db.system":    "sqlite",
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

	tr.telemetry.RecordRepositoryQuery(ctx, "Delete", "todo", sqlStr, args)

	result, err := tr.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "todo", time.Since(startTime), err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil {
		span.SetAttributes(map[string]interface{}{"db.rows_affected": rowsAffected})
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

		if err := rows.Scan(&todo.ID, &todo.Username, &todo.Title, &todo.TargetDatetime, &status); err != nil {
			return nil, err
		}

		todo.Status = domain.Status(status)
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
