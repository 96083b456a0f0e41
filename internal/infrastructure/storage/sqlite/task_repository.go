package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
	"tau/internal/domain/task"
)

type TaskRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewTaskRepository(db *sql.DB, log *slog.Logger) *TaskRepository {
	return &TaskRepository{
		db:  db,
		log: log.With("component", "task_repository"),
	}
}

const taskColumns = `id, user_id, title, description, completed, due_date, discipline_id, remote_id, synced`

func (r *TaskRepository) Insert(ctx context.Context, ownerID int64, f task.Fields, state sync.State) (int64, error) {
	id, err := insertTask(ctx, r.db, ownerID, f, state)
	if err != nil {
		r.log.Error("failed to insert task", "user_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

func insertTask(ctx context.Context, db execer, ownerID int64, f task.Fields, state sync.State) (int64, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, completed, due_date, discipline_id, remote_id, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	remoteID, synced := stateArgs(state)
	res, err := db.ExecContext(ctx, query,
		ownerID, f.Title, f.Description, f.Completed, f.DueDate, f.DisciplineID, remoteID, synced)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TaskRepository) Update(ctx context.Context, localID int64, f task.Fields, state sync.State) error {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?, due_date = ?, discipline_id = ?, remote_id = ?, synced = ?
		WHERE id = ?`

	remoteID, synced := stateArgs(state)
	_, err := r.db.ExecContext(ctx, query,
		f.Title, f.Description, f.Completed, f.DueDate, f.DisciplineID, remoteID, synced, localID)
	if err != nil {
		r.log.Error("failed to update task", "id", localID, "error", err)
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) SetState(ctx context.Context, localID int64, state sync.State) error {
	const query = `UPDATE tasks SET remote_id = ?, synced = ? WHERE id = ?`

	remoteID, synced := stateArgs(state)
	if _, err := r.db.ExecContext(ctx, query, remoteID, synced, localID); err != nil {
		r.log.Error("failed to set task state", "id", localID, "state", state.String(), "error", err)
		return fmt.Errorf("set task state: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, localID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, localID); err != nil {
		r.log.Error("failed to delete task", "id", localID, "error", err)
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, localID int64) (task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, localID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		r.log.Error("failed to get task", "id", localID, "error", err)
		return task.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list tasks", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

func (r *TaskRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]task.Task, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]task.Task, len(list))
	for _, t := range list {
		out[t.LocalID] = t
	}
	return out, nil
}

func (r *TaskRepository) ApplyPull(ctx context.Context, ownerID int64, plan sync.Plan[task.Fields]) error {
	const update = `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?, due_date = ?, discipline_id = ?, remote_id = ?, synced = 1
		WHERE id = ?`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, u := range plan.Updates {
			f := u.Fields
			_, err := tx.ExecContext(ctx, update,
				f.Title, f.Description, f.Completed, f.DueDate, f.DisciplineID, u.RemoteID, u.LocalID)
			if err != nil {
				return fmt.Errorf("update task %d: %w", u.LocalID, err)
			}
		}
		for _, in := range plan.Inserts {
			if _, err := insertTask(ctx, tx, ownerID, in.Fields, sync.Synced(in.RemoteID)); err != nil {
				return fmt.Errorf("insert task %d: %w", in.RemoteID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to apply task pull", "user_id", ownerID, "error", err)
		return fmt.Errorf("apply task pull: %w", err)
	}
	return nil
}

func scanTask(row scanner) (task.Task, error) {
	var (
		t        task.Task
		remoteID sql.NullInt64
		synced   bool
	)
	err := row.Scan(&t.LocalID, &t.OwnerID, &t.Title, &t.Description, &t.Completed,
		&t.DueDate, &t.DisciplineID, &remoteID, &synced)
	if err != nil {
		return task.Task{}, err
	}
	t.State = scanState(remoteID, synced)
	return t, nil
}
