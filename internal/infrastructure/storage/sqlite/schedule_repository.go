package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"tau/internal/domain/schedule"
	"tau/internal/domain/sync"
)

type ScheduleRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewScheduleRepository(db *sql.DB, log *slog.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		db:  db,
		log: log.With("component", "schedule_repository"),
	}
}

const scheduleColumns = `id, user_id, day_of_week, start_time, end_time, discipline_id, remote_id, synced`

func (r *ScheduleRepository) Insert(ctx context.Context, ownerID int64, f schedule.Fields, state sync.State) (int64, error) {
	id, err := insertSchedule(ctx, r.db, ownerID, f, state)
	if err != nil {
		r.log.Error("failed to insert schedule", "user_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert schedule: %w", err)
	}
	return id, nil
}

func insertSchedule(ctx context.Context, db execer, ownerID int64, f schedule.Fields, state sync.State) (int64, error) {
	const query = `
		INSERT INTO schedules (user_id, day_of_week, start_time, end_time, discipline_id, remote_id, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	remoteID, synced := stateArgs(state)
	res, err := db.ExecContext(ctx, query,
		ownerID, f.DayOfWeek, f.StartTime, f.EndTime, f.DisciplineID, remoteID, synced)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ScheduleRepository) Update(ctx context.Context, localID int64, f schedule.Fields, state sync.State) error {
	const query = `
		UPDATE schedules
		SET day_of_week = ?, start_time = ?, end_time = ?, discipline_id = ?, remote_id = ?, synced = ?
		WHERE id = ?`

	remoteID, synced := stateArgs(state)
	_, err := r.db.ExecContext(ctx, query,
		f.DayOfWeek, f.StartTime, f.EndTime, f.DisciplineID, remoteID, synced, localID)
	if err != nil {
		r.log.Error("failed to update schedule", "id", localID, "error", err)
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) SetState(ctx context.Context, localID int64, state sync.State) error {
	const query = `UPDATE schedules SET remote_id = ?, synced = ? WHERE id = ?`

	remoteID, synced := stateArgs(state)
	if _, err := r.db.ExecContext(ctx, query, remoteID, synced, localID); err != nil {
		r.log.Error("failed to set schedule state", "id", localID, "state", state.String(), "error", err)
		return fmt.Errorf("set schedule state: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, localID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, localID); err != nil {
		r.log.Error("failed to delete schedule", "id", localID, "error", err)
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Get(ctx context.Context, localID int64) (schedule.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`

	sc, err := scanSchedule(r.db.QueryRowContext(ctx, query, localID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrNotFound
		}
		r.log.Error("failed to get schedule", "id", localID, "error", err)
		return schedule.Schedule{}, fmt.Errorf("get schedule: %w", err)
	}
	return sc, nil
}

func (r *ScheduleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]schedule.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list schedules", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	out := make([]schedule.Schedule, 0)
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}
	return out, nil
}

func (r *ScheduleRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]schedule.Schedule, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]schedule.Schedule, len(list))
	for _, sc := range list {
		out[sc.LocalID] = sc
	}
	return out, nil
}

func (r *ScheduleRepository) ApplyPull(ctx context.Context, ownerID int64, plan sync.Plan[schedule.Fields]) error {
	const update = `
		UPDATE schedules
		SET day_of_week = ?, start_time = ?, end_time = ?, discipline_id = ?, remote_id = ?, synced = 1
		WHERE id = ?`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, u := range plan.Updates {
			f := u.Fields
			_, err := tx.ExecContext(ctx, update,
				f.DayOfWeek, f.StartTime, f.EndTime, f.DisciplineID, u.RemoteID, u.LocalID)
			if err != nil {
				return fmt.Errorf("update schedule %d: %w", u.LocalID, err)
			}
		}
		for _, in := range plan.Inserts {
			if _, err := insertSchedule(ctx, tx, ownerID, in.Fields, sync.Synced(in.RemoteID)); err != nil {
				return fmt.Errorf("insert schedule %d: %w", in.RemoteID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to apply schedule pull", "user_id", ownerID, "error", err)
		return fmt.Errorf("apply schedule pull: %w", err)
	}
	return nil
}

func scanSchedule(row scanner) (schedule.Schedule, error) {
	var (
		sc       schedule.Schedule
		remoteID sql.NullInt64
		synced   bool
	)
	err := row.Scan(&sc.LocalID, &sc.OwnerID, &sc.DayOfWeek, &sc.StartTime, &sc.EndTime,
		&sc.DisciplineID, &remoteID, &synced)
	if err != nil {
		return schedule.Schedule{}, err
	}
	sc.State = scanState(remoteID, synced)
	return sc, nil
}
