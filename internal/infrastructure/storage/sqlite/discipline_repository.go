package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"tau/internal/domain/discipline"
	"tau/internal/domain/sync"
)

type DisciplineRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewDisciplineRepository(db *sql.DB, log *slog.Logger) *DisciplineRepository {
	return &DisciplineRepository{
		db:  db,
		log: log.With("component", "discipline_repository"),
	}
}

const disciplineColumns = `id, user_id, name, teacher, room, color, remote_id, synced`

func (r *DisciplineRepository) Insert(ctx context.Context, ownerID int64, f discipline.Fields, state sync.State) (int64, error) {
	id, err := insertDiscipline(ctx, r.db, ownerID, f, state)
	if err != nil {
		r.log.Error("failed to insert discipline", "user_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert discipline: %w", err)
	}
	return id, nil
}

func insertDiscipline(ctx context.Context, db execer, ownerID int64, f discipline.Fields, state sync.State) (int64, error) {
	const query = `
		INSERT INTO disciplines (user_id, name, teacher, room, color, remote_id, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	remoteID, synced := stateArgs(state)
	res, err := db.ExecContext(ctx, query, ownerID, f.Name, f.Teacher, f.Room, f.Color, remoteID, synced)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *DisciplineRepository) Update(ctx context.Context, localID int64, f discipline.Fields, state sync.State) error {
	const query = `
		UPDATE disciplines
		SET name = ?, teacher = ?, room = ?, color = ?, remote_id = ?, synced = ?
		WHERE id = ?`

	remoteID, synced := stateArgs(state)
	if _, err := r.db.ExecContext(ctx, query, f.Name, f.Teacher, f.Room, f.Color, remoteID, synced, localID); err != nil {
		r.log.Error("failed to update discipline", "id", localID, "error", err)
		return fmt.Errorf("update discipline: %w", err)
	}
	return nil
}

func (r *DisciplineRepository) SetState(ctx context.Context, localID int64, state sync.State) error {
	const query = `UPDATE disciplines SET remote_id = ?, synced = ? WHERE id = ?`

	remoteID, synced := stateArgs(state)
	if _, err := r.db.ExecContext(ctx, query, remoteID, synced, localID); err != nil {
		r.log.Error("failed to set discipline state", "id", localID, "state", state.String(), "error", err)
		return fmt.Errorf("set discipline state: %w", err)
	}
	return nil
}

func (r *DisciplineRepository) Delete(ctx context.Context, localID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM disciplines WHERE id = ?`, localID); err != nil {
		r.log.Error("failed to delete discipline", "id", localID, "error", err)
		return fmt.Errorf("delete discipline: %w", err)
	}
	return nil
}

func (r *DisciplineRepository) Get(ctx context.Context, localID int64) (discipline.Discipline, error) {
	query := `SELECT ` + disciplineColumns + ` FROM disciplines WHERE id = ?`

	d, err := scanDiscipline(r.db.QueryRowContext(ctx, query, localID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return discipline.Discipline{}, discipline.ErrNotFound
		}
		r.log.Error("failed to get discipline", "id", localID, "error", err)
		return discipline.Discipline{}, fmt.Errorf("get discipline: %w", err)
	}
	return d, nil
}

func (r *DisciplineRepository) ListByOwner(ctx context.Context, ownerID int64) ([]discipline.Discipline, error) {
	query := `SELECT ` + disciplineColumns + ` FROM disciplines WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list disciplines", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list disciplines: %w", err)
	}
	defer rows.Close()

	out := make([]discipline.Discipline, 0)
	for rows.Next() {
		d, err := scanDiscipline(rows)
		if err != nil {
			return nil, fmt.Errorf("scan discipline: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disciplines: %w", err)
	}
	return out, nil
}

func (r *DisciplineRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]discipline.Discipline, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]discipline.Discipline, len(list))
	for _, d := range list {
		out[d.LocalID] = d
	}
	return out, nil
}

func (r *DisciplineRepository) ApplyPull(ctx context.Context, ownerID int64, plan sync.Plan[discipline.Fields]) error {
	const update = `
		UPDATE disciplines
		SET name = ?, teacher = ?, room = ?, color = ?, remote_id = ?, synced = 1
		WHERE id = ?`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, u := range plan.Updates {
			f := u.Fields
			if _, err := tx.ExecContext(ctx, update, f.Name, f.Teacher, f.Room, f.Color, u.RemoteID, u.LocalID); err != nil {
				return fmt.Errorf("update discipline %d: %w", u.LocalID, err)
			}
		}
		for _, in := range plan.Inserts {
			if _, err := insertDiscipline(ctx, tx, ownerID, in.Fields, sync.Synced(in.RemoteID)); err != nil {
				return fmt.Errorf("insert discipline %d: %w", in.RemoteID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to apply discipline pull", "user_id", ownerID, "error", err)
		return fmt.Errorf("apply discipline pull: %w", err)
	}
	return nil
}

func scanDiscipline(row scanner) (discipline.Discipline, error) {
	var (
		d        discipline.Discipline
		remoteID sql.NullInt64
		synced   bool
	)
	if err := row.Scan(&d.LocalID, &d.OwnerID, &d.Name, &d.Teacher, &d.Room, &d.Color, &remoteID, &synced); err != nil {
		return discipline.Discipline{}, err
	}
	d.State = scanState(remoteID, synced)
	return d, nil
}
