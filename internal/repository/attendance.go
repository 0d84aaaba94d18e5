package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ewhettey/church-attendance/internal/domain"
)

const fkAttendanceEvent = "attendance_event_id_fkey"

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = upsertPerson(ctx, tx, a); err != nil {
		return err
	}

	query := `INSERT INTO attendance (id, event_id, phone, name, church, category, how_heard,
			  		marked_by, offline, captured_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query, a.ID, a.EventID, a.Phone, a.Name, a.Church,
		a.Category, a.HowHeard, a.MarkedBy, a.Offline, a.CapturedAt, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyCheckedIn
			case "23503":
				if pgErr.Constraint == fkAttendanceEvent {
					return domain.ErrEventNotFound
				}
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert attendance: %w", err)
	}

	return tx.Commit()
}

// upsertPerson keeps the member and visitor directories current so the
// next lookup by phone finds the latest details.
func upsertPerson(ctx context.Context, tx execer, a *domain.Attendance) error {
	var query string
	args := []any{a.Phone, a.Name, a.Church, a.CreatedAt}

	switch a.Category {
	case domain.CategoryVisitor:
		query = `INSERT INTO visitors (phone, name, church, created_at, how_heard)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (phone) DO UPDATE
				 SET name = EXCLUDED.name, church = EXCLUDED.church, how_heard = EXCLUDED.how_heard`
		args = append(args, a.HowHeard)
	default:
		query = `INSERT INTO members (phone, name, church, created_at)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (phone) DO UPDATE
				 SET name = EXCLUDED.name, church = EXCLUDED.church`
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", a.Category, err)
	}

	return nil
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `SELECT id, event_id, phone, name, church, category, how_heard,
			  		marked_by, offline, captured_at, created_at
			  FROM attendance
			  WHERE event_id = $1
			  ORDER BY captured_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err = rows.Scan(
			&a.ID, &a.EventID, &a.Phone, &a.Name, &a.Church, &a.Category, &a.HowHeard,
			&a.MarkedBy, &a.Offline, &a.CapturedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
