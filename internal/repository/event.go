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
	"github.com/ewhettey/church-attendance/internal/eventtime"
)

const eventColumns = `id, name, description,
		to_char(event_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
		location, church, event_type, is_active, created_by, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, event_date, end_date, start_time, end_time,
			  		location, church, event_type, is_active, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4::date, $5::date, $6::time, $7::time, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description,
		e.Schedule.EventDate.String(), dateArg(e.Schedule.EndDate),
		clockArg(e.Schedule.StartTime), clockArg(e.Schedule.EndTime),
		e.Location, e.Church, e.EventType, e.IsActive, e.CreatedBy,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, description = $3, event_date = $4::date, end_date = $5::date,
			      start_time = $6::time, end_time = $7::time, location = $8, church = $9,
			      event_type = $10, is_active = $11, updated_at = $12
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description,
		e.Schedule.EventDate.String(), dateArg(e.Schedule.EndDate),
		clockArg(e.Schedule.StartTime), clockArg(e.Schedule.EndTime),
		e.Location, e.Church, e.EventType, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE is_active
			  ORDER BY event_date, start_time NULLS FIRST`

	return r.list(ctx, query)
}

func (r *EventRepository) ListActiveSince(ctx context.Context, since eventtime.Date) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE is_active AND COALESCE(end_date, event_date) >= $1::date
			  ORDER BY event_date, start_time NULLS FIRST`

	return r.list(ctx, query, since.String())
}

func (r *EventRepository) Deactivate(ctx context.Context, ids []string) (int, error) {
	query := `UPDATE events
			  SET is_active = false, updated_at = now()
			  WHERE id = ANY($1) AND is_active`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("deactivate events: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("event rows affected: %w", err)
	}

	return int(rows), nil
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e                           domain.Event
		eventDate                   string
		endDate, startTime, endTime sql.NullString
		createdBy                   sql.NullString
	)
	if err := s.Scan(
		&e.ID, &e.Name, &e.Description,
		&eventDate, &endDate, &startTime, &endTime,
		&e.Location, &e.Church, &e.EventType, &e.IsActive, &createdBy,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}

	schedule, err := eventtime.ParseSpec(eventDate, nullable(endDate), nullable(startTime), nullable(endTime))
	if err != nil {
		return nil, fmt.Errorf("event %s schedule: %w", e.ID, err)
	}
	e.Schedule = schedule
	e.CreatedBy = nullable(createdBy)

	return &e, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func dateArg(d *eventtime.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func clockArg(c *eventtime.Clock) any {
	if c == nil {
		return nil
	}
	return c.String()
}
