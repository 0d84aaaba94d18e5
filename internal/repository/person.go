package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type PersonRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPersonRepo(db *dbpg.DB) *PersonRepository {
	return &PersonRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetByPhone prefers the member directory over the visitor one.
func (r *PersonRepository) GetByPhone(ctx context.Context, phone string) (*domain.Person, error) {
	query := `SELECT phone, name, church, how_heard, category
			  FROM (
			      SELECT phone, name, church, NULL::text AS how_heard, 'Member' AS category, 0 AS rank
			      FROM members WHERE phone = $1
			      UNION ALL
			      SELECT phone, name, church, how_heard, 'Visitor' AS category, 1 AS rank
			      FROM visitors WHERE phone = $1
			  ) p
			  ORDER BY rank
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, phone)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	var p domain.Person
	if err = row.Scan(&p.Phone, &p.Name, &p.Church, &p.HowHeard, &p.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("scan person: %w", err)
	}

	return &p, nil
}
