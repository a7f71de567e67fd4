package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type HotelServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelServiceRepo(db *dbpg.DB) *HotelServiceRepository {
	return &HotelServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetByID skips tombstoned services: a soft-deleted service reads as absent
// on every path.
func (r *HotelServiceRepository) GetByID(ctx context.Context, id string) (*domain.HotelService, error) {
	query := `SELECT id, name, price_cents, deleted
			  FROM hotel_services
			  WHERE id = $1 AND NOT deleted`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel service: %w", err)
	}

	var s domain.HotelService
	if err = row.Scan(&s.ID, &s.Name, &s.PriceCents, &s.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelServiceNotFound
		}
		return nil, fmt.Errorf("scan hotel service: %w", err)
	}

	return &s, nil
}
