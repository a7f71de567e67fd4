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

type RoomTypeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomTypeRepo(db *dbpg.DB) *RoomTypeRepository {
	return &RoomTypeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id string) (*domain.RoomType, error) {
	query := `SELECT id, name, nightly_rate_cents, max_capacity
			  FROM room_types
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	var rt domain.RoomType
	if err = row.Scan(&rt.ID, &rt.Name, &rt.NightlyRateCents, &rt.MaxCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("scan room type: %w", err)
	}

	return &rt, nil
}
