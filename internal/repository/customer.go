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

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *CustomerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	return r.getOne(ctx, `WHERE user_id = $1`, userID)
}

func (r *CustomerRepository) getOne(ctx context.Context, where string, args ...interface{}) (*domain.Customer, error) {
	query := `SELECT id, user_id, full_name, email, telegram_chat_id, created_at
			  FROM customers ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var c domain.Customer
	if err = row.Scan(&c.ID, &c.UserID, &c.FullName, &c.Email, &c.TelegramChatID, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return &c, nil
}
